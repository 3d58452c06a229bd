package engine

import (
	catalog "salon/internal/domains/catalog/model"
	"salon/internal/domains/reservation/model"
)

// ComputeStats counts joined reservations by status. Upcoming counts confirmed reservations whose
// slot starts strictly after ref.
func ComputeStats(joined []model.JoinedReservation, ref int64) model.Stats {
	stats := model.Stats{Total: len(joined)}
	clients := make(map[string]struct{})
	stores := make(map[string]struct{})

	for _, j := range joined {
		switch j.Reservation.Status {
		case catalog.ReservationStatusConfirmed:
			stats.Confirmed++

			if j.Slot.StartAt > ref {
				stats.Upcoming++
			}
		case catalog.ReservationStatusCancelled:
			stats.Cancelled++
		case catalog.ReservationStatusDraft:
			stats.Draft++
		default:
			// Unknown statuses fall through to draft, pending product confirmation.
			stats.Draft++
			stats.UnrecognizedStatuses++
		}

		if j.Client != nil {
			clients[j.Client.ID] = struct{}{}
		}

		stores[j.Store.ID] = struct{}{}
	}

	stats.UniqueClients = len(clients)
	stats.UniqueStores = len(stores)

	return stats
}
