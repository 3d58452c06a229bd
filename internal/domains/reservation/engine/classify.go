package engine

import (
	"cmp"
	"slices"
	"strings"

	catalog "salon/internal/domains/catalog/model"
	"salon/internal/domains/reservation/model"
)

var statusMeta = map[catalog.ReservationStatus]model.StatusMeta{
	catalog.ReservationStatusDraft:     {Label: "調整中", Tone: model.ToneAttention},
	catalog.ReservationStatusConfirmed: {Label: "確定済み", Tone: model.TonePositive},
	catalog.ReservationStatusCancelled: {Label: "キャンセル", Tone: model.ToneNeutral},
}

// Classify maps a status to its display label and tone. Unknown statuses keep their raw value
// and ask for attention.
func Classify(status catalog.ReservationStatus) model.StatusMeta {
	if meta, ok := statusMeta[status]; ok {
		return meta
	}

	return model.StatusMeta{Label: string(status), Tone: model.ToneAttention}
}

// IsUpcoming reports whether the slot has not ended by ref and the reservation still stands.
func IsUpcoming(j model.JoinedReservation, ref int64) bool {
	return j.Slot.EndAt >= ref && j.Reservation.Status != catalog.ReservationStatusCancelled
}

// Bucket splits joined reservations into upcoming and past, keeping input order in both.
func Bucket(joined []model.JoinedReservation, ref int64) (upcoming, past []model.JoinedReservation) {
	upcoming = make([]model.JoinedReservation, 0)
	past = make([]model.JoinedReservation, 0)

	for _, j := range joined {
		if IsUpcoming(j, ref) {
			upcoming = append(upcoming, j)
		} else {
			past = append(past, j)
		}
	}

	return upcoming, past
}

// BuildReservationSummaries flattens joined reservations, earliest slot first.
func BuildReservationSummaries(joined []model.JoinedReservation, ref int64) []model.ReservationSummary {
	summaries := make([]model.ReservationSummary, 0, len(joined))

	for _, j := range joined {
		meta := Classify(j.Reservation.Status)

		summary := model.ReservationSummary{
			ID:          j.Reservation.ID,
			StoreID:     j.Store.ID,
			UserID:      j.User.ID,
			StartAt:     j.Slot.StartAt,
			EndAt:       j.Slot.EndAt,
			Status:      j.Reservation.Status,
			StatusLabel: meta.Label,
			Tone:        meta.Tone,
			StoreName:   j.Store.Name,
			UserName:    j.User.Name,
			SlotTitle:   j.Slot.Title,
			Note:        j.Reservation.Note,
			IsUpcoming:  IsUpcoming(j, ref),
		}

		if j.Client != nil {
			summary.ClientName = j.Client.Name
		}

		summaries = append(summaries, summary)
	}

	slices.SortStableFunc(summaries, func(a, b model.ReservationSummary) int {
		if a.StartAt != b.StartAt {
			return cmp.Compare(a.StartAt, b.StartAt)
		}

		return strings.Compare(a.ID, b.ID)
	})

	return summaries
}
