package engine_test

import (
	"testing"

	catalog "salon/internal/domains/catalog/model"
	"salon/internal/domains/catalog/repository"
	"salon/internal/domains/reservation/engine"
	"salon/internal/domains/reservation/model"

	"github.com/stretchr/testify/require"
)

// scenarioDataset is the minimal store/slot/reservation/user chain.
func scenarioDataset() catalog.Dataset {
	return catalog.Dataset{
		Stores: []catalog.Store{{ID: "st_1", Name: "銀座サロン"}},
		Users:  []catalog.User{{ID: "u_1", Name: "山田太郎"}},
		Slots: []catalog.Slot{
			{ID: "sl_1", StoreID: "st_1", StartAt: 1000, EndAt: 2000, Capacity: 2, Status: catalog.SlotStatusActive},
		},
		Reservations: []catalog.Reservation{
			{ID: "r_1", SlotID: "sl_1", UserID: "u_1", Status: catalog.ReservationStatusConfirmed},
		},
	}
}

func joinDataset(t *testing.T, data catalog.Dataset) []model.JoinedReservation {
	t.Helper()

	resolver := engine.NewResolver(repository.New(data, "test"))

	report, err := resolver.JoinAll(data.Reservations)
	require.NoError(t, err)

	return report.Joined
}

func joined(id string, status catalog.ReservationStatus, store catalog.Store, slot catalog.Slot, user catalog.User, client *catalog.Client) model.JoinedReservation {
	slot.StoreID = store.ID

	return model.JoinedReservation{
		Reservation: catalog.Reservation{ID: id, SlotID: slot.ID, UserID: user.ID, Status: status},
		Slot:        slot,
		Store:       store,
		Client:      client,
		User:        user,
	}
}
