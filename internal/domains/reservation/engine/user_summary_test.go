package engine_test

import (
	"testing"

	catalog "salon/internal/domains/catalog/model"
	"salon/internal/domains/reservation/engine"
	"salon/internal/domains/reservation/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildUserSummaries(t *testing.T) {
	store := catalog.Store{ID: "st_1", Name: "銀座サロン"}
	aiko := catalog.User{ID: "u_a", Name: "アイコ"}
	kenta := catalog.User{ID: "u_k", Name: "ケンタ"}
	sora := catalog.User{ID: "u_s", Name: "ソラ"}

	early := catalog.Slot{ID: "sl_1", StartAt: 1000, EndAt: 1500, Capacity: 1}
	late := catalog.Slot{ID: "sl_2", StartAt: 9000, EndAt: 9500, Capacity: 1}

	joinedSet := []model.JoinedReservation{
		joined("r_1", catalog.ReservationStatusConfirmed, store, early, sora, nil),
		joined("r_2", catalog.ReservationStatusCancelled, store, late, sora, nil),
		joined("r_3", catalog.ReservationStatusDraft, store, late, kenta, nil),
		joined("r_4", catalog.ReservationStatusConfirmed, store, late, aiko, nil),
		joined("r_5", catalog.ReservationStatusConfirmed, store, early, aiko, nil),
	}

	summaries := engine.BuildUserSummaries(joinedSet, 5000)

	require.Len(t, summaries, 3)
	assert.Equal(t, "u_a", summaries[0].User.ID, "latest ties order by name")
	assert.Equal(t, "u_k", summaries[1].User.ID)
	assert.Equal(t, "u_s", summaries[2].User.ID)

	assert.Equal(t, 2, summaries[0].TotalReservations)
	assert.Equal(t, int64(9000), summaries[0].LatestReservationAt, "latest ignores the reference time")
	assert.Equal(t, 2, summaries[2].TotalReservations)
	assert.Equal(t, int64(9000), summaries[2].LatestReservationAt)
}

func TestBuildUserSummaries_LatestDescending(t *testing.T) {
	store := catalog.Store{ID: "st_1", Name: "銀座サロン"}
	first := catalog.User{ID: "u_1", Name: "アイコ"}
	second := catalog.User{ID: "u_2", Name: "ソラ"}

	joinedSet := []model.JoinedReservation{
		joined("r_1", catalog.ReservationStatusConfirmed, store, catalog.Slot{ID: "sl_1", StartAt: 100}, first, nil),
		joined("r_2", catalog.ReservationStatusConfirmed, store, catalog.Slot{ID: "sl_2", StartAt: 200}, second, nil),
	}

	summaries := engine.BuildUserSummaries(joinedSet, 0)

	assert.Equal(t, "u_2", summaries[0].User.ID)
	assert.Equal(t, "u_1", summaries[1].User.ID)
}

func TestBuildUserSummaries_Empty(t *testing.T) {
	summaries := engine.BuildUserSummaries(nil, 0)

	assert.NotNil(t, summaries)
	assert.Empty(t, summaries)
}
