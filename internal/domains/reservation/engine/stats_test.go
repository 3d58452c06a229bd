package engine_test

import (
	"testing"

	catalog "salon/internal/domains/catalog/model"
	"salon/internal/domains/reservation/engine"
	"salon/internal/domains/reservation/model"

	"github.com/stretchr/testify/assert"
)

func TestComputeStats_Scenario(t *testing.T) {
	joinedSet := joinDataset(t, scenarioDataset())

	stats := engine.ComputeStats(joinedSet, 500)

	assert.Equal(t, model.Stats{
		Total:         1,
		Confirmed:     1,
		Cancelled:     0,
		Draft:         0,
		Upcoming:      1,
		UniqueClients: 0,
		UniqueStores:  1,
	}, stats)
}

func TestComputeStats(t *testing.T) {
	ginza := catalog.Store{ID: "st_1", Name: "銀座サロン"}
	shibuya := catalog.Store{ID: "st_2", Name: "渋谷サロン"}
	abc := &catalog.Client{ID: "cl_1", Name: "ABC派遣"}
	midori := &catalog.Client{ID: "cl_2", Name: "みどり介護サービス"}
	taro := catalog.User{ID: "u_1", Name: "山田太郎"}
	early := catalog.Slot{ID: "sl_1", StartAt: 1000, EndAt: 2000, Capacity: 1}
	late := catalog.Slot{ID: "sl_2", StartAt: 3000, EndAt: 4000, Capacity: 1}

	tests := []struct {
		name   string
		joined []model.JoinedReservation
		ref    int64
		want   model.Stats
	}{
		{
			name: "empty input",
			ref:  0,
			want: model.Stats{},
		},
		{
			name: "upcoming counts only confirmed reservations starting after ref",
			joined: []model.JoinedReservation{
				joined("r_1", catalog.ReservationStatusConfirmed, ginza, early, taro, abc),
				joined("r_2", catalog.ReservationStatusConfirmed, ginza, late, taro, abc),
				joined("r_3", catalog.ReservationStatusDraft, shibuya, late, taro, nil),
				joined("r_4", catalog.ReservationStatusCancelled, shibuya, late, taro, midori),
			},
			ref: 2000,
			want: model.Stats{
				Total: 4, Confirmed: 2, Cancelled: 1, Draft: 1, Upcoming: 1,
				UniqueClients: 2, UniqueStores: 2,
			},
		},
		{
			name: "start equal to ref is not upcoming",
			joined: []model.JoinedReservation{
				joined("r_1", catalog.ReservationStatusConfirmed, ginza, early, taro, nil),
			},
			ref:  1000,
			want: model.Stats{Total: 1, Confirmed: 1, UniqueStores: 1},
		},
		{
			name: "unknown status falls through to draft",
			joined: []model.JoinedReservation{
				joined("r_1", catalog.ReservationStatus("pending"), ginza, late, taro, nil),
				joined("r_2", catalog.ReservationStatusDraft, ginza, late, taro, nil),
			},
			ref:  0,
			want: model.Stats{Total: 2, Draft: 2, UniqueStores: 1, UnrecognizedStatuses: 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stats := engine.ComputeStats(tt.joined, tt.ref)

			assert.Equal(t, tt.want, stats)
			assert.Equal(t, stats.Total, stats.Confirmed+stats.Cancelled+stats.Draft)
		})
	}
}

func TestComputeStats_Conservation(t *testing.T) {
	store := catalog.Store{ID: "st_1", Name: "銀座サロン"}
	user := catalog.User{ID: "u_1", Name: "山田太郎"}
	statuses := []catalog.ReservationStatus{
		catalog.ReservationStatusDraft,
		catalog.ReservationStatusConfirmed,
		catalog.ReservationStatusCancelled,
		catalog.ReservationStatus("unknown"),
	}

	var joinedSet []model.JoinedReservation

	for i := range 40 {
		slot := catalog.Slot{ID: "sl", StartAt: int64(i * 100), EndAt: int64(i*100 + 50), Capacity: 1}
		joinedSet = append(joinedSet, joined("r", statuses[(i*7)%len(statuses)], store, slot, user, nil))

		for _, ref := range []int64{0, 1000, 2500, 5000} {
			stats := engine.ComputeStats(joinedSet, ref)
			assert.Equal(t, stats.Total, stats.Confirmed+stats.Cancelled+stats.Draft)
			assert.Equal(t, len(joinedSet), stats.Total)
		}
	}
}

func TestComputeStats_IsDeterministic(t *testing.T) {
	joinedSet := joinDataset(t, scenarioDataset())

	assert.Equal(t, engine.ComputeStats(joinedSet, 500), engine.ComputeStats(joinedSet, 500))
}
