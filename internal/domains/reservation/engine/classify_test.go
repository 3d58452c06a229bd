package engine_test

import (
	"testing"

	catalog "salon/internal/domains/catalog/model"
	"salon/internal/domains/reservation/engine"
	"salon/internal/domains/reservation/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		status catalog.ReservationStatus
		want   model.StatusMeta
	}{
		{catalog.ReservationStatusDraft, model.StatusMeta{Label: "調整中", Tone: model.ToneAttention}},
		{catalog.ReservationStatusConfirmed, model.StatusMeta{Label: "確定済み", Tone: model.TonePositive}},
		{catalog.ReservationStatusCancelled, model.StatusMeta{Label: "キャンセル", Tone: model.ToneNeutral}},
		{catalog.ReservationStatus("waitlisted"), model.StatusMeta{Label: "waitlisted", Tone: model.ToneAttention}},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			assert.Equal(t, tt.want, engine.Classify(tt.status))
		})
	}
}

func TestIsUpcoming_Monotonic(t *testing.T) {
	store := catalog.Store{ID: "st_1", Name: "銀座サロン"}
	user := catalog.User{ID: "u_1", Name: "山田太郎"}

	joinedSet := []model.JoinedReservation{
		joined("r_100", catalog.ReservationStatusConfirmed, store, catalog.Slot{ID: "sl_1", StartAt: 0, EndAt: 100}, user, nil),
		joined("r_200", catalog.ReservationStatusDraft, store, catalog.Slot{ID: "sl_2", StartAt: 0, EndAt: 200}, user, nil),
	}

	upcomingIDs := func(ref int64) []string {
		upcoming, _ := engine.Bucket(joinedSet, ref)

		ids := make([]string, 0, len(upcoming))
		for _, j := range upcoming {
			ids = append(ids, j.Reservation.ID)
		}

		return ids
	}

	assert.Equal(t, []string{"r_100", "r_200"}, upcomingIDs(50))
	assert.Equal(t, []string{"r_200"}, upcomingIDs(150))
	assert.Equal(t, []string{}, upcomingIDs(250))

	previous := len(joinedSet)
	for ref := int64(0); ref <= 300; ref += 10 {
		count := len(upcomingIDs(ref))
		assert.LessOrEqual(t, count, previous, "upcoming must not grow as ref advances (ref=%d)", ref)
		previous = count
	}
}

func TestIsUpcoming(t *testing.T) {
	store := catalog.Store{ID: "st_1", Name: "銀座サロン"}
	user := catalog.User{ID: "u_1", Name: "山田太郎"}
	slot := catalog.Slot{ID: "sl_1", StartAt: 1000, EndAt: 2000}

	assert.True(t, engine.IsUpcoming(joined("r_1", catalog.ReservationStatusConfirmed, store, slot, user, nil), 2000), "end equal to ref is upcoming")
	assert.True(t, engine.IsUpcoming(joined("r_1", catalog.ReservationStatusDraft, store, slot, user, nil), 1500))
	assert.False(t, engine.IsUpcoming(joined("r_1", catalog.ReservationStatusCancelled, store, slot, user, nil), 0), "cancelled is never upcoming")
	assert.False(t, engine.IsUpcoming(joined("r_1", catalog.ReservationStatusConfirmed, store, slot, user, nil), 2001))
}

func TestBucket_PartitionsInput(t *testing.T) {
	store := catalog.Store{ID: "st_1", Name: "銀座サロン"}
	user := catalog.User{ID: "u_1", Name: "山田太郎"}
	slot := catalog.Slot{ID: "sl_1", StartAt: 1000, EndAt: 2000}

	joinedSet := []model.JoinedReservation{
		joined("r_1", catalog.ReservationStatusConfirmed, store, slot, user, nil),
		joined("r_2", catalog.ReservationStatusCancelled, store, slot, user, nil),
		joined("r_3", catalog.ReservationStatusDraft, store, slot, user, nil),
	}

	upcoming, past := engine.Bucket(joinedSet, 1500)

	assert.Len(t, upcoming, 2)
	require.Len(t, past, 1)
	assert.Equal(t, "r_2", past[0].Reservation.ID)
}

func TestBuildReservationSummaries(t *testing.T) {
	store := catalog.Store{ID: "st_1", Name: "銀座サロン"}
	user := catalog.User{ID: "u_1", Name: "山田太郎"}
	client := &catalog.Client{ID: "cl_1", Name: "ABC派遣"}

	later := catalog.Slot{ID: "sl_2", StartAt: 5000, EndAt: 6000, Title: "ヘッドスパ"}
	sooner := catalog.Slot{ID: "sl_1", StartAt: 1000, EndAt: 2000, Title: "カット"}

	withNote := joined("r_2", catalog.ReservationStatusDraft, store, later, user, nil)
	withNote.Reservation.Note = "車椅子で来店"

	summaries := engine.BuildReservationSummaries([]model.JoinedReservation{
		withNote,
		joined("r_1", catalog.ReservationStatusConfirmed, store, sooner, user, client),
	}, 3000)

	require.Len(t, summaries, 2)
	assert.Equal(t, model.ReservationSummary{
		ID:          "r_1",
		StoreID:     "st_1",
		UserID:      "u_1",
		StartAt:     1000,
		EndAt:       2000,
		Status:      catalog.ReservationStatusConfirmed,
		StatusLabel: "確定済み",
		Tone:        model.TonePositive,
		StoreName:   "銀座サロン",
		UserName:    "山田太郎",
		ClientName:  "ABC派遣",
		SlotTitle:   "カット",
		IsUpcoming:  false,
	}, summaries[0])

	assert.Equal(t, "r_2", summaries[1].ID)
	assert.Equal(t, "調整中", summaries[1].StatusLabel)
	assert.Equal(t, "車椅子で来店", summaries[1].Note)
	assert.Empty(t, summaries[1].ClientName)
	assert.True(t, summaries[1].IsUpcoming)
}
