package engine

import (
	"cmp"
	"slices"
	"strings"

	catalog "salon/internal/domains/catalog/model"
	"salon/internal/domains/reservation/model"
	"salon/shared/collation"
)

// BuildStoreSummaries rolls up the stores that appear among joined reservations, in first-seen order
// before sorting. A slot is upcoming when it starts at or after ref.
func BuildStoreSummaries(joined []model.JoinedReservation, ref int64) []model.StoreSummary {
	summaries := make([]model.StoreSummary, 0)
	index := make(map[string]int)
	seenSlots := make(map[string]struct{})

	for _, j := range joined {
		i, ok := index[j.Store.ID]
		if !ok {
			i = len(summaries)
			index[j.Store.ID] = i
			summaries = append(summaries, model.StoreSummary{Store: j.Store, UpcomingSlots: []catalog.Slot{}})
		}

		summary := &summaries[i]
		summary.ReservationCount++

		start := j.Slot.StartAt
		if start < ref {
			if summary.LastAt == nil || start > *summary.LastAt {
				summary.LastAt = ptr(start)
			}

			continue
		}

		if summary.NextAt == nil || start < *summary.NextAt {
			slot := j.Slot
			summary.NextAt = ptr(start)
			summary.NextSlot = &slot
		}

		if _, seen := seenSlots[j.Slot.ID]; seen {
			continue
		}

		seenSlots[j.Slot.ID] = struct{}{}
		summary.UpcomingSlots = append(summary.UpcomingSlots, j.Slot)
		summary.MaxCapacity = max(summary.MaxCapacity, j.Slot.Capacity)
	}

	for i := range summaries {
		sortSlots(summaries[i].UpcomingSlots)
		summaries[i].TotalUpcoming = len(summaries[i].UpcomingSlots)
	}

	sortStoreSummaries(summaries)

	return summaries
}

// BuildSlotStoreSummaries rolls up every store from its own slots. A slot is upcoming while it is
// active and has not ended, so a slot in progress at ref still counts.
func BuildSlotStoreSummaries(stores []catalog.Store, slots []catalog.Slot, ref int64) []model.StoreSummary {
	byStore := make(map[string][]catalog.Slot, len(stores))
	for _, slot := range slots {
		byStore[slot.StoreID] = append(byStore[slot.StoreID], slot)
	}

	summaries := make([]model.StoreSummary, 0, len(stores))

	for _, store := range stores {
		summary := model.StoreSummary{Store: store, UpcomingSlots: []catalog.Slot{}}

		for _, slot := range byStore[store.ID] {
			if slot.StartAt < ref && (summary.LastAt == nil || slot.StartAt > *summary.LastAt) {
				summary.LastAt = ptr(slot.StartAt)
			}

			if slot.Status != catalog.SlotStatusActive || slot.EndAt < ref {
				continue
			}

			summary.UpcomingSlots = append(summary.UpcomingSlots, slot)
			summary.MaxCapacity = max(summary.MaxCapacity, slot.Capacity)
		}

		sortSlots(summary.UpcomingSlots)
		summary.TotalUpcoming = len(summary.UpcomingSlots)

		if summary.TotalUpcoming > 0 {
			next := summary.UpcomingSlots[0]
			summary.NextSlot = &next
			summary.NextAt = ptr(next.StartAt)
		}

		summaries = append(summaries, summary)
	}

	sortStoreSummaries(summaries)

	return summaries
}

func sortSlots(slots []catalog.Slot) {
	slices.SortStableFunc(slots, func(a, b catalog.Slot) int {
		if a.StartAt != b.StartAt {
			return cmp.Compare(a.StartAt, b.StartAt)
		}

		return strings.Compare(a.ID, b.ID)
	})
}

// sortStoreSummaries puts stores with a next event first, earliest first, then orders by name.
func sortStoreSummaries(summaries []model.StoreSummary) {
	col := collation.New()

	slices.SortStableFunc(summaries, func(a, b model.StoreSummary) int {
		switch {
		case a.NextAt != nil && b.NextAt == nil:
			return -1
		case a.NextAt == nil && b.NextAt != nil:
			return 1
		case a.NextAt != nil && *a.NextAt != *b.NextAt:
			return cmp.Compare(*a.NextAt, *b.NextAt)
		}

		if c := col.Compare(a.Store.Name, b.Store.Name); c != 0 {
			return c
		}

		return strings.Compare(a.Store.ID, b.Store.ID)
	})
}

func ptr[T any](v T) *T {
	return &v
}
