package engine

import (
	"cmp"
	"slices"
	"strings"

	"salon/internal/domains/reservation/model"
	"salon/shared/collation"
)

// BuildUserSummaries groups joined reservations by user. LatestReservationAt is the latest slot start
// in the group whether or not it is past ref.
func BuildUserSummaries(joined []model.JoinedReservation, _ int64) []model.UserSummary {
	summaries := make([]model.UserSummary, 0)
	index := make(map[string]int)

	for _, j := range joined {
		i, ok := index[j.User.ID]
		if !ok {
			i = len(summaries)
			index[j.User.ID] = i
			summaries = append(summaries, model.UserSummary{User: j.User})
		}

		summaries[i].TotalReservations++
		summaries[i].LatestReservationAt = max(summaries[i].LatestReservationAt, j.Slot.StartAt)
	}

	col := collation.New()

	slices.SortStableFunc(summaries, func(a, b model.UserSummary) int {
		if a.LatestReservationAt != b.LatestReservationAt {
			return cmp.Compare(b.LatestReservationAt, a.LatestReservationAt)
		}

		if c := col.Compare(a.User.Name, b.User.Name); c != 0 {
			return c
		}

		return strings.Compare(a.User.ID, b.User.ID)
	})

	return summaries
}
