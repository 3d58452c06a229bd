package engine

import (
	"cmp"
	"slices"
	"strings"

	catalog "salon/internal/domains/catalog/model"
	"salon/internal/domains/reservation/model"
)

// BuildDashboardStats totals the end-user home screen from already built summaries.
// The next slot is taken from the first store that has one, so stores must be sorted.
func BuildDashboardStats(totalStores int, stores []model.StoreSummary, reservations []model.ReservationSummary) model.DashboardStats {
	stats := model.DashboardStats{TotalSalons: totalStores}

	for _, s := range stores {
		if s.TotalUpcoming > 0 {
			stats.ActiveSalons++
		}

		stats.UpcomingSlots += s.TotalUpcoming

		if stats.NextSlotStartAt == nil && s.NextAt != nil {
			stats.NextSlotStartAt = ptr(*s.NextAt)
			stats.NextSlotStoreName = s.Store.Name
		}
	}

	for _, r := range reservations {
		if r.IsUpcoming {
			stats.UpcomingReservations++
		}
	}

	return stats
}

// LastUpdatedAt is the latest update across stores, slots and reservations, or ref when there is none.
func LastUpdatedAt(data catalog.Dataset, ref int64) int64 {
	latest := latestUpdate(nil, data.Stores, func(s catalog.Store) int64 { return s.UpdatedAt })
	latest = latestUpdate(latest, data.Slots, func(s catalog.Slot) int64 { return s.UpdatedAt })
	latest = latestUpdate(latest, data.Reservations, func(r catalog.Reservation) int64 { return r.UpdatedAt })

	if latest == nil {
		return ref
	}

	return *latest
}

func LastUserUpdatedAt(users []catalog.User) *int64 {
	return latestUpdate(nil, users, func(u catalog.User) int64 { return u.UpdatedAt })
}

func LastStoreUpdatedAt(stores []catalog.Store) *int64 {
	return latestUpdate(nil, stores, func(s catalog.Store) int64 { return s.UpdatedAt })
}

func latestUpdate[T any](latest *int64, items []T, updatedAt func(T) int64) *int64 {
	for _, item := range items {
		if v := updatedAt(item); latest == nil || v > *latest {
			latest = ptr(v)
		}
	}

	return latest
}

// RecentReservations returns up to limit reservations, latest slot start first. A limit of zero or
// less returns them all.
func RecentReservations(joined []model.JoinedReservation, limit int) []model.JoinedReservation {
	recent := slices.Clone(joined)
	if recent == nil {
		recent = []model.JoinedReservation{}
	}

	slices.SortStableFunc(recent, func(a, b model.JoinedReservation) int {
		if a.Slot.StartAt != b.Slot.StartAt {
			return cmp.Compare(b.Slot.StartAt, a.Slot.StartAt)
		}

		return strings.Compare(a.Reservation.ID, b.Reservation.ID)
	})

	if limit > 0 && len(recent) > limit {
		recent = recent[:limit]
	}

	return recent
}

// ClientOnly keeps the reservations made through a corporate client.
func ClientOnly(joined []model.JoinedReservation) []model.JoinedReservation {
	res := make([]model.JoinedReservation, 0, len(joined))

	for _, j := range joined {
		if j.Client != nil {
			res = append(res, j)
		}
	}

	return res
}

// Filter matches the keyword case-insensitively against the client, store and user names and the
// reservation id.
func Filter(joined []model.JoinedReservation, filter model.ReservationFilter) []model.JoinedReservation {
	keyword := strings.ToLower(strings.TrimSpace(filter.Keyword))
	status := strings.TrimSpace(filter.Status)
	res := make([]model.JoinedReservation, 0, len(joined))

	for _, j := range joined {
		if status != "" && status != model.StatusFilterAll && string(j.Reservation.Status) != status {
			continue
		}

		if keyword != "" && !matchesKeyword(j, keyword) {
			continue
		}

		res = append(res, j)
	}

	return res
}

func matchesKeyword(j model.JoinedReservation, keyword string) bool {
	fields := []string{j.Store.Name, j.User.Name, j.Reservation.ID}
	if j.Client != nil {
		fields = append(fields, j.Client.Name)
	}

	for _, field := range fields {
		if strings.Contains(strings.ToLower(field), keyword) {
			return true
		}
	}

	return false
}

func NormalizeAudience(value string) model.Audience {
	if model.Audience(value) == model.AudienceFamily {
		return model.AudienceFamily
	}

	return model.AudienceSenior
}
