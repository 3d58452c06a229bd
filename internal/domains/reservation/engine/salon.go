package engine

import (
	"cmp"
	"slices"
	"strings"

	catalog "salon/internal/domains/catalog/model"
	"salon/internal/domains/reservation/model"
)

func ActiveStylistCount(stylists []catalog.Stylist) int {
	n := 0

	for _, s := range stylists {
		if s.Status == catalog.StylistStatusActive {
			n++
		}
	}

	return n
}

func PublishedMenuCount(menus []catalog.MenuItem) int {
	n := 0

	for _, m := range menus {
		if m.IsPublished {
			n++
		}
	}

	return n
}

// UpcomingPostCount counts posts that are not published yet, drafts included.
func UpcomingPostCount(posts []catalog.Post) int {
	n := 0

	for _, p := range posts {
		if p.Status != catalog.PostStatusPublished {
			n++
		}
	}

	return n
}

// UpcomingPosts returns up to limit unpublished posts, latest publish time first. A post without a
// publish time is placed by its last update. A limit of zero or less returns them all.
func UpcomingPosts(posts []catalog.Post, limit int) []catalog.Post {
	upcoming := make([]catalog.Post, 0, len(posts))

	for _, p := range posts {
		if p.Status != catalog.PostStatusPublished {
			upcoming = append(upcoming, p)
		}
	}

	slices.SortStableFunc(upcoming, func(a, b catalog.Post) int {
		if c := cmp.Compare(postTime(b), postTime(a)); c != 0 {
			return c
		}

		return strings.Compare(a.ID, b.ID)
	})

	if limit > 0 && len(upcoming) > limit {
		upcoming = upcoming[:limit]
	}

	return upcoming
}

func postTime(p catalog.Post) int64 {
	if p.PublishedAt != nil {
		return *p.PublishedAt
	}

	return p.UpdatedAt
}

// BuildSalonTotals counts the salon catalog next to the number of joined reservations.
func BuildSalonTotals(reservations int, data catalog.Dataset) model.SalonTotals {
	return model.SalonTotals{
		Reservations: reservations,
		Stylists:     len(data.Stylists),
		Menus:        len(data.Menus),
		Posts:        len(data.Posts),
	}
}

// SalonUpdatedAt is the latest update across users, stores, stylists, menus and posts, or ref when
// there is none.
func SalonUpdatedAt(data catalog.Dataset, ref int64) int64 {
	latest := latestUpdate(nil, data.Users, func(u catalog.User) int64 { return u.UpdatedAt })
	latest = latestUpdate(latest, data.Stores, func(s catalog.Store) int64 { return s.UpdatedAt })
	latest = latestUpdate(latest, data.Stylists, func(s catalog.Stylist) int64 { return s.UpdatedAt })
	latest = latestUpdate(latest, data.Menus, func(m catalog.MenuItem) int64 { return m.UpdatedAt })
	latest = latestUpdate(latest, data.Posts, func(p catalog.Post) int64 { return p.UpdatedAt })

	if latest == nil {
		return ref
	}

	return *latest
}
