package service

import (
	"context"
	"fmt"

	"salon/config"
	"salon/infras/otel"
	"salon/internal/domains/catalog/repository"
	"salon/internal/domains/reservation/engine"
	"salon/internal/domains/reservation/export"
	"salon/internal/domains/reservation/model"
	"salon/internal/domains/reservation/model/dto"
	"salon/shared"
	"salon/shared/cache"
	"salon/shared/constant"
	"salon/shared/failure"
	"salon/shared/logger"

	"github.com/rs/zerolog/log"
)

const (
	CachePrefix = "view"

	viewAdminOverview      = "admin-overview"
	viewSalonDashboard     = "salon-dashboard"
	viewSalonReservations  = "salon-reservations"
	viewClientDashboard    = "client-dashboard"
	viewClientReservations = "client-reservations"
	viewUserBundle         = "user-bundle"
)

// Reservation builds every role view from the catalog. Each operation takes the reference time
// explicitly, so equal arguments over the same dataset give equal results.
type Reservation interface {
	AdminOverview(ctx context.Context, ref int64) (dto.AdminOverviewResponse, error)
	SalonDashboard(ctx context.Context, ref int64, limit int) (dto.SalonDashboardResponse, error)
	SalonReservations(ctx context.Context, ref int64, req dto.ReservationQuery) (dto.ReservationListResponse, error)
	ClientDashboard(ctx context.Context, ref int64) (dto.ClientDashboardResponse, error)
	ClientReservations(ctx context.Context, ref int64, req dto.ReservationQuery) (dto.ReservationListResponse, error)
	ClientExport(ctx context.Context, ref int64, req dto.ReservationQuery) (model.ExportFile, error)
	UserBundle(ctx context.Context, ref int64, audience string) (dto.UserBundleResponse, error)
}

type serviceImpl struct {
	catalog repository.Catalog
	cfg     *config.Config
	cache   cache.RedisCache
	otel    otel.Otel
}

func New(catalog repository.Catalog, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Reservation {
	return &serviceImpl{
		catalog: catalog,
		cfg:     cfg,
		cache:   cache,
		otel:    otel,
	}
}

func (s *serviceImpl) AdminOverview(ctx context.Context, ref int64) (res dto.AdminOverviewResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".AdminOverview")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	return memoize(ctx, s, s.cacheKey(viewAdminOverview, ref), func() (dto.AdminOverviewResponse, error) {
		data := s.catalog.Snapshot()

		overview := model.AdminOverview{
			Stores:             len(data.Stores),
			Clients:            len(data.Clients),
			Users:              len(data.Users),
			Slots:              len(data.Slots),
			Reservations:       len(data.Reservations),
			Stylists:           len(data.Stylists),
			Menus:              len(data.Menus),
			Posts:              len(data.Posts),
			LastUserUpdatedAt:  engine.LastUserUpdatedAt(data.Users),
			LastStoreUpdatedAt: engine.LastStoreUpdatedAt(data.Stores),
			LastUpdatedAt:      engine.SalonUpdatedAt(data, ref),
		}

		var out dto.AdminOverviewResponse
		out.FromModel(overview, s.catalog.Version())

		return out, nil
	})
}

func (s *serviceImpl) SalonDashboard(ctx context.Context, ref int64, limit int) (res dto.SalonDashboardResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".SalonDashboard")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if limit <= 0 {
		limit = constant.DefaultValueRecentLimit
	}

	return memoize(ctx, s, s.cacheKey(viewSalonDashboard, ref, limit), func() (dto.SalonDashboardResponse, error) {
		joined, err := s.join(ctx)
		if err != nil {
			return dto.SalonDashboardResponse{}, err
		}

		data := s.catalog.Snapshot()
		stats := s.stats(joined, ref)

		dashboard := model.SalonDashboard{
			Stats:             stats,
			Recent:            engine.RecentReservations(joined, limit),
			Totals:            engine.BuildSalonTotals(stats.Total, data),
			ActiveStylists:    engine.ActiveStylistCount(data.Stylists),
			PublishedMenus:    engine.PublishedMenuCount(data.Menus),
			UpcomingPostCount: engine.UpcomingPostCount(data.Posts),
			UpcomingPosts:     engine.UpcomingPosts(data.Posts, limit),
			UpdatedAt:         engine.SalonUpdatedAt(data, ref),
		}

		var out dto.SalonDashboardResponse
		out.FromModel(dashboard, ref)

		return out, nil
	})
}

func (s *serviceImpl) SalonReservations(ctx context.Context, ref int64, req dto.ReservationQuery) (res dto.ReservationListResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".SalonReservations")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	key := s.cacheKey(viewSalonReservations, ref, req.Keyword, req.Status, req.Page, req.Limit)

	return memoize(ctx, s, key, func() (dto.ReservationListResponse, error) {
		joined, err := s.join(ctx)
		if err != nil {
			return dto.ReservationListResponse{}, err
		}

		return listResponse(engine.RecentReservations(engine.Filter(joined, req.ToFilter()), 0), ref, req), nil
	})
}

func (s *serviceImpl) ClientDashboard(ctx context.Context, ref int64) (res dto.ClientDashboardResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ClientDashboard")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	return memoize(ctx, s, s.cacheKey(viewClientDashboard, ref), func() (dto.ClientDashboardResponse, error) {
		joined, err := s.clientJoined(ctx)
		if err != nil {
			return dto.ClientDashboardResponse{}, err
		}

		dashboard := model.ClientDashboard{
			Stats:  s.stats(joined, ref),
			Users:  engine.BuildUserSummaries(joined, ref),
			Stores: engine.BuildStoreSummaries(joined, ref),
		}

		var out dto.ClientDashboardResponse
		out.FromModel(dashboard)

		return out, nil
	})
}

func (s *serviceImpl) ClientReservations(ctx context.Context, ref int64, req dto.ReservationQuery) (res dto.ReservationListResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ClientReservations")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	key := s.cacheKey(viewClientReservations, ref, req.Keyword, req.Status, req.Page, req.Limit)

	return memoize(ctx, s, key, func() (dto.ReservationListResponse, error) {
		joined, err := s.clientJoined(ctx)
		if err != nil {
			return dto.ReservationListResponse{}, err
		}

		return listResponse(engine.RecentReservations(engine.Filter(joined, req.ToFilter()), 0), ref, req), nil
	})
}

// ClientExport writes every matching client reservation, ignoring pagination.
func (s *serviceImpl) ClientExport(ctx context.Context, ref int64, req dto.ReservationQuery) (res model.ExportFile, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ClientExport")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	joined, err := s.clientJoined(ctx)
	if err != nil {
		return res, err
	}

	rows := engine.RecentReservations(engine.Filter(joined, req.ToFilter()), 0)

	content, err := export.Reservations(rows)
	if err != nil {
		log.Error().Err(err).Msg("failed to build reservation export")

		return res, fmt.Errorf("failed to build reservation export: %w", err)
	}

	scope.SetAttribute("export.rows", len(rows))

	return model.ExportFile{Name: export.FileName(ref), Content: content}, nil
}

func (s *serviceImpl) UserBundle(ctx context.Context, ref int64, audience string) (res dto.UserBundleResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UserBundle")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	normalized := engine.NormalizeAudience(audience)

	return memoize(ctx, s, s.cacheKey(viewUserBundle, ref, normalized), func() (dto.UserBundleResponse, error) {
		joined, err := s.join(ctx)
		if err != nil {
			return dto.UserBundleResponse{}, err
		}

		data := s.catalog.Snapshot()
		stores := engine.BuildSlotStoreSummaries(data.Stores, data.Slots, ref)
		reservations := engine.BuildReservationSummaries(joined, ref)

		bundle := model.UserBundle{
			Audience:      normalized,
			Now:           ref,
			LastUpdatedAt: engine.LastUpdatedAt(data, ref),
			Stores:        stores,
			Reservations:  reservations,
			Stats:         engine.BuildDashboardStats(len(data.Stores), stores, reservations),
		}

		var out dto.UserBundleResponse
		out.FromModel(bundle)

		return out, nil
	})
}

func (s *serviceImpl) join(ctx context.Context) ([]model.JoinedReservation, error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Join")
	defer scope.End()

	report, err := engine.NewResolver(s.catalog).JoinAll(s.catalog.Reservations())
	if err != nil {
		scope.TraceError(err)
		logger.ErrorWithStack(err)

		return nil, failure.InternalError(fmt.Errorf("dataset integrity: %w", err)) //nolint:wrapcheck
	}

	scope.SetAttributes(map[string]any{
		"join.joined":  len(report.Joined),
		"join.skipped": len(report.Skipped),
	})

	if len(report.Skipped) > 0 {
		ids := make([]string, len(report.Skipped))
		for i, skip := range report.Skipped {
			ids[i] = skip.ReservationID
		}

		log.Warn().
			Int("skipped", len(report.Skipped)).
			Strs("reservations", ids).
			Msg("dropped reservations whose slot does not exist")
	}

	return report.Joined, nil
}

func (s *serviceImpl) clientJoined(ctx context.Context) ([]model.JoinedReservation, error) {
	joined, err := s.join(ctx)
	if err != nil {
		return nil, err
	}

	return engine.ClientOnly(joined), nil
}

func (s *serviceImpl) stats(joined []model.JoinedReservation, ref int64) model.Stats {
	stats := engine.ComputeStats(joined, ref)

	if stats.UnrecognizedStatuses > 0 {
		log.Warn().
			Int("count", stats.UnrecognizedStatuses).
			Msg("reservations with an unrecognized status were counted as draft")
	}

	return stats
}

func (s *serviceImpl) cacheKey(view string, parts ...any) string {
	return shared.BuildCacheKey(append([]any{CachePrefix, s.catalog.Version(), view}, parts...)...)
}

func listResponse(items []model.JoinedReservation, ref int64, req dto.ReservationQuery) dto.ReservationListResponse {
	page := model.ReservationPage{
		Items:     shared.Paginate(items, req.Page, req.Limit),
		TotalData: len(items),
		Page:      req.Page,
		Limit:     req.Limit,
	}

	var res dto.ReservationListResponse
	res.FromModel(page, ref)

	return res
}

// memoize serves a view from the cache when caching is on, and stores freshly built views
// in the background.
func memoize[T any](ctx context.Context, s *serviceImpl, key string, build func() (T, error)) (T, error) {
	if s.cfg.Cache.TTL <= 0 {
		return build()
	}

	var res T
	if err := s.cache.Get(ctx, key, &res); err == nil {
		log.Debug().Str("cacheKey", key).Msg("cache hit for view")

		return res, nil
	}

	res, err := build()
	if err != nil {
		return res, err
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, key, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Str("cacheKey", key).Msg("failed to save view to cache")
		}
	}()

	return res, nil
}
