//go:build wireinject
// +build wireinject

package di

import (
	"salon/config"
	"salon/infras/otel"
	"salon/infras/redis"
	"salon/infras/s3"
	"salon/transport/http"
	"salon/transport/http/middleware"
	"salon/transport/http/router"

	catalogService "salon/internal/domains/catalog/service"
	reservationService "salon/internal/domains/reservation/service"

	adminHandler "salon/internal/handlers/admin"
	clientHandler "salon/internal/handlers/client"
	salonHandler "salon/internal/handlers/salon"
	userHandler "salon/internal/handlers/user"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	otel.New,
	redis.New,
	s3.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
)

var sharedHelpers = wire.NewSet(
	provideViewCache,
)

var catalogDomain = wire.NewSet(
	catalogService.New,
	catalogService.MustLoad,
)

var reservationDomain = wire.NewSet(
	reservationService.New,
)

var domains = wire.NewSet(
	catalogDomain,
	reservationDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	adminHandler.New,
	salonHandler.New,
	clientHandler.New,
	userHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}
