//go:build wireinject
// +build wireinject

package di

import (
	"github.com/google/wire"

	"latina/config"
	"latina/infras/kafka"
	"latina/infras/otel"
	"latina/infras/postgres"
	"latina/infras/redis"
	"latina/internal/view"
	"latina/shared/cache"
	"latina/shared/session"
	"latina/transport/http"
	"latina/transport/http/middleware"
	"latina/transport/http/router"

	reservationNotifier "latina/internal/domains/reservation/notifier"
	reservationRepository "latina/internal/domains/reservation/repository"
	reservationService "latina/internal/domains/reservation/service"
	pageHandler "latina/internal/handlers/page"
	reservationHandler "latina/internal/handlers/reservation"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	kafka.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCounter,
	session.New,
	view.MustNew,
)

var reservationDomain = wire.NewSet(
	reservationRepository.New,
	reservationNotifier.New,
	reservationService.New,
)

var domains = wire.NewSet(
	reservationDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	reservationHandler.New,
	pageHandler.New,
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
		wire.Struct(new(http.Resources), "*"),
		http.New,
	)

	return &http.HTTP{}
}
