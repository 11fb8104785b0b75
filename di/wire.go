//go:build wireinject
// +build wireinject

package di

import (
	"hotelos/config"
	"hotelos/infras/jwt"
	"hotelos/infras/kafka"
	"hotelos/infras/metrics"
	"hotelos/infras/otel"
	"hotelos/infras/postgres"
	"hotelos/infras/redis"
	"hotelos/internal/jobs"
	"hotelos/permissions"
	"hotelos/shared/cache"
	"hotelos/transport/http"
	"hotelos/transport/http/middleware"
	"hotelos/transport/http/router"

	hotelRepository "hotelos/internal/domains/hotel/repository"
	offerService "hotelos/internal/domains/offer/service"
	"hotelos/internal/domains/pricing/pipeline"
	pricingService "hotelos/internal/domains/pricing/service"
	reservationRepository "hotelos/internal/domains/reservation/repository"
	reservationService "hotelos/internal/domains/reservation/service"
	roomRepository "hotelos/internal/domains/room/repository"
	offerHandler "hotelos/internal/handlers/offer"
	pricingHandler "hotelos/internal/handlers/pricing"
	reservationHandler "hotelos/internal/handlers/reservation"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
	permissions.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	jwt.New,
	kafka.New,
	metrics.InitRegistry,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var inventoryDomain = wire.NewSet(
	hotelRepository.New,
	hotelRepository.NewAmenity,
	roomRepository.New,
	roomRepository.NewRoomType,
)

var pricingDomain = wire.NewSet(
	pipeline.DefaultPipeline,
	pricingService.New,
)

var reservationDomain = wire.NewSet(
	reservationRepository.New,
	reservationRepository.NewGuest,
	reservationService.New,
)

var offerDomain = wire.NewSet(
	wire.Bind(new(offerService.Reservations), new(reservationService.Reservation)),
	offerService.New,
)

var domains = wire.NewSet(
	inventoryDomain,
	pricingDomain,
	reservationDomain,
	offerDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	reservationHandler.New,
	pricingHandler.New,
	offerHandler.New,
	router.New,
)

var background = wire.NewSet(
	jobs.NewSweeper,
)

func InitializeService() *Service {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		background,
		http.New,
		wire.Struct(new(Service), "*"),
	)

	return &Service{}
}
