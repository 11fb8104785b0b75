package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"time"

	"hotelos/config"
	"hotelos/infras/otel"
	"hotelos/internal/domains/pricing/model/dto"
	"hotelos/internal/domains/pricing/pipeline"
	roomModel "hotelos/internal/domains/room/model"
	roomRepository "hotelos/internal/domains/room/repository"
	"hotelos/shared"
	"hotelos/shared/cache"
	"hotelos/shared/constant"
	"hotelos/shared/failure"
	"hotelos/shared/timezone"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetRoomPrice = constant.CachePrefixPricing + ":room"
)

type Pricing interface {
	GetRoomPrice(ctx context.Context, roomID string, checkIn, checkOut *time.Time) (dto.RoomPriceResponse, error)
	PriceRoom(room roomModel.Room, window pipeline.Window) (pipeline.Context, pipeline.Quote, error)
}

type serviceImpl struct {
	roomRepo roomRepository.Room
	pipeline pipeline.Pipeline
	cfg      *config.Config
	cache    cache.RedisCache
	otel     otel.Otel
}

func New(roomRepo roomRepository.Room, pipe pipeline.Pipeline, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Pricing {
	return &serviceImpl{
		roomRepo: roomRepo,
		pipeline: pipe,
		cfg:      cfg,
		cache:    cache,
		otel:     otel,
	}
}

func (s *serviceImpl) GetRoomPrice(ctx context.Context, roomID string, checkIn, checkOut *time.Time) (res dto.RoomPriceResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetRoomPrice")
	defer scope.End()
	defer scope.TraceIfError(err)

	window, err := pipeline.DefaultWindow(checkIn, checkOut, timezone.Today())
	if err != nil {
		return res, err
	}

	cacheKey := shared.BuildCacheKey(cacheGetRoomPrice, roomID,
		window.CheckIn.Format(constant.DateOnlyFormat), window.CheckOut.Format(constant.DateOnlyFormat))

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for room price")

		return res, nil
	}

	room, err := s.roomRepo.Get(ctx, shared.FilterByID(roomID, roomModel.FieldID, roomModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get room")

		return res, fmt.Errorf("failed to get room: %w", err)
	}

	if room.ID == constant.Empty {
		return res, failure.NotFound("room not found") // nolint:wrapcheck
	}

	pc, quote, err := s.PriceRoom(room, window)
	if err != nil {
		return res, err
	}

	res.FromQuote(pc, quote)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save room price to cache")
		}
	}()

	return res, nil
}

// PriceRoom quotes one night of room for window. It does not touch the store.
func (s *serviceImpl) PriceRoom(room roomModel.Room, window pipeline.Window) (pipeline.Context, pipeline.Quote, error) {
	if !room.HasType() {
		return pipeline.Context{}, pipeline.Quote{}, failure.BadRequestFromString("room has no room type to price") // nolint:wrapcheck
	}

	pc := pipeline.Context{
		RoomID:        room.ID,
		HotelID:       room.HotelID,
		RoomTypeID:    *room.RoomTypeID,
		BasePrice:     room.BasePrice,
		PriceFactor:   room.PriceFactor.Decimal,
		PriceModifier: room.PriceModifier,
		CheckIn:       window.CheckIn,
		CheckOut:      window.CheckOut,
	}

	return pc, s.pipeline.Quote(pc), nil
}
