package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"time"

	"hotelos/config"
	"hotelos/infras/metrics"
	"hotelos/infras/otel"
	hotelModel "hotelos/internal/domains/hotel/model"
	hotelRepository "hotelos/internal/domains/hotel/repository"
	"hotelos/internal/domains/offer/model/dto"
	pricingService "hotelos/internal/domains/pricing/service"
	"hotelos/internal/domains/pricing/pipeline"
	roomRepository "hotelos/internal/domains/room/repository"
	"hotelos/shared"
	"hotelos/shared/cache"
	"hotelos/shared/constant"
	gDto "hotelos/shared/dto"
	"hotelos/shared/failure"
	"hotelos/shared/timezone"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetOffer        = constant.CachePrefixOffer + ":get"
	cacheListOffers      = constant.CachePrefixOffer + ":list"
	cacheHotelStatistics = constant.CachePrefixOffer + ":statistics"

	operationSingle = "single"
	operationList   = "list"

	modeAll       = "all"
	modeAvailable = "available"
)

func offerMode(availableOnly bool) string {
	if availableOnly {
		return modeAvailable
	}

	return modeAll
}

// Reservations is the part of the reservation service offers depend on. ExpireOverdue reclassifies
// overdue pending reservations so they stop holding rooms.
type Reservations interface {
	ExpireOverdue(ctx context.Context, asOf time.Time) (int, error)
	CountForHotel(ctx context.Context, hotelID string) (int, error)
}

type Offer interface {
	GetHotelOffer(ctx context.Context, hotelID string, checkIn, checkOut *time.Time) (dto.HotelOfferResponse, error)
	GetHotelStatistics(ctx context.Context, hotelID string) (dto.HotelStatisticsResponse, error)
	ListHotelOffers(ctx context.Context, criteria dto.OfferCriteria, params gDto.QueryParams) (dto.GetHotelOffersResponse, error)
}

type serviceImpl struct {
	hotelRepo    hotelRepository.Hotel
	builder      *offerBuilder
	catalog      Catalog
	reservations Reservations
	cfg          *config.Config
	cache        cache.RedisCache
	otel         otel.Otel
}

func New(
	hotelRepo hotelRepository.Hotel,
	roomRepo roomRepository.Room,
	roomTypeRepo roomRepository.RoomType,
	amenityRepo hotelRepository.Amenity,
	pricing pricingService.Pricing,
	reservations Reservations,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) Offer {
	builder := &offerBuilder{
		roomRepo:     roomRepo,
		roomTypeRepo: roomTypeRepo,
		amenityRepo:  amenityRepo,
		pricing:      pricing,
	}

	return &serviceImpl{
		hotelRepo:    hotelRepo,
		builder:      builder,
		catalog:      &memoryCatalog{hotelRepo: hotelRepo, builder: builder, cfg: cfg},
		reservations: reservations,
		cfg:          cfg,
		cache:        cache,
		otel:         otel,
	}
}

func (s *serviceImpl) GetHotelOffer(ctx context.Context, hotelID string, checkIn, checkOut *time.Time) (res dto.HotelOfferResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetHotelOffer")
	defer scope.End()
	defer scope.TraceIfError(err)

	defer metrics.ObserveOfferBuild(operationSingle, time.Now())

	today := timezone.Today()

	window, err := pipeline.DefaultWindow(checkIn, checkOut, today)
	if err != nil {
		return res, err
	}

	if err = s.sweep(ctx, today); err != nil {
		return res, err
	}

	availableOnly := checkIn != nil && checkOut != nil

	// an undated request defaults to the same window but lists every room, so the mode is part of the key
	cacheKey := shared.BuildCacheKey(cacheGetOffer, hotelID, offerMode(availableOnly),
		window.CheckIn.Format(constant.DateOnlyFormat), window.CheckOut.Format(constant.DateOnlyFormat))

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for hotel offer")

		return res, nil
	}

	hotel, err := s.hotelRepo.Get(ctx, shared.FilterByID(hotelID, hotelModel.FieldID, hotelModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get hotel")

		return res, fmt.Errorf("failed to get hotel: %w", err)
	}

	if hotel.ID == constant.Empty {
		return res, failure.NotFound("hotel not found") // nolint:wrapcheck
	}

	res, err = s.builder.build(ctx, hotel, window, availableOnly)
	if err != nil {
		return res, err
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save hotel offer to cache")
		}
	}()

	return res, nil
}

// GetHotelStatistics counts the hotel's rooms by status and its reservations.
func (s *serviceImpl) GetHotelStatistics(ctx context.Context, hotelID string) (res dto.HotelStatisticsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetHotelStatistics")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheHotelStatistics, hotelID)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for hotel statistics")

		return res, nil
	}

	hotel, err := s.hotelRepo.Get(ctx, shared.FilterByID(hotelID, hotelModel.FieldID, hotelModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get hotel")

		return res, fmt.Errorf("failed to get hotel: %w", err)
	}

	if hotel.ID == constant.Empty {
		return res, failure.NotFound("hotel not found") // nolint:wrapcheck
	}

	rooms, err := s.builder.roomRepo.ListForHotel(ctx, hotel.ID)
	if err != nil {
		log.Error().Err(err).Str("hotel_id", hotel.ID).Msg("failed to list rooms")

		return res, fmt.Errorf("failed to list rooms: %w", err)
	}

	reservations, err := s.reservations.CountForHotel(ctx, hotel.ID)
	if err != nil {
		return res, fmt.Errorf("failed to count reservations: %w", err)
	}

	res = statistics(hotel.ID, rooms, reservations)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save hotel statistics to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) ListHotelOffers(ctx context.Context, criteria dto.OfferCriteria, params gDto.QueryParams) (res dto.GetHotelOffersResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ListHotelOffers")
	defer scope.End()
	defer scope.TraceIfError(err)

	defer metrics.ObserveOfferBuild(operationList, time.Now())

	today := timezone.Today()

	if err = s.sweep(ctx, today); err != nil {
		return res, err
	}

	// prices depend on the day, so the day is part of the key
	prefix := shared.BuildCacheKey(cacheListOffers, today.Format(constant.DateOnlyFormat), dto.ParseSort(criteria.Sort).String())
	cacheKey := shared.BuildCacheKeyWithQuery(prefix, params, criteria.ToFilterGroup())

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for hotel offers")

		return res, nil
	}

	offers, total, err := s.catalog.Search(ctx, criteria, params)
	if err != nil {
		log.Error().Err(err).Msg("failed to search hotel offers")

		return res, fmt.Errorf("failed to search hotel offers: %w", err)
	}

	res.FromOffers(offers, total, params.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save hotel offers to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) sweep(ctx context.Context, today time.Time) error {
	if _, err := s.reservations.ExpireOverdue(ctx, today); err != nil {
		log.Error().Err(err).Msg("failed to expire overdue reservations")

		return fmt.Errorf("failed to expire overdue reservations: %w", err)
	}

	return nil
}
