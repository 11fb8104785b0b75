package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Reservation=MockReservationService

import (
	"context"
	"fmt"
	"slices"
	"time"

	"hotelos/config"
	"hotelos/infras/kafka"
	"hotelos/infras/metrics"
	"hotelos/infras/otel"
	pricingPipeline "hotelos/internal/domains/pricing/pipeline"
	pricingService "hotelos/internal/domains/pricing/service"
	"hotelos/internal/domains/reservation/model"
	"hotelos/internal/domains/reservation/model/dto"
	"hotelos/internal/domains/reservation/repository"
	roomModel "hotelos/internal/domains/room/model"
	roomRepository "hotelos/internal/domains/room/repository"
	"hotelos/shared"
	"hotelos/shared/cache"
	"hotelos/shared/constant"
	gDto "hotelos/shared/dto"
	"hotelos/shared/failure"
	gModel "hotelos/shared/model"
	"hotelos/shared/timezone"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

const (
	cacheGetReservation    = constant.CachePrefixReservation + ":get"
	cacheGetAllReservation = constant.CachePrefixReservation + ":gets"

	argSweepStatus    = "sweep_status"
	argSweepAsOf      = "sweep_as_of"
	argSweepRoom      = "sweep_room_id"
	argExpectedStatus = "expected_status"
)

type Reservation interface {
	Create(ctx context.Context, req dto.CreateReservationRequest) (dto.ReservationResponse, error)
	Update(ctx context.Context, req dto.UpdateReservationRequest, id string) (dto.ReservationResponse, error)
	Get(ctx context.Context, id string) (dto.ReservationResponse, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter dto.ReservationFilter) (dto.GetReservationsResponse, error)
	Transition(ctx context.Context, id string, target model.Status) (dto.ReservationResponse, error)
	ExpireOverdue(ctx context.Context, asOf time.Time) (int, error)
	CountForHotel(ctx context.Context, hotelID string) (int, error)
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo      repository.Reservation
	guestRepo repository.Guest
	roomRepo  roomRepository.Room
	pricing   pricingService.Pricing
	overlap   *OverlapValidator
	kafka     kafka.Client
	cfg       *config.Config
	cache     cache.RedisCache
	otel      otel.Otel
}

func New(
	repo repository.Reservation,
	guestRepo repository.Guest,
	roomRepo roomRepository.Room,
	pricing pricingService.Pricing,
	kafka kafka.Client,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) Reservation {
	return &serviceImpl{
		repo:      repo,
		guestRepo: guestRepo,
		roomRepo:  roomRepo,
		pricing:   pricing,
		overlap:   NewOverlapValidator(repo),
		kafka:     kafka,
		cfg:       cfg,
		cache:     cache,
		otel:      otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateReservationRequest) (res dto.ReservationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	rng, err := req.Range()
	if err != nil {
		return res, err
	}

	room, err := s.getRoom(ctx, req.RoomID)
	if err != nil {
		return res, err
	}

	reservation, guests := req.ToModel(user, rng)
	reservation.HotelID = room.HotelID

	err = s.repo.Transaction(ctx, func(sqltx *sqlx.Tx) error {
		if err := s.repo.LockRoom(ctx, sqltx, room.ID); err != nil {
			return err //nolint:wrapcheck
		}

		if _, err := s.expireTx(ctx, sqltx, timezone.Today(), room.ID); err != nil {
			return err
		}

		if err := s.overlap.Validate(ctx, sqltx, room.ID, rng, ""); err != nil {
			return err
		}

		if !req.HasTotalAmount() {
			total, err := s.totalFor(room, rng)
			if err != nil {
				return err
			}

			reservation.TotalAmount = total
		}

		if err := s.repo.InsertTx(ctx, sqltx, reservation); err != nil {
			return err //nolint:wrapcheck
		}

		if len(guests) > 0 {
			if err := s.guestRepo.InsertBulkTx(ctx, sqltx, guests); err != nil {
				return err //nolint:wrapcheck
			}
		}

		return nil
	})
	if err != nil {
		if failure.IsConflict(err) {
			metrics.ReservationConflicts.Inc()
		}

		log.Error().Err(err).Str("room_id", req.RoomID).Str("stay", rng.String()).Msg("failed to create reservation")

		return res, fmt.Errorf("failed to create reservation: %w", err)
	}

	metrics.ReservationsCreated.Inc()
	s.invalidate(ctx)
	s.publish(ctx, newEvent(EventReservationCreated, reservation, ""))

	res.FromModel(reservation)
	res.WithGuests(guests)

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateReservationRequest, id string) (res dto.ReservationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	current, err := s.getReservation(ctx, id)
	if err != nil {
		return res, err
	}

	if current.Status.IsTerminal() {
		return res, failure.Conflict(fmt.Sprintf("reservation is %s and can no longer change", current.Status)) // nolint:wrapcheck
	}

	rng, err := req.Range(current.Range())
	if err != nil {
		return res, err
	}

	patch := req.ToPatch(rng)
	if patch.Status != "" && patch.Status != current.Status && !current.Status.CanTransitionTo(patch.Status) {
		return res, failure.Conflict(fmt.Sprintf("cannot change status from %s to %s", current.Status, patch.Status)) // nolint:wrapcheck
	}

	var guests []model.Guest
	if req.Guests != nil {
		guests = dto.GuestsToModels(*req.Guests, id, gModel.NewMetadata(user, timezone.Now()))
		if patch.ReservationName == "" && len(guests) > 0 {
			patch.ReservationName = model.DisplayName(guests)
		}
	}

	room := roomModel.Room{ID: current.RoomID, HotelID: current.HotelID}
	roomChanged := patch.RoomID != "" && patch.RoomID != current.RoomID

	if roomChanged {
		room, err = s.getRoom(ctx, patch.RoomID)
		if err != nil {
			return res, err
		}
	}

	rangeChanged := !rng.CheckIn.Equal(current.CheckInDate) || !rng.CheckOut.Equal(current.CheckOutDate)

	if (rangeChanged || roomChanged) && patch.TotalAmount == nil {
		if !roomChanged {
			room, err = s.getRoom(ctx, current.RoomID)
			if err != nil {
				return res, err
			}
		}

		total, err := s.totalFor(room, rng)
		if err != nil {
			return res, err
		}

		patch.TotalAmount = &total
	}

	updated := patch.Apply(current)
	updated.HotelID = room.HotelID

	err = s.repo.Transaction(ctx, func(sqltx *sqlx.Tx) error {
		if err := s.lockRooms(ctx, sqltx, current.RoomID, updated.RoomID); err != nil {
			return err
		}

		locked, err := s.repo.GetForUpdateTx(ctx, sqltx, shared.FilterByID(id, model.FieldID, model.TableName))
		if err != nil {
			return err //nolint:wrapcheck
		}

		if locked.ID == constant.Empty {
			return failure.NotFound("reservation not found") // nolint:wrapcheck
		}

		if changedSince(locked, current) {
			return failure.ReservationChanged
		}

		if updated.Status.IsActive() && (rangeChanged || roomChanged) {
			if _, err := s.expireTx(ctx, sqltx, timezone.Today(), updated.RoomID); err != nil {
				return err
			}

			if err := s.overlap.Validate(ctx, sqltx, updated.RoomID, rng, id); err != nil {
				return err
			}
		}

		if err := s.repo.UpdateTx(ctx, sqltx, shared.TransformFields(patch, user), byIDAndStatus(id, current.Status)); err != nil {
			return err //nolint:wrapcheck
		}

		if req.Guests == nil {
			return nil
		}

		if err := s.guestRepo.DeleteTx(ctx, sqltx, repository.ByReservation(id)); err != nil {
			return err //nolint:wrapcheck
		}

		if len(guests) == 0 {
			return nil
		}

		return s.guestRepo.InsertBulkTx(ctx, sqltx, guests) //nolint:wrapcheck
	})
	if err != nil {
		if failure.IsConflict(err) {
			metrics.ReservationConflicts.Inc()
		}

		log.Error().Err(err).Str("id", id).Msg("failed to update reservation")

		return res, fmt.Errorf("failed to update reservation: %w", err)
	}

	s.invalidate(ctx)

	eventType := EventReservationUpdated
	if updated.Status != current.Status {
		eventType = EventReservationStatusChanged
	}

	s.publish(ctx, newEvent(eventType, updated, current.Status))

	updated.ModifiedAt = timezone.Now()
	updated.ModifiedBy = user

	res.FromModel(updated)

	if req.Guests != nil {
		res.WithGuests(guests)
	}

	return res, nil
}

// changedSince reports whether the row read under lock differs from the one the patch was merged over.
func changedSince(locked, read model.Reservation) bool {
	return locked.Status != read.Status ||
		locked.RoomID != read.RoomID ||
		!locked.CheckInDate.Equal(read.CheckInDate) ||
		!locked.CheckOutDate.Equal(read.CheckOutDate)
}

// Transition moves a reservation to target along the lifecycle.
func (s *serviceImpl) Transition(ctx context.Context, id string, target model.Status) (res dto.ReservationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Transition")
	defer scope.End()
	defer scope.TraceIfError(err)

	return s.Update(ctx, dto.UpdateReservationRequest{Status: target.String()}, id)
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.ReservationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	if _, err = s.ExpireOverdue(ctx, timezone.Today()); err != nil {
		return res, err
	}

	cacheKey := shared.BuildCacheKey(cacheGetReservation, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for reservation")

		return res, nil
	}

	reservation, err := s.getReservation(ctx, id)
	if err != nil {
		return res, err
	}

	guests, err := s.guestRepo.ListForReservation(ctx, id)
	if err != nil {
		log.Error().Err(err).Msg("failed to get reservation guests")

		return res, fmt.Errorf("failed to get reservation guests: %w", err)
	}

	res.FromModel(reservation)
	res.WithGuests(guests)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save reservation to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, params gDto.QueryParams, filter dto.ReservationFilter) (res dto.GetReservationsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	if _, err = s.ExpireOverdue(ctx, timezone.Today()); err != nil {
		return res, err
	}

	params = dto.NormalizeQueryParams(params)
	group := filter.ToFilterGroup()
	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllReservation, params, group)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for reservations")

		return res, nil
	}

	total, err := s.repo.Count(ctx, group)
	if err != nil {
		log.Error().Err(err).Msg("failed to count reservations")

		return res, fmt.Errorf("failed to count reservations: %w", err)
	}

	models, err := s.repo.GetAll(ctx, params, group)
	if err != nil {
		log.Error().Err(err).Msg("failed to get reservations")

		return res, fmt.Errorf("failed to get reservations: %w", err)
	}

	res.FromModels(models, total, params.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save reservations to cache")
		}
	}()

	return res, nil
}

// ExpireOverdue marks every PENDING reservation whose check-out is before asOf as EXPIRED.
// Running it again with the same asOf changes nothing.
func (s *serviceImpl) ExpireOverdue(ctx context.Context, asOf time.Time) (count int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ExpireOverdue")
	defer scope.End()
	defer scope.TraceIfError(err)

	var expired []model.Reservation

	err = s.repo.Transaction(ctx, func(sqltx *sqlx.Tx) error {
		var err error

		expired, err = s.expireTx(ctx, sqltx, asOf, "")

		return err
	})
	if err != nil {
		log.Error().Err(err).Time("as_of", asOf).Msg("failed to expire overdue reservations")

		return 0, fmt.Errorf("failed to expire overdue reservations: %w", err)
	}

	if len(expired) == 0 {
		return 0, nil
	}

	log.Info().Int("count", len(expired)).Time("as_of", asOf).Msg("expired overdue reservations")

	metrics.ReservationsExpired.Add(float64(len(expired)))
	s.invalidate(ctx)

	events := make([]Event, len(expired))
	for i, reservation := range expired {
		reservation.Status = model.StatusExpired
		events[i] = newEvent(EventReservationExpired, reservation, model.StatusPending)
	}

	s.publish(ctx, events...)

	return len(expired), nil
}

// CountForHotel counts every reservation ever made at the hotel, whatever its status.
func (s *serviceImpl) CountForHotel(ctx context.Context, hotelID string) (count int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CountForHotel")
	defer scope.End()
	defer scope.TraceIfError(err)

	count, err = s.repo.Count(ctx, shared.FilterByID(hotelID, model.FieldHotelID, model.TableName))
	if err != nil {
		log.Error().Err(err).Str("hotel_id", hotelID).Msg("failed to count reservations")

		return 0, fmt.Errorf("failed to count reservations: %w", err)
	}

	return count, nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	reservation, err := s.getReservation(ctx, id)
	if err != nil {
		return err
	}

	if err = s.repo.Delete(ctx, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to delete reservation")

		return fmt.Errorf("failed to delete reservation: %w", err)
	}

	s.invalidate(ctx)
	s.publish(ctx, newEvent(EventReservationDeleted, reservation, reservation.Status))

	return nil
}

// expireTx runs the sweep inside sqltx, limited to roomID when it is set, and returns the rows it expired.
func (s *serviceImpl) expireTx(ctx context.Context, sqltx *sqlx.Tx, asOf time.Time, roomID string) ([]model.Reservation, error) {
	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				ArgName:  argSweepStatus,
				Field:    model.FieldStatus,
				Value:    model.StatusPending.String(),
				Operator: gDto.FilterOperatorEq,
				Table:    model.TableName,
			},
			gDto.Filter{
				ArgName:  argSweepAsOf,
				Field:    model.FieldCheckOutDate,
				Value:    asOf.Format(constant.DateOnlyFormat),
				Operator: gDto.FilterOperatorLess,
				Table:    model.TableName,
			},
		},
	}

	if roomID != "" {
		filter.Filters = append(filter.Filters, gDto.Filter{
			ArgName:  argSweepRoom,
			Field:    model.FieldRoomID,
			Value:    roomID,
			Operator: gDto.FilterOperatorEq,
			Table:    model.TableName,
		})
	}

	overdue, err := s.repo.GetAllTx(ctx, sqltx, gDto.QueryParams{}, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to get overdue reservations: %w", err)
	}

	if len(overdue) == 0 {
		return nil, nil
	}

	ids := make([]string, len(overdue))
	for i, reservation := range overdue {
		ids[i] = reservation.ID
	}

	update := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldID,
				Value:    ids,
				Operator: gDto.FilterOperatorIn,
				Table:    model.TableName,
			},
			gDto.Filter{
				ArgName:  argExpectedStatus,
				Field:    model.FieldStatus,
				Value:    model.StatusPending.String(),
				Operator: gDto.FilterOperatorEq,
				Table:    model.TableName,
			},
		},
	}

	fields := shared.TransformFields(model.Patch{Status: model.StatusExpired}, constant.ContextSystem)

	if err := s.repo.UpdateTx(ctx, sqltx, fields, update); err != nil {
		return nil, fmt.Errorf("failed to expire reservations: %w", err)
	}

	return overdue, nil
}

// lockRooms locks every distinct room in id order so two updates moving between the same rooms cannot deadlock.
func (s *serviceImpl) lockRooms(ctx context.Context, sqltx *sqlx.Tx, roomIDs ...string) error {
	unique := map[string]struct{}{}
	ordered := make([]string, 0, len(roomIDs))

	for _, id := range roomIDs {
		if _, ok := unique[id]; ok {
			continue
		}

		unique[id] = struct{}{}
		ordered = append(ordered, id)
	}

	slices.Sort(ordered)

	for _, id := range ordered {
		if err := s.repo.LockRoom(ctx, sqltx, id); err != nil {
			return err //nolint:wrapcheck
		}
	}

	return nil
}

func (s *serviceImpl) totalFor(room roomModel.Room, rng model.DateRange) (decimal.Decimal, error) {
	_, quote, err := s.pricing.PriceRoom(room, pricingPipeline.Window{CheckIn: rng.CheckIn, CheckOut: rng.CheckOut})
	if err != nil {
		return decimal.Zero, err //nolint:wrapcheck
	}

	return quote.Amount.Mul(decimal.NewFromInt(int64(rng.Nights()))), nil
}

func (s *serviceImpl) getRoom(ctx context.Context, roomID string) (roomModel.Room, error) {
	room, err := s.roomRepo.Get(ctx, shared.FilterByID(roomID, roomModel.FieldID, roomModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get room")

		return room, fmt.Errorf("failed to get room: %w", err)
	}

	if room.ID == constant.Empty {
		return room, failure.NotFound("room not found") // nolint:wrapcheck
	}

	return room, nil
}

func (s *serviceImpl) getReservation(ctx context.Context, id string) (model.Reservation, error) {
	reservation, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get reservation")

		return reservation, fmt.Errorf("failed to get reservation: %w", err)
	}

	if reservation.ID == constant.Empty {
		return reservation, failure.NotFound("reservation not found") // nolint:wrapcheck
	}

	return reservation, nil
}

// invalidate drops every cached reservation read and every offer, since offers depend on availability.
func (s *serviceImpl) invalidate(ctx context.Context) {
	shared.InvalidateCaches(ctx, s.cache, cacheGetReservation)
	shared.InvalidateCaches(ctx, s.cache, cacheGetAllReservation)
	shared.InvalidateCaches(ctx, s.cache, constant.CachePrefixOffer)
}

func byIDAndStatus(id string, status model.Status) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldID,
				Value:    id,
				Operator: gDto.FilterOperatorEq,
				Table:    model.TableName,
			},
			gDto.Filter{
				ArgName:  argExpectedStatus,
				Field:    model.FieldStatus,
				Value:    status.String(),
				Operator: gDto.FilterOperatorEq,
				Table:    model.TableName,
			},
		},
	}
}
