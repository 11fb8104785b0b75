package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"time"

	"hotelos/infras/otel"
	"hotelos/infras/postgres"
	"hotelos/internal/domains/room/model"
	"hotelos/shared/constant"
	gDto "hotelos/shared/dto"
	gRepo "hotelos/shared/repository"
)

const (
	argAvailableCheckIn  = "available_check_in"
	argAvailableCheckOut = "available_check_out"

	// mirrors the active-reservation predicate of the reservation store
	noActiveStayQuery = `NOT EXISTS (
		SELECT 1 FROM reservations
		WHERE reservations.room_id = rooms.id
		AND reservations.status NOT IN ('CANCELLED', 'EXPIRED')
		AND reservations.check_out_date > :available_check_in
		AND reservations.check_in_date < :available_check_out)`
)

type Room interface {
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Room, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Room, error)
	ListForHotel(ctx context.Context, hotelID string) ([]model.Room, error)
	ListAvailable(ctx context.Context, hotelID string, checkIn, checkOut time.Time) ([]model.Room, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Room]
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Room {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Room](model.EntityName, model.TableName, model.FieldID, db, otel),
		otel:       otel,
	}
}

func (r *repositoryImpl) ListForHotel(ctx context.Context, hotelID string) ([]model.Room, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".room.ListForHotel")
	defer scope.End()

	return r.GetAll(ctx, byRoomNumber(), byHotel(hotelID)) //nolint:wrapcheck
}

// ListAvailable returns the AVAILABLE rooms of a hotel that have no active reservation overlapping [checkIn, checkOut).
func (r *repositoryImpl) ListAvailable(ctx context.Context, hotelID string, checkIn, checkOut time.Time) ([]model.Room, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".room.ListAvailable")
	defer scope.End()

	filter := byHotel(hotelID)
	filter.Filters = append(filter.Filters,
		gDto.Filter{
			Field:    model.FieldStatus,
			Value:    model.StatusAvailable,
			Operator: gDto.FilterOperatorEq,
			Table:    model.TableName,
		},
		gDto.Filter{
			Value:    noActiveStayQuery,
			Operator: gDto.FilterPlainQuery,
			Args: map[string]any{
				argAvailableCheckIn:  checkIn.Format(constant.DateOnlyFormat),
				argAvailableCheckOut: checkOut.Format(constant.DateOnlyFormat),
			},
		},
	)

	return r.GetAll(ctx, byRoomNumber(), filter) //nolint:wrapcheck
}

func byHotel(hotelID string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldHotelID,
				Value:    hotelID,
				Operator: gDto.FilterOperatorEq,
				Table:    model.TableName,
			},
		},
		Operator: gDto.FilterGroupOperatorAnd,
	}
}

func byRoomNumber() gDto.QueryParams {
	return gDto.QueryParams{
		SortBy:  model.TableName + "." + model.FieldRoomNumber,
		SortDir: gDto.SortDirAsc,
	}
}
