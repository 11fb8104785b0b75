package repository

//go:generate go run go.uber.org/mock/mockgen -source=./room_type.go -destination=../mocks/room_type_mock.go -package=mocks

import (
	"context"

	"hotelos/infras/otel"
	"hotelos/infras/postgres"
	"hotelos/internal/domains/room/model"
	gDto "hotelos/shared/dto"
	gRepo "hotelos/shared/repository"
)

type RoomType interface {
	ListForHotel(ctx context.Context, hotelID string) ([]model.RoomType, error)
}

type roomTypeRepositoryImpl struct {
	gRepo.Repository[model.RoomType]
}

func NewRoomType(db *postgres.Connection, otel otel.Otel) RoomType {
	return &roomTypeRepositoryImpl{
		Repository: gRepo.NewRepository[model.RoomType](model.RoomTypeEntityName, model.RoomTypeTableName, model.FieldID, db, otel),
	}
}

// ListForHotel returns active types that are global or scoped to hotelID.
func (r *roomTypeRepositoryImpl) ListForHotel(ctx context.Context, hotelID string) ([]model.RoomType, error) {
	params := gDto.QueryParams{SortBy: model.RoomTypeTableName + "." + model.RoomTypeFieldName, SortDir: gDto.SortDirAsc}
	filter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.RoomTypeFieldActive,
				Value:    true,
				Operator: gDto.FilterOperatorEq,
				Table:    model.RoomTypeTableName,
			},
			gDto.FilterGroup{
				Filters: []any{
					gDto.Filter{
						Field:    model.RoomTypeFieldHotelID,
						Operator: gDto.FilterIsNull,
						Table:    model.RoomTypeTableName,
					},
					gDto.Filter{
						Field:    model.RoomTypeFieldHotelID,
						Value:    hotelID,
						Operator: gDto.FilterOperatorEq,
						Table:    model.RoomTypeTableName,
					},
				},
				Operator: gDto.FilterGroupOperatorOr,
			},
		},
		Operator: gDto.FilterGroupOperatorAnd,
	}

	return r.GetAll(ctx, params, filter) //nolint:wrapcheck
}
