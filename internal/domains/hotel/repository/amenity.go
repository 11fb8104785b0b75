package repository

//go:generate go run go.uber.org/mock/mockgen -source=./amenity.go -destination=../mocks/amenity_mock.go -package=mocks

import (
	"context"

	"hotelos/infras/otel"
	"hotelos/infras/postgres"
	"hotelos/internal/domains/hotel/model"
	gDto "hotelos/shared/dto"
	gRepo "hotelos/shared/repository"
)

type Amenity interface {
	ListForHotel(ctx context.Context, hotelID string) ([]model.Amenity, error)
}

type amenityRepositoryImpl struct {
	gRepo.Repository[model.Amenity]
}

func NewAmenity(db *postgres.Connection, otel otel.Otel) Amenity {
	return &amenityRepositoryImpl{
		Repository: gRepo.NewRepository[model.Amenity](model.AmenityEntityName, model.AmenityTableName, model.FieldID, db, otel),
	}
}

func (r *amenityRepositoryImpl) ListForHotel(ctx context.Context, hotelID string) ([]model.Amenity, error) {
	params := gDto.QueryParams{SortBy: model.AmenityTableName + "." + model.AmenityFieldName, SortDir: gDto.SortDirAsc}
	filter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.AmenityFieldHotelID,
				Value:    hotelID,
				Operator: gDto.FilterOperatorEq,
				Table:    model.AmenityTableName,
			},
		},
	}

	return r.GetAll(ctx, params, filter) //nolint:wrapcheck
}
