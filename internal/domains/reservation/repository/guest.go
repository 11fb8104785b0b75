package repository

//go:generate go run go.uber.org/mock/mockgen -source=./guest.go -destination=../mocks/guest_mock.go -package=mocks

import (
	"context"

	"hotelos/infras/otel"
	"hotelos/infras/postgres"
	"hotelos/internal/domains/reservation/model"
	gDto "hotelos/shared/dto"
	gRepo "hotelos/shared/repository"

	"github.com/jmoiron/sqlx"
)

type Guest interface {
	InsertBulkTx(ctx context.Context, sqltx *sqlx.Tx, models []model.Guest) error
	DeleteTx(ctx context.Context, sqltx *sqlx.Tx, filter gDto.FilterGroup) error
	ListForReservation(ctx context.Context, reservationID string) ([]model.Guest, error)
}

type guestRepositoryImpl struct {
	gRepo.Repository[model.Guest]
}

func NewGuest(db *postgres.Connection, otel otel.Otel) Guest {
	return &guestRepositoryImpl{
		Repository: gRepo.NewRepository[model.Guest](model.GuestEntityName, model.GuestTableName, model.FieldID, db, otel),
	}
}

// ListForReservation returns the primary guest first.
func (r *guestRepositoryImpl) ListForReservation(ctx context.Context, reservationID string) ([]model.Guest, error) {
	params := gDto.QueryParams{
		SortBy:  model.GuestTableName + "." + model.GuestFieldIsPrimary + " DESC, " + model.GuestTableName + ".first_name",
		SortDir: gDto.SortDirAsc,
	}

	return r.GetAll(ctx, params, ByReservation(reservationID)) //nolint:wrapcheck
}

func ByReservation(reservationID string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.GuestFieldReservationID,
				Value:    reservationID,
				Operator: gDto.FilterOperatorEq,
				Table:    model.GuestTableName,
			},
		},
	}
}
