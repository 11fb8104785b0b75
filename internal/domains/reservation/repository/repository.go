package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"hotelos/infras/otel"
	"hotelos/infras/postgres"
	"hotelos/internal/domains/reservation/model"
	"hotelos/shared/constant"
	gDto "hotelos/shared/dto"
	"hotelos/shared/failure"
	"hotelos/shared/logger"
	gRepo "hotelos/shared/repository"

	"github.com/jmoiron/sqlx"
)

const lockRoomQuery = "SELECT id FROM rooms WHERE id = $1 FOR UPDATE"

type Reservation interface {
	InsertTx(ctx context.Context, sqltx *sqlx.Tx, model model.Reservation) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Reservation, error)
	GetForUpdateTx(ctx context.Context, sqltx *sqlx.Tx, filter gDto.FilterGroup, columns ...string) (model.Reservation, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Reservation, error)
	GetAllTx(ctx context.Context, sqltx *sqlx.Tx, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Reservation, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	UpdateTx(ctx context.Context, sqltx *sqlx.Tx, mod map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
	Transaction(ctx context.Context, fn func(sqltx *sqlx.Tx) error) error
	LockRoom(ctx context.Context, sqltx *sqlx.Tx, roomID string) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Reservation]
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Reservation {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Reservation](model.EntityName, model.TableName, model.FieldID, db, otel),
		otel:       otel,
	}
}

// LockRoom takes the row lock on the room so concurrent writers for it run one at a time.
func (r *repositoryImpl) LockRoom(ctx context.Context, sqltx *sqlx.Tx, roomID string) error {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".reservation.LockRoom")
	defer scope.End()

	scope.SetAttribute(constant.OtelQueryAttributeKey, lockRoomQuery)

	var id string

	err := sqltx.QueryRowxContext(ctx, lockRoomQuery, roomID).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return failure.NotFound("room not found") // nolint:wrapcheck
	}

	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return fmt.Errorf("failed to lock room: %w", err)
	}

	return nil
}
