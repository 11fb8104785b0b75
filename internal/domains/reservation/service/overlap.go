package service

import (
	"context"
	"fmt"

	"hotelos/internal/domains/reservation/model"
	"hotelos/internal/domains/reservation/repository"
	"hotelos/shared/constant"
	gDto "hotelos/shared/dto"
	"hotelos/shared/failure"

	"github.com/jmoiron/sqlx"
)

const (
	argOverlapCheckIn  = "overlap_check_in"
	argOverlapCheckOut = "overlap_check_out"
	argOverlapExclude  = "overlap_exclude_id"
)

// OverlapValidator answers whether a room is already held for some part of a stay.
type OverlapValidator struct {
	repo repository.Reservation
}

func NewOverlapValidator(repo repository.Reservation) *OverlapValidator {
	return &OverlapValidator{repo: repo}
}

// HasConflict reports whether an active reservation of roomID other than excludeID overlaps rng.
// Reads go through sqltx so rows locked or written earlier in the transaction are seen.
func (v *OverlapValidator) HasConflict(ctx context.Context, sqltx *sqlx.Tx, roomID string, rng model.DateRange, excludeID string) (bool, error) {
	if err := rng.Validate(); err != nil {
		return false, err
	}

	candidates, err := v.repo.GetAllTx(ctx, sqltx, gDto.QueryParams{}, overlapFilter(roomID, rng, excludeID))
	if err != nil {
		return false, fmt.Errorf("failed to get overlapping reservations: %w", err)
	}

	for _, candidate := range candidates {
		if candidate.ID == excludeID || !candidate.Status.IsActive() {
			continue
		}

		if candidate.Range().Overlaps(rng) {
			return true, nil
		}
	}

	return false, nil
}

// Validate is HasConflict turned into the error returned to callers.
func (v *OverlapValidator) Validate(ctx context.Context, sqltx *sqlx.Tx, roomID string, rng model.DateRange, excludeID string) error {
	conflict, err := v.HasConflict(ctx, sqltx, roomID, rng, excludeID)
	if err != nil {
		return err
	}

	if conflict {
		return failure.RoomUnavailable
	}

	return nil
}

func overlapFilter(roomID string, rng model.DateRange, excludeID string) gDto.FilterGroup {
	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldRoomID,
				Value:    roomID,
				Operator: gDto.FilterOperatorEq,
				Table:    model.TableName,
			},
			gDto.Filter{
				ArgName:  argOverlapCheckIn,
				Field:    model.FieldCheckOutDate,
				Value:    rng.CheckIn.Format(constant.DateOnlyFormat),
				Operator: gDto.FilterOperatorGreater,
				Table:    model.TableName,
			},
			gDto.Filter{
				ArgName:  argOverlapCheckOut,
				Field:    model.FieldCheckInDate,
				Value:    rng.CheckOut.Format(constant.DateOnlyFormat),
				Operator: gDto.FilterOperatorLess,
				Table:    model.TableName,
			},
			gDto.Filter{
				Field:    model.FieldStatus,
				Value:    statusValues(model.InactiveStatuses),
				Operator: gDto.FilterOperatorNotIn,
				Table:    model.TableName,
			},
		},
	}

	if excludeID != "" {
		filter.Filters = append(filter.Filters, gDto.Filter{
			ArgName:  argOverlapExclude,
			Field:    model.FieldID,
			Value:    excludeID,
			Operator: gDto.FilterOperatorNotEq,
			Table:    model.TableName,
		})
	}

	return filter
}

func statusValues(statuses []model.Status) []string {
	values := make([]string, len(statuses))
	for i, status := range statuses {
		values[i] = status.String()
	}

	return values
}
