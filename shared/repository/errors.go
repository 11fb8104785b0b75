package repository

import (
	"errors"
	"hotelos/shared/constant"
	"hotelos/shared/failure"

	"github.com/lib/pq"
)

// MapConstraintError turns Postgres integrity violations into typed failures.
// Any other error is returned unchanged.
func MapConstraintError(err error) error {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return err
	}

	switch string(pqErr.Code) {
	case constant.PqErrorCodeExclusionViolation:
		return failure.RoomUnavailable
	case constant.PqErrorCodeUniqueViolation:
		return failure.Conflict("duplicate record: " + pqErr.Constraint) // nolint:wrapcheck
	case constant.PqErrorCodeFkViolation:
		return failure.BadRequestFromString("referenced record does not exist: " + pqErr.Constraint) // nolint:wrapcheck
	case constant.PqErrorCodeCheckViolation:
		return failure.BadRequestFromString("value violates constraint: " + pqErr.Constraint) // nolint:wrapcheck
	default:
		return err
	}
}
