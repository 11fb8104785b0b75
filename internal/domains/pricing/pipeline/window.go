package pipeline

import (
	"time"

	"hotelos/shared/failure"
)

// Window is a half-open stay [CheckIn, CheckOut).
type Window struct {
	CheckIn  time.Time
	CheckOut time.Time
}

// DefaultWindow resolves optional stay dates. Without dates the price is quoted for one night starting today.
func DefaultWindow(checkIn, checkOut *time.Time, today time.Time) (Window, error) {
	switch {
	case checkIn == nil && checkOut == nil:
		return Window{CheckIn: today, CheckOut: today.AddDate(0, 0, 1)}, nil
	case checkIn == nil || checkOut == nil:
		return Window{}, failure.BadRequestFromString("check_in and check_out must be given together") // nolint:wrapcheck
	case !checkOut.After(*checkIn):
		return Window{}, failure.BadRequestFromString("check_out must be after check_in") // nolint:wrapcheck
	}

	return Window{CheckIn: *checkIn, CheckOut: *checkOut}, nil
}
