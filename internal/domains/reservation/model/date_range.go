package model

import (
	"time"

	"hotelos/shared/constant"
	"hotelos/shared/failure"
)

// DateRange is a half-open stay: the guest leaves on CheckOut, so that night is not part of it.
type DateRange struct {
	CheckIn  time.Time
	CheckOut time.Time
}

func NewDateRange(checkIn, checkOut time.Time) (DateRange, error) {
	rng := DateRange{CheckIn: checkIn, CheckOut: checkOut}

	return rng, rng.Validate()
}

func (r DateRange) Validate() error {
	if r.CheckIn.IsZero() || r.CheckOut.IsZero() {
		return failure.BadRequestFromString("check_in and check_out are required") // nolint:wrapcheck
	}

	if !r.CheckOut.After(r.CheckIn) {
		return failure.BadRequestFromString("check_out must be after check_in") // nolint:wrapcheck
	}

	return nil
}

// Overlaps uses the exclusive-checkout rule, so back-to-back stays do not overlap.
func (r DateRange) Overlaps(other DateRange) bool {
	return r.CheckOut.After(other.CheckIn) && r.CheckIn.Before(other.CheckOut)
}

func (r DateRange) Nights() int {
	return int(r.CheckOut.Sub(r.CheckIn).Hours() / 24) //nolint:mnd
}

func (r DateRange) String() string {
	return r.CheckIn.Format(constant.DateOnlyFormat) + "/" + r.CheckOut.Format(constant.DateOnlyFormat)
}
