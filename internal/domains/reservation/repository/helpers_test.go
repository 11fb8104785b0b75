package repository_test

import (
	"time"

	"hotelos/internal/domains/reservation/model"

	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

func exclusionViolation() error {
	return &pq.Error{Code: "23P01", Constraint: "excl_reservations_room_stay"}
}

func reservationRow() model.Reservation {
	return model.Reservation{
		ID:           "res-1",
		RoomID:       "room-101",
		CheckInDate:  time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		CheckOutDate: time.Date(2024, 6, 5, 0, 0, 0, 0, time.UTC),
		Status:       model.StatusPending,
		TotalAmount:  decimal.NewFromInt(400),
		Adults:       1,
	}
}
