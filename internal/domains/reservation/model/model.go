package model

import (
	"time"

	"hotelos/shared/model"

	"github.com/shopspring/decimal"
)

const (
	TableName  = "reservations"
	EntityName = "reservation"

	FieldID              = "id"
	FieldRoomID          = "room_id"
	FieldUserID          = "user_id"
	FieldReservationName = "reservation_name"
	FieldCheckInDate     = "check_in_date"
	FieldCheckOutDate    = "check_out_date"
	FieldStatus          = "status"
	FieldTotalAmount     = "total_amount"
	FieldHotelID         = "hotel_id"
)

type Reservation struct {
	ID              string          `db:"id"`
	RoomID          string          `db:"room_id"`
	UserID          *string         `db:"user_id"`
	ReservationName string          `db:"reservation_name"`
	CheckInDate     time.Time       `db:"check_in_date"`
	CheckOutDate    time.Time       `db:"check_out_date"`
	Status          Status          `db:"status"`
	TotalAmount     decimal.Decimal `db:"total_amount"`
	Adults          int             `db:"adults"`
	Children        int             `db:"children"`
	HotelID         string          `db:"hotel_id"         table:"rooms"`
	model.Metadata
}

func (Reservation) GetJoinQuery() string {
	return "JOIN rooms ON rooms.id = reservations.room_id"
}

func (r Reservation) Range() DateRange {
	return DateRange{CheckIn: r.CheckInDate, CheckOut: r.CheckOutDate}
}

// Patch holds the columns an update may change. Zero values are left untouched.
type Patch struct {
	RoomID          string           `db:"room_id"`
	ReservationName string           `db:"reservation_name"`
	CheckInDate     time.Time        `db:"check_in_date"`
	CheckOutDate    time.Time        `db:"check_out_date"`
	Status          Status           `db:"status"`
	TotalAmount     *decimal.Decimal `db:"total_amount"`
	Adults          int              `db:"adults"`
	Children        *int             `db:"children"`
}

// Apply returns r with every non-zero patch field written over it.
func (p Patch) Apply(r Reservation) Reservation {
	if p.RoomID != "" {
		r.RoomID = p.RoomID
	}

	if p.ReservationName != "" {
		r.ReservationName = p.ReservationName
	}

	if !p.CheckInDate.IsZero() {
		r.CheckInDate = p.CheckInDate
	}

	if !p.CheckOutDate.IsZero() {
		r.CheckOutDate = p.CheckOutDate
	}

	if p.Status != "" {
		r.Status = p.Status
	}

	if p.TotalAmount != nil {
		r.TotalAmount = *p.TotalAmount
	}

	if p.Adults != 0 {
		r.Adults = p.Adults
	}

	if p.Children != nil {
		r.Children = *p.Children
	}

	return r
}
