package model

import (
	"hotelos/shared/model"

	"github.com/shopspring/decimal"
)

const (
	RoomTypeTableName  = "room_types"
	RoomTypeEntityName = "room_type"

	RoomTypeFieldName    = "name"
	RoomTypeFieldActive  = "active"
	RoomTypeFieldHotelID = "hotel_id"
)

// MinPriceFactor is exclusive; the database rejects factors at or below it.
var MinPriceFactor = decimal.RequireFromString("0.1")

// RoomType is an open catalog entry. A nil HotelID makes the type available to every hotel.
type RoomType struct {
	ID          string          `db:"id"`
	Name        string          `db:"name"`
	Description string          `db:"description"`
	PriceFactor decimal.Decimal `db:"price_factor"`
	Active      bool            `db:"active"`
	HotelID     *string         `db:"hotel_id"`
	model.Metadata
}

func (t RoomType) IsGlobal() bool {
	return t.HotelID == nil
}

func (t RoomType) AvailableTo(hotelID string) bool {
	return t.Active && (t.IsGlobal() || *t.HotelID == hotelID)
}
