package model

import (
	"hotelos/shared/model"

	"github.com/shopspring/decimal"
)

const (
	TableName  = "rooms"
	EntityName = "room"

	FieldID         = "id"
	FieldHotelID    = "hotel_id"
	FieldRoomTypeID = "room_type_id"
	FieldRoomNumber = "room_number"
	FieldStatus     = "status"
)

const (
	StatusAvailable   = "AVAILABLE"
	StatusOccupied    = "OCCUPIED"
	StatusMaintenance = "MAINTENANCE"
	StatusCleaning    = "CLEANING"
	StatusOutOfOrder  = "OUT_OF_ORDER"
)

// Room is owned by inventory management; this service only reads it.
// The room type and hotel columns are joined in so a room can be priced without further lookups.
type Room struct {
	ID            string              `db:"id"`
	HotelID       string              `db:"hotel_id"`
	RoomTypeID    *string             `db:"room_type_id"`
	RoomNumber    string              `db:"room_number"`
	Capacity      int                 `db:"capacity"`
	PriceModifier decimal.NullDecimal `db:"price_modifier"`
	Status        string              `db:"status"`
	Description   string              `db:"description"`
	RoomTypeName  *string             `db:"room_type_name"  table:"room_types" column:"name"`
	PriceFactor   decimal.NullDecimal `db:"price_factor"    table:"room_types"`
	BasePrice     decimal.Decimal     `db:"base_price"      table:"hotels"`
	model.Metadata
}

func (Room) GetJoinQuery() string {
	return "LEFT JOIN room_types ON room_types.id = rooms.room_type_id JOIN hotels ON hotels.id = rooms.hotel_id"
}

func (r Room) IsAvailable() bool {
	return r.Status == StatusAvailable
}

// HasType reports whether the room can be grouped and priced by room type.
func (r Room) HasType() bool {
	return r.RoomTypeID != nil && r.PriceFactor.Valid
}
