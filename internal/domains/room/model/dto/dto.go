package dto

import (
	"hotelos/internal/domains/room/model"

	"github.com/shopspring/decimal"
)

type RoomResponse struct {
	ID            string           `json:"id"`
	HotelID       string           `json:"hotel_id"`
	RoomNumber    string           `json:"room_number"`
	RoomTypeID    *string          `json:"room_type_id,omitempty"`
	RoomTypeName  *string          `json:"room_type_name,omitempty"`
	Capacity      int              `json:"capacity"`
	Status        string           `json:"status"`
	PriceModifier *decimal.Decimal `json:"price_modifier,omitempty"`
	Price         *decimal.Decimal `json:"price,omitempty"`
}

func (r *RoomResponse) FromModel(model model.Room) {
	r.ID = model.ID
	r.HotelID = model.HotelID
	r.RoomNumber = model.RoomNumber
	r.RoomTypeID = model.RoomTypeID
	r.RoomTypeName = model.RoomTypeName
	r.Capacity = model.Capacity
	r.Status = model.Status

	if model.PriceModifier.Valid {
		modifier := model.PriceModifier.Decimal
		r.PriceModifier = &modifier
	}
}

// WithPrice attaches a quoted nightly price to the response.
func (r *RoomResponse) WithPrice(price decimal.Decimal) {
	r.Price = &price
}

type RoomTypeResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	PriceFactor decimal.Decimal `json:"price_factor"`
	Global      bool            `json:"global"`
}

func (r *RoomTypeResponse) FromModel(model model.RoomType) {
	r.ID = model.ID
	r.Name = model.Name
	r.Description = model.Description
	r.PriceFactor = model.PriceFactor
	r.Global = model.IsGlobal()
}
