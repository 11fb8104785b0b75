package model

import "hotelos/shared/model"

const (
	AmenityTableName  = "amenities"
	AmenityEntityName = "amenity"

	AmenityFieldHotelID = "hotel_id"
	AmenityFieldName    = "name"
)

type Amenity struct {
	ID          string `db:"id"`
	HotelID     string `db:"hotel_id"`
	Name        string `db:"name"`
	Description string `db:"description"`
	model.Metadata
}
