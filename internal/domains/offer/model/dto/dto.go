package dto

import (
	"strings"

	hotelModel "hotelos/internal/domains/hotel/model"
	roomDto "hotelos/internal/domains/room/model/dto"
	"hotelos/shared"
	gDto "hotelos/shared/dto"

	"github.com/shopspring/decimal"
)

const (
	SortFieldName  = "name"
	SortFieldPrice = "price"

	sortDescSuffix = "-desc"
)

type AddressResponse struct {
	Street     string `json:"street"`
	City       string `json:"city"`
	Country    string `json:"country"`
	PostalCode string `json:"postal_code"`
}

type ContactResponse struct {
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Website string `json:"website"`
}

type AmenityResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

type CheapestRoomByTypeResponse struct {
	RoomTypeID   string               `json:"room_type_id"`
	RoomTypeName string               `json:"room_type_name"`
	Room         roomDto.RoomResponse `json:"room"`
}

type RoomTypeCountResponse struct {
	RoomTypeID   string `json:"room_type_id"`
	RoomTypeName string `json:"room_type_name"`
	Count        int    `json:"count"`
}

type HotelOfferResponse struct {
	ID                     string                       `json:"id"`
	Name                   string                       `json:"name"`
	Description            string                       `json:"description"`
	BasePrice              decimal.Decimal              `json:"base_price"`
	Address                AddressResponse              `json:"address"`
	Contact                ContactResponse              `json:"contact"`
	CheckIn                string                       `json:"check_in"`
	CheckOut               string                       `json:"check_out"`
	CheapestRoom           *roomDto.RoomResponse        `json:"cheapest_room"`
	CheapestRoomByType     []CheapestRoomByTypeResponse `json:"cheapest_room_by_type"`
	RoomTypeAvailableCount []RoomTypeCountResponse      `json:"room_type_available_count"`
	RoomTypes              []roomDto.RoomTypeResponse   `json:"room_types"`
	Amenities              []AmenityResponse            `json:"amenities"`
}

func (h *HotelOfferResponse) FromModel(hotel hotelModel.Hotel) {
	h.ID = hotel.ID
	h.Name = hotel.Name
	h.Description = hotel.Description
	h.BasePrice = hotel.BasePrice
	h.Address = AddressResponse{
		Street:     hotel.Street,
		City:       hotel.City,
		Country:    hotel.Country,
		PostalCode: hotel.PostalCode,
	}
	h.Contact = ContactResponse{
		Phone:   hotel.Phone,
		Email:   hotel.Email,
		Website: hotel.Website,
	}
}

func (h *HotelOfferResponse) WithAmenities(amenities []hotelModel.Amenity) {
	h.Amenities = make([]AmenityResponse, len(amenities))
	for i, amenity := range amenities {
		h.Amenities[i] = AmenityResponse{ID: amenity.ID, Name: amenity.Name, Description: amenity.Description}
	}
}

// CheapestPrice is the nightly price of the cheapest room, if any room could be priced.
func (h *HotelOfferResponse) CheapestPrice() (decimal.Decimal, bool) {
	if h.CheapestRoom == nil || h.CheapestRoom.Price == nil {
		return decimal.Zero, false
	}

	return *h.CheapestRoom.Price, true
}

type HotelStatisticsResponse struct {
	HotelID           string `json:"hotel_id"`
	TotalRooms        int    `json:"total_rooms"`
	AvailableRooms    int    `json:"available_rooms"`
	OccupiedRooms     int    `json:"occupied_rooms"`
	OutOfServiceRooms int    `json:"out_of_service_rooms"`
	ReservationsCount int    `json:"reservations_count"`
}

type GetHotelOffersResponse struct {
	Offers    []HotelOfferResponse `json:"offers"`
	TotalPage int                  `json:"total_page"`
	TotalData int                  `json:"total_data"`
}

func (r *GetHotelOffersResponse) FromOffers(offers []HotelOfferResponse, totalData, limit int) {
	r.Offers = offers
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)
}

// OfferCriteria holds the text filters and sort token of the multi-hotel listing.
type OfferCriteria struct {
	Name    string
	Country string
	City    string
	Sort    string
}

// ToFilterGroup turns the text filters into case-insensitive substring matches on the hotel table.
func (c OfferCriteria) ToFilterGroup() gDto.FilterGroup {
	group := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	for _, term := range []struct{ field, value string }{
		{hotelModel.FieldName, c.Name},
		{hotelModel.FieldCountry, c.Country},
		{hotelModel.FieldCity, c.City},
	} {
		if strings.TrimSpace(term.value) == "" {
			continue
		}

		group.Filters = append(group.Filters, gDto.Filter{
			Field:    term.field,
			Value:    strings.TrimSpace(term.value),
			Operator: gDto.FilterOperatorLike,
			Table:    hotelModel.TableName,
		})
	}

	return group
}

type SortSpec struct {
	Field string
	Desc  bool
}

// ParseSort reads a `field` or `field-desc` token. Unknown fields sort by name.
func ParseSort(token string) SortSpec {
	token = strings.ToLower(strings.TrimSpace(token))

	spec := SortSpec{Field: SortFieldName}
	if strings.HasSuffix(token, sortDescSuffix) {
		spec.Desc = true
		token = strings.TrimSuffix(token, sortDescSuffix)
	}

	if token == SortFieldPrice {
		spec.Field = SortFieldPrice
	}

	return spec
}

func (s SortSpec) String() string {
	if s.Desc {
		return s.Field + sortDescSuffix
	}

	return s.Field
}
