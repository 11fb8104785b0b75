package service

import (
	"context"
	"fmt"
	"slices"
	"strings"

	hotelModel "hotelos/internal/domains/hotel/model"
	hotelRepository "hotelos/internal/domains/hotel/repository"
	"hotelos/internal/domains/offer/model/dto"
	pricingService "hotelos/internal/domains/pricing/service"
	"hotelos/internal/domains/pricing/pipeline"
	roomModel "hotelos/internal/domains/room/model"
	roomDto "hotelos/internal/domains/room/model/dto"
	roomRepository "hotelos/internal/domains/room/repository"
	"hotelos/shared/constant"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// pricedRoom is a room with its nightly quote. Rooms that could not be priced carry priced=false.
type pricedRoom struct {
	room   roomModel.Room
	price  decimal.Decimal
	priced bool
}

type summary struct {
	cheapest *roomDto.RoomResponse
	byType   []dto.CheapestRoomByTypeResponse
	counts   []dto.RoomTypeCountResponse
}

// aggregate reduces priced rooms to the cheapest room overall, the cheapest room per type and the
// available count per type. Only AVAILABLE rooms count; untyped rooms never enter the per-type lists.
func aggregate(rooms []pricedRoom) summary {
	var (
		res      summary
		cheapest *pricedRoom
		perType  = map[string]pricedRoom{}
		counts   = map[string]int{}
		names    = map[string]string{}
	)

	for i := range rooms {
		candidate := rooms[i]
		if !candidate.room.IsAvailable() {
			continue
		}

		if candidate.priced && (cheapest == nil || candidate.price.LessThan(cheapest.price)) {
			cheapest = &rooms[i]
		}

		if !candidate.room.HasType() {
			continue
		}

		typeID := *candidate.room.RoomTypeID
		counts[typeID]++
		names[typeID] = typeName(candidate.room)

		if !candidate.priced {
			continue
		}

		if current, ok := perType[typeID]; !ok || candidate.price.LessThan(current.price) {
			perType[typeID] = candidate
		}
	}

	if cheapest != nil {
		resp := toRoomResponse(*cheapest)
		res.cheapest = &resp
	}

	res.byType = make([]dto.CheapestRoomByTypeResponse, 0, len(perType))
	for typeID, room := range perType {
		res.byType = append(res.byType, dto.CheapestRoomByTypeResponse{
			RoomTypeID:   typeID,
			RoomTypeName: names[typeID],
			Room:         toRoomResponse(room),
		})
	}

	slices.SortFunc(res.byType, func(a, b dto.CheapestRoomByTypeResponse) int {
		return compareType(a.RoomTypeName, a.RoomTypeID, b.RoomTypeName, b.RoomTypeID)
	})

	res.counts = make([]dto.RoomTypeCountResponse, 0, len(counts))
	for typeID, count := range counts {
		res.counts = append(res.counts, dto.RoomTypeCountResponse{
			RoomTypeID:   typeID,
			RoomTypeName: names[typeID],
			Count:        count,
		})
	}

	slices.SortFunc(res.counts, func(a, b dto.RoomTypeCountResponse) int {
		return compareType(a.RoomTypeName, a.RoomTypeID, b.RoomTypeName, b.RoomTypeID)
	})

	return res
}

// statistics counts rooms by status. Rooms under maintenance, cleaning or out of order are out of service.
func statistics(hotelID string, rooms []roomModel.Room, reservations int) dto.HotelStatisticsResponse {
	res := dto.HotelStatisticsResponse{
		HotelID:           hotelID,
		TotalRooms:        len(rooms),
		ReservationsCount: reservations,
	}

	for _, room := range rooms {
		switch room.Status {
		case roomModel.StatusAvailable:
			res.AvailableRooms++
		case roomModel.StatusOccupied:
			res.OccupiedRooms++
		default:
			res.OutOfServiceRooms++
		}
	}

	return res
}

func compareType(nameA, idA, nameB, idB string) int {
	if c := strings.Compare(nameA, nameB); c != 0 {
		return c
	}

	return strings.Compare(idA, idB)
}

func typeName(room roomModel.Room) string {
	if room.RoomTypeName == nil {
		return constant.Empty
	}

	return *room.RoomTypeName
}

func toRoomResponse(room pricedRoom) roomDto.RoomResponse {
	var resp roomDto.RoomResponse

	resp.FromModel(room.room)

	if room.priced {
		resp.WithPrice(room.price)
	}

	return resp
}

// offerBuilder assembles the offer of a single hotel from the room, room type and amenity stores.
type offerBuilder struct {
	roomRepo     roomRepository.Room
	roomTypeRepo roomRepository.RoomType
	amenityRepo  hotelRepository.Amenity
	pricing      pricingService.Pricing
}

// build prices the hotel's rooms for window. With availableOnly the room set is narrowed to rooms
// that are AVAILABLE and free of active reservations during the window.
func (b *offerBuilder) build(ctx context.Context, hotel hotelModel.Hotel, window pipeline.Window, availableOnly bool) (dto.HotelOfferResponse, error) {
	var res dto.HotelOfferResponse

	res.FromModel(hotel)
	res.CheckIn = window.CheckIn.Format(constant.DateOnlyFormat)
	res.CheckOut = window.CheckOut.Format(constant.DateOnlyFormat)

	var (
		rooms []roomModel.Room
		err   error
	)

	if availableOnly {
		rooms, err = b.roomRepo.ListAvailable(ctx, hotel.ID, window.CheckIn, window.CheckOut)
	} else {
		rooms, err = b.roomRepo.ListForHotel(ctx, hotel.ID)
	}

	if err != nil {
		log.Error().Err(err).Str("hotel_id", hotel.ID).Msg("failed to list rooms")

		return res, fmt.Errorf("failed to list rooms: %w", err)
	}

	priced := make([]pricedRoom, len(rooms))
	for i, room := range rooms {
		priced[i] = pricedRoom{room: room}

		_, quote, err := b.pricing.PriceRoom(room, window)
		if err != nil {
			log.Debug().Err(err).Str("room_id", room.ID).Msg("room left unpriced in offer")

			continue
		}

		priced[i].price = quote.Amount
		priced[i].priced = true
	}

	agg := aggregate(priced)
	res.CheapestRoom = agg.cheapest
	res.CheapestRoomByType = agg.byType
	res.RoomTypeAvailableCount = agg.counts

	types, err := b.roomTypeRepo.ListForHotel(ctx, hotel.ID)
	if err != nil {
		log.Error().Err(err).Str("hotel_id", hotel.ID).Msg("failed to list room types")

		return res, fmt.Errorf("failed to list room types: %w", err)
	}

	res.RoomTypes = make([]roomDto.RoomTypeResponse, len(types))
	for i, roomType := range types {
		res.RoomTypes[i].FromModel(roomType)
	}

	amenities, err := b.amenityRepo.ListForHotel(ctx, hotel.ID)
	if err != nil {
		log.Error().Err(err).Str("hotel_id", hotel.ID).Msg("failed to list amenities")

		return res, fmt.Errorf("failed to list amenities: %w", err)
	}

	res.WithAmenities(amenities)

	return res, nil
}
