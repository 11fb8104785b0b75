package service_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"hotelos/config"
	otelMocks "hotelos/infras/otel/mocks"
	hotelMocks "hotelos/internal/domains/hotel/mocks"
	hotelModel "hotelos/internal/domains/hotel/model"
	"hotelos/internal/domains/offer/mocks"
	"hotelos/internal/domains/offer/model/dto"
	"hotelos/internal/domains/offer/service"
	"hotelos/internal/domains/pricing/pipeline"
	pricingService "hotelos/internal/domains/pricing/service"
	roomMocks "hotelos/internal/domains/room/mocks"
	roomModel "hotelos/internal/domains/room/model"
	"hotelos/shared/cache"
	cacheMocks "hotelos/shared/cache/mocks"
	gDto "hotelos/shared/dto"
	"hotelos/shared/failure"
	"hotelos/shared/timezone"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	hotelRepo    *hotelMocks.MockHotel
	amenityRepo  *hotelMocks.MockAmenity
	roomRepo     *roomMocks.MockRoom
	roomTypeRepo *roomMocks.MockRoomType
	reservations *mocks.MockReservations
	cache        *cacheMocks.MockRedisCache
	svc          service.Offer
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	ctrl := gomock.NewController(t)

	f := &fixture{
		hotelRepo:    hotelMocks.NewMockHotel(ctrl),
		amenityRepo:  hotelMocks.NewMockAmenity(ctrl),
		roomRepo:     roomMocks.NewMockRoom(ctrl),
		roomTypeRepo: roomMocks.NewMockRoomType(ctrl),
		reservations: mocks.NewMockReservations(ctrl),
		cache:        cacheMocks.NewMockRedisCache(ctrl),
	}

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600
	cfg.App.Offer.Concurrency = 2

	otel := otelMocks.NewOtel()
	pricing := pricingService.New(f.roomRepo, pipeline.DefaultPipeline(), cfg, f.cache, otel)

	f.svc = service.New(f.hotelRepo, f.roomRepo, f.roomTypeRepo, f.amenityRepo, pricing, f.reservations, cfg, f.cache, otel)

	f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss")).AnyTimes()
	f.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.reservations.EXPECT().ExpireOverdue(gomock.Any(), gomock.Any()).Return(0, nil).AnyTimes()

	return f
}

func hotel(id, name string) hotelModel.Hotel {
	return hotelModel.Hotel{ID: id, Name: name, BasePrice: decimal.NewFromInt(100)}
}

func room(hotelID, number, typeID, typeName, factor, status string) roomModel.Room {
	r := roomModel.Room{
		ID:         hotelID + "-" + number,
		HotelID:    hotelID,
		RoomNumber: number,
		Status:     status,
		BasePrice:  decimal.NewFromInt(100),
	}

	if typeID != "" {
		r.RoomTypeID = &typeID
		r.RoomTypeName = &typeName
		r.PriceFactor = decimal.NewNullDecimal(decimal.RequireFromString(factor))
	}

	return r
}

func date(year int, month time.Month, day int) *time.Time {
	d := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)

	return &d
}

func TestOfferService_GetHotelOffer(t *testing.T) {
	standardAndSuite := []roomModel.Room{
		room("h-1", "101", "rt-std", "STANDARD", "1.0", roomModel.StatusAvailable),
		room("h-1", "201", "rt-suite", "SUITE", "2.0", roomModel.StatusAvailable),
		room("h-1", "301", "", "", "", roomModel.StatusAvailable),
		room("h-1", "102", "rt-std", "STANDARD", "1.0", roomModel.StatusOccupied),
	}

	tests := []struct {
		name      string
		checkIn   *time.Time
		checkOut  *time.Time
		setupMock func(f *fixture)
		wantErr   bool
		check     func(t *testing.T, res dto.HotelOfferResponse, err error)
	}{
		{
			name: "without dates every room is priced for tonight",
			setupMock: func(f *fixture) {
				f.hotelRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(hotel("h-1", "Seaside"), nil)
				f.roomRepo.EXPECT().ListForHotel(gomock.Any(), "h-1").Return(standardAndSuite, nil)
				f.roomTypeRepo.EXPECT().ListForHotel(gomock.Any(), "h-1").Return([]roomModel.RoomType{
					{ID: "rt-std", Name: "STANDARD", PriceFactor: decimal.NewFromInt(1), Active: true},
				}, nil)
				f.amenityRepo.EXPECT().ListForHotel(gomock.Any(), "h-1").Return([]hotelModel.Amenity{{ID: "a-1", Name: "Pool"}}, nil)
			},
			check: func(t *testing.T, res dto.HotelOfferResponse, _ error) {
				require.NotNil(t, res.CheapestRoom)
				assert.Equal(t, "101", res.CheapestRoom.RoomNumber)
				assert.Equal(t, "100", res.CheapestRoom.Price.String())

				require.Len(t, res.CheapestRoomByType, 2)
				assert.Equal(t, "STANDARD", res.CheapestRoomByType[0].RoomTypeName)
				assert.Equal(t, "100", res.CheapestRoomByType[0].Room.Price.String())
				assert.Equal(t, "SUITE", res.CheapestRoomByType[1].RoomTypeName)
				assert.Equal(t, "200", res.CheapestRoomByType[1].Room.Price.String())

				assert.Equal(t, []dto.RoomTypeCountResponse{
					{RoomTypeID: "rt-std", RoomTypeName: "STANDARD", Count: 1},
					{RoomTypeID: "rt-suite", RoomTypeName: "SUITE", Count: 1},
				}, res.RoomTypeAvailableCount)

				assert.Len(t, res.RoomTypes, 1)
				assert.Equal(t, "Pool", res.Amenities[0].Name)
			},
		},
		{
			name:     "with dates only free rooms are listed",
			checkIn:  date(2024, 6, 1),
			checkOut: date(2024, 6, 5),
			setupMock: func(f *fixture) {
				f.hotelRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(hotel("h-1", "Seaside"), nil)
				f.roomRepo.EXPECT().ListAvailable(gomock.Any(), "h-1", *date(2024, 6, 1), *date(2024, 6, 5)).
					Return([]roomModel.Room{standardAndSuite[1]}, nil)
				f.roomTypeRepo.EXPECT().ListForHotel(gomock.Any(), "h-1").Return(nil, nil)
				f.amenityRepo.EXPECT().ListForHotel(gomock.Any(), "h-1").Return(nil, nil)
			},
			check: func(t *testing.T, res dto.HotelOfferResponse, _ error) {
				assert.Equal(t, "2024-06-01", res.CheckIn)
				assert.Equal(t, "2024-06-05", res.CheckOut)
				require.NotNil(t, res.CheapestRoom)
				assert.Equal(t, "201", res.CheapestRoom.RoomNumber)
				assert.Len(t, res.CheapestRoomByType, 1)
				assert.Empty(t, res.Amenities)
			},
		},
		{
			name:     "no free rooms is a valid empty offer",
			checkIn:  date(2024, 6, 1),
			checkOut: date(2024, 6, 5),
			setupMock: func(f *fixture) {
				f.hotelRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(hotel("h-1", "Seaside"), nil)
				f.roomRepo.EXPECT().ListAvailable(gomock.Any(), "h-1", gomock.Any(), gomock.Any()).Return(nil, nil)
				f.roomTypeRepo.EXPECT().ListForHotel(gomock.Any(), "h-1").Return(nil, nil)
				f.amenityRepo.EXPECT().ListForHotel(gomock.Any(), "h-1").Return(nil, nil)
			},
			check: func(t *testing.T, res dto.HotelOfferResponse, _ error) {
				assert.Nil(t, res.CheapestRoom)
				assert.Empty(t, res.CheapestRoomByType)
				assert.Empty(t, res.RoomTypeAvailableCount)
			},
		},
		{
			name:      "partial range is rejected",
			checkIn:   date(2024, 6, 1),
			setupMock: func(_ *fixture) {},
			wantErr:   true,
			check: func(t *testing.T, _ dto.HotelOfferResponse, err error) {
				assert.True(t, failure.IsBadRequest(err))
			},
		},
		{
			name: "unknown hotel",
			setupMock: func(f *fixture) {
				f.hotelRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(hotelModel.Hotel{}, nil)
			},
			wantErr: true,
			check: func(t *testing.T, _ dto.HotelOfferResponse, err error) {
				assert.True(t, failure.IsNotFound(err))
			},
		},
		{
			name: "room store failure is propagated",
			setupMock: func(f *fixture) {
				f.hotelRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(hotel("h-1", "Seaside"), nil)
				f.roomRepo.EXPECT().ListForHotel(gomock.Any(), "h-1").Return(nil, errors.New("connection reset"))
			},
			wantErr: true,
			check: func(t *testing.T, _ dto.HotelOfferResponse, err error) {
				assert.ErrorContains(t, err, "connection reset")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setupMock(f)

			res, err := f.svc.GetHotelOffer(context.Background(), "h-1", tt.checkIn, tt.checkOut)

			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}

			if tt.check != nil {
				tt.check(t, res, err)
			}
		})
	}
}

func TestOfferService_GetHotelOfferSweepFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	reservations := mocks.NewMockReservations(ctrl)
	reservations.EXPECT().ExpireOverdue(gomock.Any(), gomock.Any()).Return(0, errors.New("deadlock detected"))

	cfg := &config.Config{}
	svc := service.New(hotelMocks.NewMockHotel(ctrl), roomMocks.NewMockRoom(ctrl), roomMocks.NewMockRoomType(ctrl),
		hotelMocks.NewMockAmenity(ctrl), nil, reservations, cfg, cacheMocks.NewMockRedisCache(ctrl), otelMocks.NewOtel())

	_, err := svc.GetHotelOffer(context.Background(), "h-1", nil, nil)

	assert.ErrorContains(t, err, "deadlock detected")
}

func TestOfferService_GetHotelOfferCachesEachModeSeparately(t *testing.T) {
	f := newFixture(t)

	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600
	cfg.App.Offer.Concurrency = 2

	otel := otelMocks.NewOtel()
	pricing := pricingService.New(f.roomRepo, pipeline.DefaultPipeline(), cfg, f.cache, otel)
	svc := service.New(f.hotelRepo, f.roomRepo, f.roomTypeRepo, f.amenityRepo, pricing, f.reservations, cfg,
		cache.NewRedisCache(client, otel), otel)

	booked := room("h-1", "101", "rt-std", "STANDARD", "1.0", roomModel.StatusAvailable)
	free := room("h-1", "102", "rt-suite", "SUITE", "2.0", roomModel.StatusAvailable)

	today := timezone.Today()
	tomorrow := today.AddDate(0, 0, 1)

	f.hotelRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(hotel("h-1", "Seaside"), nil).Times(2)
	f.roomRepo.EXPECT().ListForHotel(gomock.Any(), "h-1").Return([]roomModel.Room{booked, free}, nil)
	f.roomRepo.EXPECT().ListAvailable(gomock.Any(), "h-1", today, tomorrow).Return([]roomModel.Room{free}, nil)
	f.roomTypeRepo.EXPECT().ListForHotel(gomock.Any(), "h-1").Return(nil, nil).Times(2)
	f.amenityRepo.EXPECT().ListForHotel(gomock.Any(), "h-1").Return(nil, nil).Times(2)

	undated, err := svc.GetHotelOffer(context.Background(), "h-1", nil, nil)
	require.NoError(t, err)
	require.NotNil(t, undated.CheapestRoom)
	assert.Equal(t, "101", undated.CheapestRoom.RoomNumber)

	assert.Eventually(t, func() bool {
		for _, key := range server.Keys() {
			if strings.HasPrefix(key, "offer:get:h-1") {
				return true
			}
		}

		return false
	}, time.Second, 10*time.Millisecond)

	dated, err := svc.GetHotelOffer(context.Background(), "h-1", &today, &tomorrow)
	require.NoError(t, err)
	require.NotNil(t, dated.CheapestRoom)
	assert.Equal(t, "102", dated.CheapestRoom.RoomNumber)

	for _, byType := range dated.CheapestRoomByType {
		assert.NotEqual(t, "101", byType.Room.RoomNumber)
	}
}

func TestOfferService_GetHotelStatistics(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(f *fixture)
		check     func(t *testing.T, res dto.HotelStatisticsResponse, err error)
	}{
		{
			name: "rooms by status and reservations",
			setupMock: func(f *fixture) {
				f.hotelRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(hotel("h-1", "Seaside"), nil)
				f.roomRepo.EXPECT().ListForHotel(gomock.Any(), "h-1").Return([]roomModel.Room{
					room("h-1", "101", "", "", "", roomModel.StatusAvailable),
					room("h-1", "102", "", "", "", roomModel.StatusAvailable),
					room("h-1", "103", "", "", "", roomModel.StatusOccupied),
					room("h-1", "104", "", "", "", roomModel.StatusMaintenance),
				}, nil)
				f.reservations.EXPECT().CountForHotel(gomock.Any(), "h-1").Return(7, nil)
			},
			check: func(t *testing.T, res dto.HotelStatisticsResponse, err error) {
				require.NoError(t, err)
				assert.Equal(t, dto.HotelStatisticsResponse{
					HotelID:           "h-1",
					TotalRooms:        4,
					AvailableRooms:    2,
					OccupiedRooms:     1,
					OutOfServiceRooms: 1,
					ReservationsCount: 7,
				}, res)
			},
		},
		{
			name: "unknown hotel",
			setupMock: func(f *fixture) {
				f.hotelRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(hotelModel.Hotel{}, nil)
			},
			check: func(t *testing.T, _ dto.HotelStatisticsResponse, err error) {
				assert.True(t, failure.IsNotFound(err))
			},
		},
		{
			name: "count failure is propagated",
			setupMock: func(f *fixture) {
				f.hotelRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(hotel("h-1", "Seaside"), nil)
				f.roomRepo.EXPECT().ListForHotel(gomock.Any(), "h-1").Return(nil, nil)
				f.reservations.EXPECT().CountForHotel(gomock.Any(), "h-1").Return(0, errors.New("statement timeout"))
			},
			check: func(t *testing.T, _ dto.HotelStatisticsResponse, err error) {
				assert.ErrorContains(t, err, "statement timeout")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setupMock(f)

			res, err := f.svc.GetHotelStatistics(context.Background(), "h-1")

			tt.check(t, res, err)
		})
	}
}

func TestOfferService_ListHotelOffers(t *testing.T) {
	f := newFixture(t)

	f.hotelRepo.EXPECT().GetAll(gomock.Any(), gDto.QueryParams{}, gomock.Any()).Return([]hotelModel.Hotel{
		hotel("h-b", "Bravo"),
		hotel("h-a", "alpha"),
		hotel("h-c", "Charlie"),
	}, nil).Times(3)

	f.roomRepo.EXPECT().ListForHotel(gomock.Any(), "h-a").Return([]roomModel.Room{
		room("h-a", "1", "", "", "", roomModel.StatusAvailable),
	}, nil).AnyTimes()
	f.roomRepo.EXPECT().ListForHotel(gomock.Any(), "h-b").Return([]roomModel.Room{
		room("h-b", "1", "rt-suite", "SUITE", "1.5", roomModel.StatusAvailable),
	}, nil).AnyTimes()
	f.roomRepo.EXPECT().ListForHotel(gomock.Any(), "h-c").Return([]roomModel.Room{
		room("h-c", "1", "rt-std", "STANDARD", "0.9", roomModel.StatusAvailable),
	}, nil).AnyTimes()
	f.roomTypeRepo.EXPECT().ListForHotel(gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()
	f.amenityRepo.EXPECT().ListForHotel(gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()

	tests := []struct {
		name      string
		sort      string
		params    gDto.QueryParams
		wantIDs   []string
		wantPages int
	}{
		{name: "by price, unpriced last", sort: "price", wantIDs: []string{"h-c", "h-b", "h-a"}, wantPages: 1},
		{name: "by name descending", sort: "name-desc", wantIDs: []string{"h-c", "h-b", "h-a"}, wantPages: 1},
		{name: "second page", sort: "name", params: gDto.QueryParams{Page: 2, Limit: 2}, wantIDs: []string{"h-c"}, wantPages: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := f.svc.ListHotelOffers(context.Background(), dto.OfferCriteria{Sort: tt.sort}, tt.params)

			require.NoError(t, err)
			assert.Equal(t, 3, res.TotalData)
			assert.Equal(t, tt.wantPages, res.TotalPage)

			got := make([]string, len(res.Offers))
			for i, offer := range res.Offers {
				got[i] = offer.ID
			}

			assert.Equal(t, tt.wantIDs, got)
		})
	}
}

func TestOfferService_ListHotelOffersStoreFailure(t *testing.T) {
	f := newFixture(t)

	f.hotelRepo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("too many connections"))

	_, err := f.svc.ListHotelOffers(context.Background(), dto.OfferCriteria{Name: "sea"}, gDto.QueryParams{Page: 1, Limit: 10})

	assert.ErrorContains(t, err, "too many connections")
}
