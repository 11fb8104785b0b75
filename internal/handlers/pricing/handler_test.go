package pricing_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	otelMocks "hotelos/infras/otel/mocks"
	"hotelos/internal/domains/pricing/mocks"
	"hotelos/internal/domains/pricing/model/dto"
	"hotelos/internal/handlers/pricing"
	"hotelos/shared/failure"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newRouter(t *testing.T) (*chi.Mux, *mocks.MockPricing) {
	t.Helper()

	ctrl := gomock.NewController(t)
	service := mocks.NewMockPricing(ctrl)

	handler := pricing.New(service, otelMocks.NewOtel())

	router := chi.NewRouter()
	handler.Router(router)

	return router, service
}

func TestGetRoomPrice(t *testing.T) {
	tests := []struct {
		name       string
		target     string
		setupMocks func(service *mocks.MockPricing)
		wantStatus int
	}{
		{
			name:   "tonight when no dates are given",
			target: "/rooms/room-101/price",
			setupMocks: func(service *mocks.MockPricing) {
				service.EXPECT().GetRoomPrice(gomock.Any(), "room-101", gomock.Nil(), gomock.Nil()).
					Return(dto.RoomPriceResponse{RoomID: "room-101", Nights: 1}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:   "dates are parsed",
			target: "/rooms/room-101/price?check_in=2024-01-10&check_out=2024-01-12",
			setupMocks: func(service *mocks.MockPricing) {
				service.EXPECT().GetRoomPrice(gomock.Any(), "room-101", gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ any, _ string, checkIn, checkOut *time.Time) (dto.RoomPriceResponse, error) {
						require.NotNil(t, checkIn)
						require.NotNil(t, checkOut)
						assert.Equal(t, "2024-01-10", checkIn.Format(time.DateOnly))
						assert.Equal(t, "2024-01-12", checkOut.Format(time.DateOnly))

						return dto.RoomPriceResponse{RoomID: "room-101", Nights: 2}, nil
					})
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "check out without check in",
			target:     "/rooms/room-101/price?check_out=2024-01-12",
			setupMocks: func(_ *mocks.MockPricing) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "malformed check in",
			target:     "/rooms/room-101/price?check_in=10-01-2024&check_out=2024-01-12",
			setupMocks: func(_ *mocks.MockPricing) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:   "unknown room",
			target: "/rooms/missing/price",
			setupMocks: func(service *mocks.MockPricing) {
				service.EXPECT().GetRoomPrice(gomock.Any(), "missing", gomock.Any(), gomock.Any()).
					Return(dto.RoomPriceResponse{}, failure.NotFound("room not found"))
			},
			wantStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, service := newRouter(t)
			tt.setupMocks(service)

			req := httptest.NewRequest(http.MethodGet, tt.target, nil)
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestGetRoomPrice_Body(t *testing.T) {
	router, service := newRouter(t)

	service.EXPECT().GetRoomPrice(gomock.Any(), "room-101", gomock.Any(), gomock.Any()).Return(dto.RoomPriceResponse{
		RoomID:       "room-101",
		Nights:       2,
		NightlyPrice: decimal.NewFromInt(120),
		TotalPrice:   decimal.NewFromInt(240),
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/rooms/room-101/price?check_in=2024-01-10&check_out=2024-01-12", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Data dto.RoomPriceResponse `json:"data"`
	}

	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, 2, body.Data.Nights)
	assert.Equal(t, "240", body.Data.TotalPrice.String())
}
