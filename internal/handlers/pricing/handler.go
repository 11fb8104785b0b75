package pricing

import (
	"net/http"

	"hotelos/infras/otel"
	"hotelos/internal/domains/pricing/service"
	"hotelos/shared"
	"hotelos/shared/constant"
	"hotelos/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Pricing
	otel    otel.Otel
}

func New(service service.Pricing, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get("/rooms/{id}/price", handler.GetRoomPrice)
}

// GetRoomPrice quotes a room for a stay.
// @Summary Get the price of a room
// @Description Runs the pricing pipeline for the room. Without dates the price is quoted for one night starting today.
// @Tags Pricing
// @Produce json
// @Param id path string true "Room ID"
// @Param check_in query string false "Check-in date (YYYY-MM-DD)"
// @Param check_out query string false "Check-out date (YYYY-MM-DD)"
// @Success 200 {object} response.Data[dto.RoomPriceResponse] "Room price"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/rooms/{id}/price [get]
func (handler *Handler) GetRoomPrice(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRoomPrice")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	checkIn, checkOut, err := shared.ParseStayDates(r.URL.Query())
	if err != nil {
		response.WithError(w, err)

		return
	}

	price, err := handler.service.GetRoomPrice(ctx, id, checkIn, checkOut)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get room price")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, price)
}
