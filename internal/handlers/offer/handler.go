package offer

import (
	"net/http"

	"hotelos/infras/otel"
	"hotelos/internal/domains/offer/model/dto"
	"hotelos/internal/domains/offer/service"
	"hotelos/shared"
	"hotelos/shared/constant"
	gDto "hotelos/shared/dto"
	"hotelos/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Offer
	otel    otel.Otel
}

func New(service service.Offer, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/hotels", func(routerGroup chi.Router) {
		routerGroup.Get("/offers", handler.GetHotelOffers)
		routerGroup.Get("/{id}/offer", handler.GetHotelOffer)
		routerGroup.Get("/{id}/statistics", handler.GetHotelStatistics)
	})
}

// GetHotelOffer summarises the rooms of one hotel.
// @Summary Get the offer of a hotel
// @Description Cheapest room, cheapest room per type and available count per type. With both dates only rooms free for the whole stay are considered.
// @Tags Offer
// @Produce json
// @Param id path string true "Hotel ID"
// @Param check_in query string false "Check-in date (YYYY-MM-DD)"
// @Param check_out query string false "Check-out date (YYYY-MM-DD)"
// @Success 200 {object} response.Data[dto.HotelOfferResponse] "Hotel offer"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/hotels/{id}/offer [get]
func (handler *Handler) GetHotelOffer(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetHotelOffer")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	checkIn, checkOut, err := shared.ParseStayDates(r.URL.Query())
	if err != nil {
		response.WithError(w, err)

		return
	}

	offer, err := handler.service.GetHotelOffer(ctx, id, checkIn, checkOut)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get hotel offer")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, offer)
}

// GetHotelStatistics counts a hotel's rooms and reservations.
// @Summary Get hotel statistics
// @Description Total, available, occupied and out of service rooms of a hotel, plus how many reservations it has.
// @Tags Offer
// @Produce json
// @Security BearerAuth
// @Param id path string true "Hotel ID"
// @Success 200 {object} response.Data[dto.HotelStatisticsResponse] "Hotel statistics"
// @Failure 401 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/hotels/{id}/statistics [get]
func (handler *Handler) GetHotelStatistics(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetHotelStatistics")
	defer scope.End()

	stats, err := handler.service.GetHotelStatistics(ctx, chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get hotel statistics")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, stats)
}

// GetHotelOffers lists hotel offers.
// @Summary Get hotel offers
// @Description Filters by name, country and city (case-insensitive substring). sort is name or price, with an optional -desc suffix.
// @Tags Offer
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param name query string false "Filter by hotel name"
// @Param country query string false "Filter by country"
// @Param city query string false "Filter by city"
// @Param sort query string false "name, name-desc, price or price-desc"
// @Success 200 {object} response.Data[dto.GetHotelOffersResponse] "Hotel offers"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/hotels/offers [get]
func (handler *Handler) GetHotelOffers(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetHotelOffers")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	query := r.URL.Query()
	criteria := dto.OfferCriteria{
		Name:    query.Get(constant.RequestParamName),
		Country: query.Get(constant.RequestParamCountry),
		City:    query.Get(constant.RequestParamCity),
		Sort:    query.Get(constant.RequestParamSort),
	}

	offers, err := handler.service.ListHotelOffers(ctx, criteria, queryParams)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get hotel offers")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Hotel offers retrieved successfully")

	response.WithJSON(w, http.StatusOK, offers)
}
