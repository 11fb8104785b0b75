package reservation

import (
	"net/http"

	"hotelos/infras/otel"
	"hotelos/internal/domains/reservation/model"
	"hotelos/internal/domains/reservation/model/dto"
	"hotelos/internal/domains/reservation/service"
	"hotelos/shared/constant"
	"hotelos/shared/failure"
	gDto "hotelos/shared/dto"
	"hotelos/shared/timezone"
	"hotelos/shared/validator"
	"hotelos/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Reservation
	otel    otel.Otel
}

type ExpireResponse struct {
	Expired int    `json:"expired"`
	AsOf    string `json:"as_of"`
}

func New(service service.Reservation, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/reservations", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateReservation)
		routerGroup.Get("/", handler.GetReservations)
		routerGroup.Post("/expire", handler.ExpireOverdue)
		routerGroup.Get("/{id}", handler.GetReservationByID)
		routerGroup.Patch("/{id}", handler.UpdateReservation)
		routerGroup.Delete("/{id}", handler.DeleteReservation)
		routerGroup.Post("/{id}/confirm", handler.transition(model.StatusConfirmed))
		routerGroup.Post("/{id}/check-in", handler.transition(model.StatusCheckedIn))
		routerGroup.Post("/{id}/check-out", handler.transition(model.StatusCheckedOut))
		routerGroup.Post("/{id}/cancel", handler.transition(model.StatusCancelled))
	})
}

// CreateReservation books a room for a date range.
// @Summary Create a reservation
// @Description Book a room. The request is rejected with 409 when an active reservation already holds any night of the range.
// @Tags Reservation
// @Accept json
// @Produce json
// @Param request body dto.CreateReservationRequest true "Reservation"
// @Success 201 {object} response.Data[dto.ReservationResponse] "Reservation created"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/reservations [post]
// @Security BearerAuth
func (handler *Handler) CreateReservation(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateReservation")
	defer scope.End()

	req := dto.CreateReservationRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	reservation, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create reservation")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Reservation created successfully by user " + user)

	response.WithCreated(w, reservation)
}

// GetReservations lists reservations. Overdue pending reservations are expired before reading.
// @Summary Get all reservations
// @Tags Reservation
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param hotel_id query string false "Filter by hotel"
// @Param room_id query string false "Filter by room"
// @Param name query string false "Filter by reservation name"
// @Param status query string false "Filter by status"
// @Success 200 {object} response.Data[dto.GetReservationsResponse] "List of reservations"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/reservations [get]
// @Security BearerAuth
func (handler *Handler) GetReservations(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetReservations")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	query := r.URL.Query()
	filter := dto.ReservationFilter{
		HotelID: query.Get(constant.RequestParamHotelID),
		RoomID:  query.Get(constant.RequestParamRoomID),
		Name:    query.Get(constant.RequestParamName),
		Status:  query.Get(constant.RequestParamStatus),
	}

	if filter.Status != constant.Empty {
		if _, ok := model.ParseStatus(filter.Status); !ok {
			response.WithError(w, failure.BadRequestFromString("unknown reservation status"))

			return
		}
	}

	reservations, err := handler.service.GetAll(ctx, queryParams, filter)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get reservations")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Reservations retrieved successfully")

	response.WithJSON(w, http.StatusOK, reservations)
}

// GetReservationByID returns one reservation with its guests.
// @Summary Get a reservation by ID
// @Tags Reservation
// @Accept json
// @Produce json
// @Param id path string true "Reservation ID"
// @Success 200 {object} response.Data[dto.ReservationResponse] "Reservation details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/reservations/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetReservationByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetReservationByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	reservation, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get reservation by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Reservation retrieved successfully")

	response.WithJSON(w, http.StatusOK, reservation)
}

// UpdateReservation patches a reservation.
// @Summary Update a reservation by ID
// @Description Dates, room, status, occupancy and guests can be changed. A changed range or room is checked for conflicts again.
// @Tags Reservation
// @Accept json
// @Produce json
// @Param id path string true "Reservation ID"
// @Param request body dto.UpdateReservationRequest true "Fields to change"
// @Success 200 {object} response.Data[dto.ReservationResponse] "Reservation updated"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/reservations/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateReservation(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateReservation")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateReservationRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	if req.IsEmpty() {
		response.WithError(w, failure.BadRequestFromString("nothing to update"))

		return
	}

	reservation, err := handler.service.Update(ctx, req, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update reservation")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Reservation updated successfully by user " + user)

	response.WithJSON(w, http.StatusOK, reservation)
}

// transition serves the confirm, check-in, check-out and cancel endpoints.
// @Summary Move a reservation through its lifecycle
// @Tags Reservation
// @Produce json
// @Param id path string true "Reservation ID"
// @Success 200 {object} response.Data[dto.ReservationResponse] "Reservation updated"
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/reservations/{id}/confirm [post]
// @Router /v1/reservations/{id}/check-in [post]
// @Router /v1/reservations/{id}/check-out [post]
// @Router /v1/reservations/{id}/cancel [post]
// @Security BearerAuth
func (handler *Handler) transition(target model.Status) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".TransitionReservation")
		defer scope.End()

		id := chi.URLParam(r, constant.RequestParamID)

		reservation, err := handler.service.Transition(ctx, id, target)
		if err != nil {
			scope.TraceError(err)
			log.Error().Err(err).Str("target", target.String()).Msg("failed to transition reservation")

			response.WithError(w, err)

			return
		}

		scope.AddEvent("Reservation moved to " + target.String())

		response.WithJSON(w, http.StatusOK, reservation)
	}
}

// ExpireOverdue runs the expiration sweep on demand.
// @Summary Expire overdue pending reservations
// @Tags Reservation
// @Produce json
// @Success 200 {object} response.Data[ExpireResponse] "Sweep result"
// @Failure 500 {object} response.Error
// @Router /v1/reservations/expire [post]
// @Security BearerAuth
func (handler *Handler) ExpireOverdue(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ExpireOverdue")
	defer scope.End()

	asOf := timezone.Today()

	expired, err := handler.service.ExpireOverdue(ctx, asOf)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to expire overdue reservations")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, ExpireResponse{Expired: expired, AsOf: asOf.Format(constant.DateOnlyFormat)})
}

// DeleteReservation removes a reservation permanently.
// @Summary Delete a reservation by ID
// @Tags Reservation
// @Produce json
// @Param id path string true "Reservation ID"
// @Success 200 {object} response.Message "Reservation deleted successfully"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/reservations/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteReservation(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteReservation")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete reservation")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Reservation deleted successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Reservation deleted successfully")
}
