package service

import (
	"context"
	"time"

	"hotelos/infras/kafka"
	"hotelos/internal/domains/reservation/model"
	"hotelos/shared/constant"
	"hotelos/shared/timezone"

	"github.com/rs/zerolog/log"
)

const (
	EventReservationCreated       = "reservation.created"
	EventReservationUpdated       = "reservation.updated"
	EventReservationStatusChanged = "reservation.status_changed"
	EventReservationExpired       = "reservation.expired"
	EventReservationDeleted       = "reservation.deleted"
)

// Event is the payload published for every committed lifecycle change.
type Event struct {
	Type           string    `json:"type"`
	ReservationID  string    `json:"reservation_id"`
	RoomID         string    `json:"room_id"`
	HotelID        string    `json:"hotel_id,omitempty"`
	Status         string    `json:"status"`
	PreviousStatus string    `json:"previous_status,omitempty"`
	CheckIn        string    `json:"check_in"`
	CheckOut       string    `json:"check_out"`
	OccurredAt     time.Time `json:"occurred_at"`
}

func newEvent(eventType string, reservation model.Reservation, previous model.Status) Event {
	return Event{
		Type:           eventType,
		ReservationID:  reservation.ID,
		RoomID:         reservation.RoomID,
		HotelID:        reservation.HotelID,
		Status:         reservation.Status.String(),
		PreviousStatus: previous.String(),
		CheckIn:        reservation.CheckInDate.Format(constant.DateOnlyFormat),
		CheckOut:       reservation.CheckOutDate.Format(constant.DateOnlyFormat),
		OccurredAt:     timezone.Now(),
	}
}

// publish sends events keyed by room so consumers see one room's changes in order.
func (s *serviceImpl) publish(ctx context.Context, events ...Event) {
	if len(events) == 0 {
		return
	}

	messages := make([]kafka.Message, len(events))
	for i, event := range events {
		messages[i] = kafka.Message{Key: event.RoomID, Value: event}
	}

	go func() {
		c, scope := s.otel.NewScope(context.WithoutCancel(ctx), constant.OtelEventScopeName, constant.OtelEventScopeName+".reservation.publish")
		defer scope.End()

		scope.SetAttributes(map[string]any{
			"topic":  s.cfg.Kafka.Topic,
			"events": len(messages),
			"type":   events[0].Type,
		})

		if err := s.kafka.SendMessages(c, s.cfg.Kafka.Topic, messages...); err != nil {
			scope.TraceError(err)
			log.Error().Err(err).Str("topic", s.cfg.Kafka.Topic).Msg("failed to publish reservation events")
		}
	}()
}
