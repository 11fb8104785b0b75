package service_test

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"hotelos/internal/domains/reservation/model"
	"hotelos/shared/constant"
	gDto "hotelos/shared/dto"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
)

// memoryStore is an in-memory reservation store that evaluates the same filter groups the SQL layer receives.
type memoryStore struct {
	mu     sync.Mutex
	rows   []model.Reservation
	locked []string
}

func newMemoryStore(rows ...model.Reservation) *memoryStore {
	return &memoryStore{rows: rows}
}

func (m *memoryStore) InsertTx(_ context.Context, _ *sqlx.Tx, reservation model.Reservation) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.rows = append(m.rows, reservation)

	return nil
}

func (m *memoryStore) Get(_ context.Context, filter gDto.FilterGroup, _ ...string) (model.Reservation, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, row := range m.rows {
		if matchGroup(row, filter) {
			return row, nil
		}
	}

	return model.Reservation{}, nil
}

func (m *memoryStore) GetForUpdateTx(ctx context.Context, _ *sqlx.Tx, filter gDto.FilterGroup, columns ...string) (model.Reservation, error) {
	return m.Get(ctx, filter, columns...)
}

func (m *memoryStore) GetAll(_ context.Context, _ gDto.QueryParams, filter gDto.FilterGroup, _ ...string) ([]model.Reservation, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var out []model.Reservation

	for _, row := range m.rows {
		if matchGroup(row, filter) {
			out = append(out, row)
		}
	}

	return out, nil
}

func (m *memoryStore) GetAllTx(ctx context.Context, _ *sqlx.Tx, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Reservation, error) {
	return m.GetAll(ctx, params, filter, columns...)
}

func (m *memoryStore) Count(ctx context.Context, filter gDto.FilterGroup) (int, error) {
	rows, err := m.GetAll(ctx, gDto.QueryParams{}, filter)

	return len(rows), err
}

func (m *memoryStore) UpdateTx(_ context.Context, _ *sqlx.Tx, mod map[string]any, filter gDto.FilterGroup) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i, row := range m.rows {
		if !matchGroup(row, filter) {
			continue
		}

		m.rows[i] = applyFields(row, mod)
	}

	return nil
}

func (m *memoryStore) Delete(_ context.Context, filter gDto.FilterGroup) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.rows = slices.DeleteFunc(m.rows, func(row model.Reservation) bool { return matchGroup(row, filter) })

	return nil
}

func (m *memoryStore) Transaction(_ context.Context, fn func(sqltx *sqlx.Tx) error) error {
	m.mu.Lock()
	snapshot := slices.Clone(m.rows)
	m.mu.Unlock()

	if err := fn(nil); err != nil {
		m.mu.Lock()
		m.rows = snapshot
		m.mu.Unlock()

		return err
	}

	return nil
}

func (m *memoryStore) LockRoom(_ context.Context, _ *sqlx.Tx, roomID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.locked = append(m.locked, roomID)

	return nil
}

func (m *memoryStore) find(id string) model.Reservation {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, row := range m.rows {
		if row.ID == id {
			return row
		}
	}

	return model.Reservation{}
}

func (m *memoryStore) snapshot() []model.Reservation {
	m.mu.Lock()
	defer m.mu.Unlock()

	return slices.Clone(m.rows)
}

func matchGroup(row model.Reservation, group gDto.FilterGroup) bool {
	if len(group.Filters) == 0 {
		return true
	}

	or := group.Operator == gDto.FilterGroupOperatorOr

	for _, item := range group.Filters {
		var ok bool

		switch f := item.(type) {
		case gDto.Filter:
			ok = matchFilter(row, f)
		case gDto.FilterGroup:
			ok = matchGroup(row, f)
		}

		if or && ok {
			return true
		}

		if !or && !ok {
			return false
		}
	}

	return !or
}

func matchFilter(row model.Reservation, f gDto.Filter) bool {
	actual := fieldValue(row, f.Field)

	switch f.Operator {
	case gDto.FilterOperatorEq:
		return actual == fmt.Sprint(f.Value)
	case gDto.FilterOperatorNotEq:
		return actual != fmt.Sprint(f.Value)
	case gDto.FilterOperatorLess:
		return actual < fmt.Sprint(f.Value)
	case gDto.FilterOperatorGreater:
		return actual > fmt.Sprint(f.Value)
	case gDto.FilterOperatorIn:
		return slices.Contains(f.Value.([]string), actual)
	case gDto.FilterOperatorNotIn:
		return !slices.Contains(f.Value.([]string), actual)
	case gDto.FilterOperatorLike:
		return strings.Contains(strings.ToLower(actual), strings.ToLower(fmt.Sprint(f.Value)))
	default:
		panic("unsupported operator " + f.Operator)
	}
}

func fieldValue(row model.Reservation, field string) string {
	switch field {
	case model.FieldID:
		return row.ID
	case model.FieldRoomID:
		return row.RoomID
	case model.FieldHotelID:
		return row.HotelID
	case model.FieldStatus:
		return row.Status.String()
	case model.FieldReservationName:
		return row.ReservationName
	case model.FieldCheckInDate:
		return row.CheckInDate.Format(constant.DateOnlyFormat)
	case model.FieldCheckOutDate:
		return row.CheckOutDate.Format(constant.DateOnlyFormat)
	default:
		panic("unsupported field " + field)
	}
}

func applyFields(row model.Reservation, mod map[string]any) model.Reservation {
	for key, value := range mod {
		switch key {
		case model.FieldStatus:
			row.Status = model.Status(fmt.Sprint(value))
		case model.FieldRoomID:
			row.RoomID = fmt.Sprint(value)
		case model.FieldReservationName:
			row.ReservationName = fmt.Sprint(value)
		case model.FieldCheckInDate:
			row.CheckInDate = value.(time.Time)
		case model.FieldCheckOutDate:
			row.CheckOutDate = value.(time.Time)
		case model.FieldTotalAmount:
			row.TotalAmount = *value.(*decimal.Decimal)
		case constant.FieldModifiedBy:
			row.ModifiedBy = fmt.Sprint(value)
		case constant.FieldModifiedAt:
			row.ModifiedAt = value.(time.Time)
		}
	}

	return row
}

type guestStore struct {
	mu   sync.Mutex
	rows []model.Guest
}

func newGuestStore() *guestStore {
	return &guestStore{}
}

func (g *guestStore) InsertBulkTx(_ context.Context, _ *sqlx.Tx, models []model.Guest) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.rows = append(g.rows, models...)

	return nil
}

func (g *guestStore) DeleteTx(_ context.Context, _ *sqlx.Tx, filter gDto.FilterGroup) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	reservationID := fmt.Sprint(filter.Filters[0].(gDto.Filter).Value)
	g.rows = slices.DeleteFunc(g.rows, func(row model.Guest) bool { return row.ReservationID == reservationID })

	return nil
}

func (g *guestStore) ListForReservation(_ context.Context, reservationID string) ([]model.Guest, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	var out []model.Guest

	for _, row := range g.rows {
		if row.ReservationID == reservationID {
			out = append(out, row)
		}
	}

	return out, nil
}
