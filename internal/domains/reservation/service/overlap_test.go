package service_test

import (
	"context"
	"fmt"
	"math/rand"
	"testing"

	"hotelos/internal/domains/reservation/model"
	"hotelos/internal/domains/reservation/service"
	"hotelos/shared/failure"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var allStatuses = []model.Status{
	model.StatusPending, model.StatusConfirmed, model.StatusCheckedIn,
	model.StatusCheckedOut, model.StatusCancelled, model.StatusExpired,
}

func TestOverlapValidator_MatchesBruteForce(t *testing.T) {
	rnd := rand.New(rand.NewSource(42)) //nolint:gosec
	ctx := context.Background()

	for round := range 200 {
		var rows []model.Reservation

		for i := range 8 {
			start := rnd.Intn(30) + 1
			length := rnd.Intn(6) + 1
			status := allStatuses[rnd.Intn(len(allStatuses))]

			rows = append(rows, stay(fmt.Sprintf("r%d-%d", round, i), "room-101",
				futureDay(start), futureDay(start+length), status))
		}

		validator := service.NewOverlapValidator(newMemoryStore(rows...))

		start := rnd.Intn(30) + 1
		candidate := model.DateRange{
			CheckIn:  date(futureDay(start)),
			CheckOut: date(futureDay(start + rnd.Intn(6) + 1)),
		}

		want := false

		for _, row := range rows {
			if row.Status.IsActive() && row.Range().Overlaps(candidate) {
				want = true
			}
		}

		got, err := validator.HasConflict(ctx, nil, "room-101", candidate, "")
		require.NoError(t, err)
		assert.Equal(t, want, got, "round %d candidate %s", round, candidate)
	}
}

func TestOverlapValidator_ExcludesSelfAndOtherRooms(t *testing.T) {
	validator := service.NewOverlapValidator(newMemoryStore(
		stay("self", "room-101", futureDay(1), futureDay(5), model.StatusConfirmed),
		stay("other-room", "room-102", futureDay(1), futureDay(5), model.StatusConfirmed),
	))

	rng := model.DateRange{CheckIn: date(futureDay(2)), CheckOut: date(futureDay(4))}

	conflict, err := validator.HasConflict(context.Background(), nil, "room-101", rng, "self")
	require.NoError(t, err)
	assert.False(t, conflict)

	err = validator.Validate(context.Background(), nil, "room-101", rng, "")
	assert.ErrorIs(t, err, failure.RoomUnavailable)
}

func TestOverlapValidator_RejectsInvalidRange(t *testing.T) {
	validator := service.NewOverlapValidator(newMemoryStore())

	_, err := validator.HasConflict(context.Background(), nil, "room-101",
		model.DateRange{CheckIn: date(futureDay(3)), CheckOut: date(futureDay(3))}, "")

	assert.True(t, failure.IsBadRequest(err))
}
