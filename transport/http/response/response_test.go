package response_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"hotelos/shared/failure"
	"hotelos/transport/http/response"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithCreated(t *testing.T) {
	rec := httptest.NewRecorder()

	response.WithCreated(rec, map[string]string{"id": "res-1"})

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body struct {
		Data map[string]string `json:"data"`
	}

	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "res-1", body.Data["id"])
}

func TestWithError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantRetry  string
	}{
		{
			name:       "room unavailable",
			err:        fmt.Errorf("failed to create reservation: %w", failure.RoomUnavailable),
			wantStatus: http.StatusConflict,
		},
		{
			name:       "reservation changed meanwhile",
			err:        fmt.Errorf("failed to update reservation: %w", failure.ReservationChanged),
			wantStatus: http.StatusConflict,
			wantRetry:  "1",
		},
		{
			name:       "not found",
			err:        failure.NotFound("reservation not found"),
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "plain error",
			err:        assert.AnError,
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()

			response.WithError(rec, tt.err)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantRetry, rec.Header().Get("Retry-After"))

			var body response.Error
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			require.NotNil(t, body.Error)
			assert.Equal(t, tt.err.Error(), *body.Error)
		})
	}
}
