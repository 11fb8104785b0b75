package metrics_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"hotelos/infras/metrics"
)

func TestMetricsRegistryAndHandler(t *testing.T) {
	reg := metrics.InitRegistry()

	// record samples so every family is exported
	metrics.ObserveHTTP("/v1/reservations", "POST", 201, 12*time.Millisecond)
	metrics.ReservationsCreated.Inc()
	metrics.ReservationConflicts.Inc()
	metrics.ReservationsExpired.Add(2)
	metrics.ObserveOfferBuild("single", time.Now())

	mh := metrics.MetricsHandler(reg)
	req := httptest.NewRequest("GET", "/metrics", nil)
	rr := httptest.NewRecorder()
	mh.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("metrics status: %d", rr.Code)
	}

	body, _ := io.ReadAll(rr.Body)
	out := string(body)

	for _, name := range []string{
		"hotelos_http_requests_total",
		"hotelos_http_request_duration_seconds",
		"hotelos_reservations_created_total",
		"hotelos_reservation_conflicts_total",
		"hotelos_reservations_expired_total",
		"hotelos_offer_build_duration_seconds",
	} {
		if !strings.Contains(out, name) {
			t.Fatalf("expected %s in output", name)
		}
	}
}

func TestInitRegistry_IsIdempotent(t *testing.T) {
	if metrics.InitRegistry() != metrics.InitRegistry() {
		t.Fatal("expected the same registry on every call")
	}
}
