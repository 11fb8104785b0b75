package metrics

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "hotelos"

var (
	HTTPRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: namespace, Name: "http_requests_total", Help: "HTTP requests."},
		[]string{"route", "method", "status"},
	)
	HTTPLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace, Name: "http_request_duration_seconds",
			Help:    "HTTP request duration seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"route", "method"},
	)
	ReservationsCreated = prometheus.NewCounter(
		prometheus.CounterOpts{Namespace: namespace, Name: "reservations_created_total", Help: "Reservations created."},
	)
	ReservationConflicts = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace, Name: "reservation_conflicts_total",
			Help: "Create or update attempts rejected because the room was already booked.",
		},
	)
	ReservationsExpired = prometheus.NewCounter(
		prometheus.CounterOpts{Namespace: namespace, Name: "reservations_expired_total", Help: "Pending reservations expired by the sweep."},
	)
	OfferBuildDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace, Name: "offer_build_duration_seconds",
			Help:    "Time spent building hotel offers.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation"}, // operation: single|list
	)
)

var (
	registry     *prometheus.Registry
	registryOnce sync.Once
)

// InitRegistry registers the collectors once and returns the same registry on every call.
func InitRegistry() *prometheus.Registry {
	registryOnce.Do(func() {
		registry = prometheus.NewRegistry()
		registry.MustRegister(
			HTTPRequests, HTTPLatency,
			ReservationsCreated, ReservationConflicts, ReservationsExpired,
			OfferBuildDuration,
		)
	})

	return registry
}

func MetricsHandler(reg *prometheus.Registry) http.Handler {
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{})
}

func ObserveHTTP(route, method string, status int, dur time.Duration) {
	HTTPRequests.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	HTTPLatency.WithLabelValues(route, method).Observe(dur.Seconds())
}

func ObserveOfferBuild(operation string, started time.Time) {
	OfferBuildDuration.WithLabelValues(operation).Observe(time.Since(started).Seconds())
}
