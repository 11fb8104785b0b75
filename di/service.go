package di

import (
	"hotelos/internal/jobs"
	"hotelos/transport/http"
)

// Service is the assembled application: the HTTP server and its background jobs.
type Service struct {
	HTTP *http.HTTP
	Jobs jobs.Scheduler
}
