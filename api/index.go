package handler

import (
	"net/http"
	"sync"

	"hotelos/config"
	"hotelos/di"
	"hotelos/shared/logger"
)

var (
	service     *di.Service
	serviceOnce sync.Once
)

// Handler is the serverless entry point. Overdue reservations are still expired on every read,
// so the scheduled sweep is not started here.
func Handler(w http.ResponseWriter, r *http.Request) {
	r.RequestURI = r.URL.String()

	serviceOnce.Do(func() {
		cfg := config.Get()

		logger.InitLogger()

		logger.SetLogLevel(cfg)
		logger.SetOutput(cfg)

		service = di.InitializeService()
	})

	service.HTTP.ServeHTTP(w, r)
}
