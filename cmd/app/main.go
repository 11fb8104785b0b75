package main

import (
	"hotelos/config"
	"hotelos/di"
	"hotelos/helper"
	"hotelos/shared/logger"

	"github.com/rs/zerolog/log"
)

// @title HotelOS API
// @version 1.0
// @description Reservations, nightly pricing and hotel offers.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)
	logger.SetOutput(cfg)

	if cfg.DB.Postgres.AutoMigrate {
		if err := helper.Up(cfg); err != nil {
			log.Fatal().Err(err).Msg("failed to migrate database")
		}
	}

	service := di.InitializeService()

	if err := service.Jobs.Start(); err != nil {
		log.Fatal().Err(err).Msg("failed to start background jobs")
	}

	service.HTTP.Serve()

	if err := service.Jobs.Stop(); err != nil {
		log.Error().Err(err).Msg("failed to stop background jobs")
	}
}
