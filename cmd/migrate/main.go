package main

import (
	"os"
	"strconv"

	"hotelos/config"
	"hotelos/helper"
	"hotelos/shared/logger"

	"github.com/rs/zerolog/log"
)

const (
	argLength      = 2
	forceArgLength = 3
)

func main() {
	logger.InitLogger()

	if len(os.Args) < argLength {
		log.Fatal().Msg("Migration direction (up/down) is required")
	}

	cfg := config.Get()

	var err error

	switch os.Args[1] {
	case "up":
		err = helper.Up(cfg)
	case "down":
		err = helper.Down(cfg)
	case "drop":
		err = helper.Drop(cfg)
	case "step-up":
		err = helper.StepUp(cfg)
	case "force":
		if len(os.Args) < forceArgLength {
			log.Fatal().Msg("force requires a version")
		}

		version, convErr := strconv.Atoi(os.Args[2])
		if convErr != nil {
			log.Fatal().Err(convErr).Msg("invalid migration version")
		}

		err = helper.Force(cfg, version)
	default:
		log.Fatal().Msg("Invalid direction. Use 'up', 'down', 'drop', 'step-up' or 'force <version>'")
	}

	if err != nil {
		log.Fatal().Err(err).Msg("migration failed")
	}
}
