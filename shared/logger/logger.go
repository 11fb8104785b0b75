package logger

import (
	"io"
	"os"
	"time"

	"hotelos/config"
	"hotelos/shared/constant"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func InitLogger() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	zerolog.SetGlobalLevel(zerolog.TraceLevel)

	output := zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}

	log.Logger = log.Output(output)
	log.Trace().Msg("Zerolog initialized.")
}

func ErrorWithStack(err error) {
	log.Error().Msgf("%+v", errors.WithStack(err))
}

func SetLogLevel(config *config.Config) {
	level, err := zerolog.ParseLevel(config.Server.LogLevel)
	if err != nil {
		level = zerolog.TraceLevel
		log.Trace().Str("loglevel", level.String()).Msg("Environment has no log level set up, using default.")
	} else {
		log.Trace().Str("loglevel", level.String()).Msg("Desired log level detected.")
	}

	zerolog.SetGlobalLevel(level)
}

// SetOutput switches to JSON lines on stdout in production so log shippers can parse them.
func SetOutput(config *config.Config) {
	Configure(config, os.Stdout)
}

// Configure points the global logger at w. Production gets JSON tagged with the app name and
// environment; every other environment keeps the console writer.
func Configure(config *config.Config, w io.Writer) {
	if config.Server.Env != constant.ServerEnvProduction {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339})

		return
	}

	zerolog.TimeFieldFormat = time.RFC3339

	log.Logger = zerolog.New(w).With().
		Timestamp().
		Str("app", config.App.Name).
		Str("env", config.Server.Env).
		Logger()
}
