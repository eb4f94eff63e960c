package logging

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

// New constructs the application logger.  Production emits JSON to
// stdout at info level; any other environment gets a console writer
// at debug level for local development.
func New(env string) zerolog.Logger {
	zerolog.TimeFieldFormat = time.RFC3339Nano

	if env == "prod" || env == "production" {
		return zerolog.New(os.Stdout).
			Level(zerolog.InfoLevel).
			With().
			Timestamp().
			Str("app", "hotel-booking-api").
			Str("env", env).
			Logger()
	}

	out := zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
	return zerolog.New(out).
		Level(zerolog.DebugLevel).
		With().
		Timestamp().
		Str("app", "hotel-booking-api").
		Str("env", env).
		Logger()
}
