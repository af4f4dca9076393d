package di

import (
	"os"

	"github.com/rs/zerolog"

	"github.com/tidemark/catalog-api/internal/config"
)

// ProvideLogger creates a new zerolog.Logger configured from the log section
// of the application config. Unknown levels fall back to info.
func ProvideLogger(cfg config.Config) zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.Log.Level)
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}

	if cfg.Log.Format == "json" {
		return zerolog.New(os.Stdout).
			Level(level).
			With().
			Timestamp().
			Logger()
	}

	// Console format with pretty printing for local development
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).
		Level(level).
		With().
		Timestamp().
		Logger()
}
