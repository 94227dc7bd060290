package config

import (
	"io"
	"time"

	"github.com/de-tools/commerce-atlas/pkg/models/domain"
	"github.com/rs/zerolog"
)

// NewLogger writes JSON lines, or human readable lines in development.
func NewLogger(cfg Config, w io.Writer) zerolog.Logger {
	if cfg.Environment == domain.EnvironmentDevelopment {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	}
	return zerolog.New(w).
		Level(cfg.Level()).
		With().
		Timestamp().
		Str("environment", string(cfg.Environment)).
		Logger()
}
