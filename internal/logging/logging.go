// Package logging builds the zerolog logger vitals uses for diagnostics.
// Diagnostics always go to stderr so they never mix with the rendered strip.
package logging

import (
	"io"
	"time"

	"github.com/rs/zerolog"
)

// Config holds logger configuration.
type Config struct {
	Debug  bool // debug level instead of warn
	Pretty bool // human-readable console output instead of JSON lines
}

// New creates a logger writing to w.
func New(w io.Writer, cfg Config) zerolog.Logger {
	level := zerolog.WarnLevel
	if cfg.Debug {
		level = zerolog.DebugLevel
	}

	zerolog.TimeFieldFormat = time.RFC3339

	out := w
	if cfg.Pretty {
		out = zerolog.ConsoleWriter{
			Out:        w,
			TimeFormat: "15:04:05",
			NoColor:    true,
		}
	}

	return zerolog.New(out).
		Level(level).
		With().
		Timestamp().
		Str("component", "vitals").
		Logger()
}
