// Package logging constructs the logger injected into every component.
package logging

import (
	"io"
	"time"

	"github.com/rs/zerolog"
)

// New creates a logger writing human-readable output to w. Diagnostics
// go to the log writer so the rendered table on stdout stays clean.
func New(w io.Writer, verbose bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}

	out := zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	return zerolog.New(out).Level(level).With().Timestamp().Logger()
}
