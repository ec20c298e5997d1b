// Package logger builds the zerolog loggers used across brushplot.
package logger

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

const DEFAULT_LEVEL = "info"

// New returns a logger writing to w at the named level ("trace" through "panic", or "disabled"). pretty switches to
// the human readable console format.
func New(w io.Writer, level string, pretty bool) (zerolog.Logger, error) {
	if w == nil {
		w = os.Stderr
	}
	if level == "" {
		level = DEFAULT_LEVEL
	}

	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("couldn't parse log level %q: %w", level, err)
	}

	if pretty {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen}
	}

	return zerolog.New(w).Level(lvl).With().Timestamp().Logger(), nil
}
