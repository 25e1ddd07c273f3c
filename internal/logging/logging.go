// Package logging builds the zerolog loggers used by the pennant command.
package logging

import (
	"io"
	"strings"
	"time"

	"github.com/rotisserie/eris"
	"github.com/rs/zerolog"
)

// Supported output formats.
const (
	FormatConsole = "console"
	FormatJSON    = "json"
)

// ErrInvalidFormat is returned for an unknown output format.
var ErrInvalidFormat = eris.New("logging: invalid format")

// ErrInvalidLevel is returned for a level zerolog does not recognise.
var ErrInvalidLevel = eris.New("logging: invalid level")

// New returns a logger writing to w at the given level. format is either
// "console" (human readable) or "json".
func New(level, format string, w io.Writer) (zerolog.Logger, error) {
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil {
		return zerolog.Nop(), eris.Wrapf(ErrInvalidLevel, "%q", level)
	}

	switch strings.ToLower(strings.TrimSpace(format)) {
	case FormatConsole, "pretty":
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339, NoColor: true}
	case FormatJSON:
	default:
		return zerolog.Nop(), eris.Wrapf(ErrInvalidFormat, "%q (must be %q or %q)", format, FormatConsole, FormatJSON)
	}

	return zerolog.New(w).Level(lvl).With().Timestamp().Logger(), nil
}
