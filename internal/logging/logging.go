// Package logging sets up the zerolog logger used for diagnostics.
// Answers go to stdout; everything logged here goes to stderr.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// DefaultLevel is used when no level is configured.
const DefaultLevel = "info"

// ParseLevel accepts trace, debug, info, warn and error. An empty name is info.
func ParseLevel(s string) (zerolog.Level, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	switch name {
	case "":
		return zerolog.InfoLevel, nil
	case "warning":
		name = zerolog.WarnLevel.String()
	}

	level, err := zerolog.ParseLevel(name)
	if err != nil || level.String() != name || level > zerolog.ErrorLevel {
		return zerolog.NoLevel, fmt.Errorf("invalid log level %q (want trace, debug, info, warn or error)", s)
	}
	return level, nil
}

// New returns a console logger writing to w at the given level.
func New(w io.Writer, level zerolog.Level) zerolog.Logger {
	out := zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: time.TimeOnly,
		NoColor:    noColor(w),
	}
	return zerolog.New(out).Level(level).With().Timestamp().Logger()
}

func noColor(w io.Writer) bool {
	if os.Getenv("NO_COLOR") != "" {
		return true
	}
	f, ok := w.(*os.File)
	if !ok {
		return true
	}
	fi, err := f.Stat()
	return err != nil || (fi.Mode()&os.ModeCharDevice) == 0
}
