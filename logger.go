package delaunay

import (
	"os"

	"github.com/rs/zerolog"
)

// Logger is the narrow soft-error reporting collaborator the Driver
// calls into for DuplicatePoint warnings. Callers that already run a
// structured logger can adapt it to this interface; Options.Logger left
// nil falls back to newDefaultLogger.
type Logger interface {
	Warn(msg string, fields ...any)
}

// zerologLogger backs the default Logger with github.com/rs/zerolog,
// writing structured warnings to stderr. The Driver never configures
// zerolog beyond constructing this default; level, sinks, and formatting
// are an external concern per the package's no-persistent-state design.
type zerologLogger struct {
	logger zerolog.Logger
}

func newDefaultLogger() Logger {
	return &zerologLogger{logger: zerolog.New(os.Stderr).With().Timestamp().Logger()}
}

// Warn logs msg at warn level. fields is a flat key, value, key, value...
// sequence; a pair whose key is not a string is skipped, and a trailing
// unpaired value is logged under the key "extra".
func (l *zerologLogger) Warn(msg string, fields ...any) {
	event := l.logger.Warn()
	for i := 0; i+1 < len(fields); i += 2 {
		key, ok := fields[i].(string)
		if !ok {
			continue
		}
		event = event.Interface(key, fields[i+1])
	}
	if len(fields)%2 == 1 {
		event = event.Interface("extra", fields[len(fields)-1])
	}
	event.Msg(msg)
}
