package plog

import (
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Logger is the structured logger passed around the driver. It is a thin
// alias over zerolog.Logger so callers can use the zerolog API directly
// (With(), Level(), etc.) without this package getting in the way.
type Logger = zerolog.Logger

// Nop returns a Logger that discards everything, the module's default.
func Nop() Logger {
	return zerolog.Nop()
}

// New returns a console-writer Logger at the given level, suitable for a
// CLI such as cmd/paretoexplore.
func New(w io.Writer, level zerolog.Level) Logger {
	if w == nil {
		w = os.Stderr
	}

	return zerolog.New(zerolog.ConsoleWriter{Out: w, TimeFormat: "15:04:05"}).
		Level(level).
		With().
		Timestamp().
		Logger()
}

// NewJSON returns a plain JSON-line Logger at the given level, suitable for
// production log shipping where New's console rendering would just add
// parsing overhead.
func NewJSON(w io.Writer, level zerolog.Level) Logger {
	if w == nil {
		w = os.Stderr
	}

	return zerolog.New(w).Level(level).With().Timestamp().Logger()
}

// WithRun tags every subsequent log line from the returned Logger with a
// run_id, so log lines from concurrent Driver.Solve calls (see problem
// package) can be told apart.
func WithRun(l Logger, runID uuid.UUID) Logger {
	return l.With().Str("run_id", runID.String()).Logger()
}
