package ggplot

import (
	"log/slog"
	"sync/atomic"
)

// silent discards every record. Its handler reports no level as enabled,
// so callers skip building attributes.
var silent = slog.New(slog.DiscardHandler)

var current atomic.Pointer[slog.Logger]

func init() {
	current.Store(silent)
}

// SetLogger configures the logger for ggplot and all its sub-packages.
// By default nothing is logged. Pass nil to restore the silent default.
//
// Log levels used by ggplot:
//   - [slog.LevelDebug]: face loading, face resolution per shaped span, surface setup
//   - [slog.LevelInfo]: font collection scans (system fonts, directories)
//   - [slog.LevelWarn]: font files skipped because they could not be parsed
//
// Example:
//
//	ggplot.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = silent
	}
	current.Store(l)
}

// Logger returns the current logger.
// Sub-packages (text/font, text/rich, surface) call this to share the same
// logger configuration.
//
// Logger is safe for concurrent use.
func Logger() *slog.Logger {
	return current.Load()
}
