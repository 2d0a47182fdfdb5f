package render

import (
	"log/slog"

	"github.com/taigrr/cerulean/internal/logging"
)

// SetLogger configures the logger for render and the packages built on it
// (models, display). By default nothing is logged. Pass nil to restore the
// silent default.
//
// SetLogger is safe for concurrent use.
//
// Log levels used:
//   - [slog.LevelDebug]: degenerate clip geometry, per-frame statistics
//   - [slog.LevelInfo]: lifecycle events (surface opened, model loaded)
//   - [slog.LevelWarn]: skipped geometry (perspective divide by zero)
//
// Example:
//
//	render.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	logging.SetLogger(l)
}

// Logger returns the current logger.
func Logger() *slog.Logger {
	return logging.Logger()
}
