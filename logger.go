package saybox

import (
	"log/slog"

	"github.com/iw2rmb/saybox/internal/logging"
)

// SetLogger configures the logger used by every saybox package.
// By default saybox produces no log output. Pass nil to restore that.
//
// Levels used:
//   - [slog.LevelDebug]: per-cell placement, clears and layer bookkeeping
//   - [slog.LevelInfo]: the finished mix (bounds and layer count)
//
// Example:
//
//	saybox.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	logging.Set(l)
}

// Logger returns the current logger. It is safe for concurrent use.
func Logger() *slog.Logger {
	return logging.L()
}
