package billiards

import (
	"log/slog"

	"github.com/osuushi/billiards/internal/logger"
)

// SetLogger configures the logger for billiards and its sub-packages. By
// default nothing is logged. Pass nil to silence logging again.
//
// Orbit steps and chord casts are logged at [slog.LevelDebug], and aborted
// orbits at [slog.LevelWarn].
//
// SetLogger is safe for concurrent use.
func SetLogger(l *slog.Logger) {
	logger.Set(l)
}
