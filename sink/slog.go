package sink

import (
	"context"
	"log/slog"

	"github.com/embedkit/hostlog/core"
)

// Slog is a Sink that forwards deliveries into a log/slog logger.
// The four host severities map onto slog's coarser ladder: debug and
// verbose become slog.LevelDebug, notice becomes slog.LevelInfo and
// warning becomes slog.LevelWarn.
type Slog struct {
	logger *slog.Logger
}

// NewSlog creates a Slog sink around logger. A nil logger means
// slog.Default().
func NewSlog(logger *slog.Logger) *Slog {
	if logger == nil {
		logger = slog.Default()
	}
	return &Slog{logger: logger}
}

// Log forwards the message at the mapped slog level
func (s *Slog) Log(level core.Level, message string) {
	s.logger.Log(context.Background(), slogLevel(level), message)
}

// slogLevel converts a host level to a slog.Level
func slogLevel(level core.Level) slog.Level {
	switch level {
	case core.DebugLevel, core.VerboseLevel:
		return slog.LevelDebug
	case core.WarningLevel:
		return slog.LevelWarn
	default:
		return slog.LevelInfo
	}
}
