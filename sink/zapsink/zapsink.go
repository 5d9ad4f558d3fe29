// Package zapsink forwards hostlog deliveries into a zap logger.
package zapsink

import (
	"go.uber.org/zap"

	"github.com/embedkit/hostlog/core"
	"github.com/embedkit/hostlog/sink"
)

// Sink adapts a zap.Logger to the hostlog sink contract. Host
// severities map onto zap's ladder: debug and verbose become Debug,
// notice becomes Info and warning becomes Warn.
type Sink struct {
	logger *zap.Logger
}

var _ sink.Sink = (*Sink)(nil)

// New creates a Sink around logger. A nil logger means zap.NewNop().
func New(logger *zap.Logger) *Sink {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Sink{logger: logger}
}

// Log writes the message through the zap logger at the mapped level
func (s *Sink) Log(level core.Level, message string) {
	switch level {
	case core.DebugLevel, core.VerboseLevel:
		s.logger.Debug(message)
	case core.WarningLevel:
		s.logger.Warn(message)
	default:
		s.logger.Info(message)
	}
}
