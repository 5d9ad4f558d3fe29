// Package zerologsink forwards hostlog deliveries into a zerolog logger.
package zerologsink

import (
	"github.com/rs/zerolog"

	"github.com/embedkit/hostlog/core"
	"github.com/embedkit/hostlog/sink"
)

// Sink adapts a zerolog.Logger to the hostlog sink contract. zerolog's
// Trace level gives the four host severities a one-to-one home: debug
// becomes Trace, verbose becomes Debug, notice becomes Info and
// warning becomes Warn.
type Sink struct {
	logger zerolog.Logger
}

var _ sink.Sink = (*Sink)(nil)

// New creates a Sink around logger
func New(logger zerolog.Logger) *Sink {
	return &Sink{logger: logger}
}

// Log writes the message through the zerolog logger at the mapped level
func (s *Sink) Log(level core.Level, message string) {
	s.event(level).Msg(message)
}

func (s *Sink) event(level core.Level) *zerolog.Event {
	switch level {
	case core.DebugLevel:
		return s.logger.Trace()
	case core.VerboseLevel:
		return s.logger.Debug()
	case core.WarningLevel:
		return s.logger.Warn()
	default:
		return s.logger.Info()
	}
}
