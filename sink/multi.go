package sink

import (
	"io"

	"github.com/embedkit/hostlog/core"
)

// Multi fans each delivery out to multiple sinks in order
type Multi struct {
	sinks []Sink
}

// NewMulti creates a Multi delivering to sinks in the given order
func NewMulti(sinks ...Sink) *Multi {
	return &Multi{sinks: sinks}
}

// Log delivers the message to every child sink
func (m *Multi) Log(level core.Level, message string) {
	for _, s := range m.sinks {
		s.Log(level, message)
	}
}

// Close closes every child sink that implements io.Closer
func (m *Multi) Close() error {
	var lastErr error
	for _, s := range m.sinks {
		if c, ok := s.(io.Closer); ok {
			if err := c.Close(); err != nil {
				lastErr = err
			}
		}
	}
	return lastErr
}
