package sink

import (
	"io"

	"github.com/embedkit/hostlog/core"
)

// Threshold drops deliveries below a minimum level before they reach
// the wrapped sink. This is the receiving side's loglevel knob: the
// forwarding side hands over every call, filtering happens here.
type Threshold struct {
	min  core.Level
	next Sink
}

// NewThreshold wraps next so only messages at or above min get through
func NewThreshold(min core.Level, next Sink) *Threshold {
	return &Threshold{min: min, next: next}
}

// Log forwards the message when level is at or above the minimum
func (t *Threshold) Log(level core.Level, message string) {
	if level < t.min {
		return
	}
	t.next.Log(level, message)
}

// Close closes the wrapped sink if it implements io.Closer
func (t *Threshold) Close() error {
	if c, ok := t.next.(io.Closer); ok {
		return c.Close()
	}
	return nil
}
