package sink

import (
	"github.com/embedkit/hostlog/core"
)

// Sink receives rendered messages from a forwarder. Implementations own
// everything past the hand-off: the destination, serialization of the
// output device, and any failure handling. The message string is
// immutable and safe to retain.
//
// Sinks that hold resources may additionally implement io.Closer;
// composite sinks and the config layer detect it by type assertion.
type Sink interface {
	// Log receives one message at the given severity
	Log(level core.Level, message string)
}

// Func adapts a plain function to the Sink interface
type Func func(level core.Level, message string)

// Log calls f
func (f Func) Log(level core.Level, message string) {
	f(level, message)
}

// Discard is a Sink that drops every message
var Discard Sink = Func(func(core.Level, string) {})
