package bridge

import (
	"sync"

	"github.com/embedkit/hostlog/core"
	"github.com/embedkit/hostlog/sink"
)

var (
	defaultForwarder *Forwarder
	defaultMu        sync.RWMutex
)

func init() {
	// Initialize default forwarder with a stderr writer sink
	defaultForwarder = NewBuilder().
		WithSink(sink.NewWriter(sink.WriterConfig{})).
		Build()
}

// Default returns the default forwarder
func Default() *Forwarder {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultForwarder
}

// SetDefault sets the default forwarder
func SetDefault(f *Forwarder) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultForwarder = f
}

// Package-level convenience functions using the default forwarder

// Forward renders and delivers a message using the default forwarder
func Forward(level core.Level, format string, args ...interface{}) {
	Default().Forward(level, format, args...)
}

// Debugf forwards a debug-level message using the default forwarder
func Debugf(format string, args ...interface{}) {
	Default().Debugf(format, args...)
}

// Verbosef forwards a verbose-level message using the default forwarder
func Verbosef(format string, args ...interface{}) {
	Default().Verbosef(format, args...)
}

// Noticef forwards a notice-level message using the default forwarder
func Noticef(format string, args ...interface{}) {
	Default().Noticef(format, args...)
}

// Warningf forwards a warning-level message using the default forwarder
func Warningf(format string, args ...interface{}) {
	Default().Warningf(format, args...)
}
