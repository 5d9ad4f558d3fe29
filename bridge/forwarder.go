package bridge

import (
	"io"
	"sync"

	"github.com/embedkit/hostlog/core"
	"github.com/embedkit/hostlog/render"
	"github.com/embedkit/hostlog/sink"
)

// Forwarder renders printf-style diagnostics into a bounded buffer and
// hands each one to the installed sink (immutable)
type Forwarder struct {
	sink     sink.Sink
	capacity int
	stats    *Stats
	pool     *sync.Pool
}

// Builder provides a fluent API for building Forwarder instances
type Builder struct {
	sink     sink.Sink
	capacity int
	stats    *Stats
}

// NewBuilder creates a new forwarder builder
func NewBuilder() *Builder {
	return &Builder{
		capacity: core.DefaultRenderCapacity,
	}
}

// WithSink sets the sink receiving rendered messages
func (b *Builder) WithSink(s sink.Sink) *Builder {
	b.sink = s
	return b
}

// WithRenderCapacity bounds rendered messages at capacity-1 bytes.
// Non-positive values keep the default.
func (b *Builder) WithRenderCapacity(capacity int) *Builder {
	if capacity > 0 {
		b.capacity = capacity
	}
	return b
}

// WithStats attaches an externally owned Stats instance, letting
// several forwarders share one set of counters
func (b *Builder) WithStats(st *Stats) *Builder {
	b.stats = st
	return b
}

// Build creates the Forwarder instance
func (b *Builder) Build() *Forwarder {
	capacity := b.capacity
	st := b.stats
	if st == nil {
		st = NewStats()
	}
	return &Forwarder{
		sink:     b.sink,
		capacity: capacity,
		stats:    st,
		pool: &sync.Pool{
			New: func() interface{} {
				return core.NewBoundedBuffer(capacity)
			},
		},
	}
}

// WithSink returns a new Forwarder delivering to s, sharing this
// forwarder's capacity, stats and buffer pool (immutable operation)
func (f *Forwarder) WithSink(s sink.Sink) *Forwarder {
	return &Forwarder{
		sink:     s,
		capacity: f.capacity,
		stats:    f.stats,
		pool:     f.pool,
	}
}

// Forward renders format with args and delivers the bounded result to
// the sink, synchronously and exactly once per call. Output past the
// render bound is clipped silently; no level is filtered here, a sink
// that wants a minimum level wraps itself in sink.NewThreshold.
// Without a sink the call returns immediately.
func (f *Forwarder) Forward(level core.Level, format string, args ...interface{}) {
	if f.sink == nil {
		return
	}

	buf := f.pool.Get().(*core.BoundedBuffer)
	buf.Reset()
	render.Printf(buf, format, args...)
	// String() copies, so the buffer can go back to the pool before
	// the sink runs.
	msg := buf.String()
	truncated := buf.Truncated()
	f.pool.Put(buf)

	f.stats.IncrementForwarded(level)
	if truncated {
		f.stats.IncrementTruncated()
	}

	f.sink.Log(level, msg)
}

// Debugf forwards a debug-level message
func (f *Forwarder) Debugf(format string, args ...interface{}) {
	f.Forward(core.DebugLevel, format, args...)
}

// Verbosef forwards a verbose-level message
func (f *Forwarder) Verbosef(format string, args ...interface{}) {
	f.Forward(core.VerboseLevel, format, args...)
}

// Noticef forwards a notice-level message
func (f *Forwarder) Noticef(format string, args ...interface{}) {
	f.Forward(core.NoticeLevel, format, args...)
}

// Warningf forwards a warning-level message
func (f *Forwarder) Warningf(format string, args ...interface{}) {
	f.Forward(core.WarningLevel, format, args...)
}

// Sink returns the installed sink
func (f *Forwarder) Sink() sink.Sink {
	return f.sink
}

// RenderCapacity returns the render buffer capacity. Rendered messages
// never exceed RenderCapacity()-1 bytes.
func (f *Forwarder) RenderCapacity() int {
	return f.capacity
}

// Stats returns the forwarder's counters
func (f *Forwarder) Stats() *Stats {
	return f.stats
}

// Close closes the installed sink if it implements io.Closer
func (f *Forwarder) Close() error {
	if c, ok := f.sink.(io.Closer); ok {
		return c.Close()
	}
	return nil
}
