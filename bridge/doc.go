// Package bridge is the public API of hostlog. Most users only need
// to import this package.
//
// A Forwarder is immutable after construction: the sink, the render
// capacity and the stats handle are set once via the Builder and never
// modified. This makes Forwarder inherently safe for concurrent use
// without any locking on the forward path.
//
// Forward renders a printf-style template (C conversion specifiers
// included) into a pooled bounded buffer and hands the result to the
// sink exactly once per call, synchronously. Nothing is queued,
// retried or filtered on the forwarding side, and nothing comes back:
// the call has no error path. Messages longer than the render capacity
// allows are clipped silently and counted in Stats.
//
// The package initializes a default Forwarder (writer sink to stderr)
// in init(). The package-level functions Noticef, Warningf, Forward,
// etc. delegate to this default instance, so simple programs can
// forward without any setup:
//
//	bridge.Noticef("index %s loaded with %u documents", name, count)
//
// For custom configuration, use the Builder:
//
//	fwd := bridge.NewBuilder().
//	    WithSink(sink.NewWriter(sink.WriterConfig{})).
//	    WithRenderCapacity(2048).
//	    Build()
package bridge
