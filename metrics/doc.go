// Package metrics exports forwarding counters to Prometheus.
//
// The collector reads a forwarder's live statistics during each scrape
// instead of keeping its own counters, so the exported values can never
// drift from what the forwarder reports:
//
//	fwd, _ := cfg.NewForwarder()
//	prometheus.MustRegister(metrics.NewCollector(fwd.Stats()))
//
// Exported metrics:
//
//	hostlog_forwarded_total{level}  messages delivered per level
//	hostlog_truncated_total         messages clipped to the render capacity
package metrics
