package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/embedkit/hostlog/bridge"
	"github.com/embedkit/hostlog/core"
)

var levels = []core.Level{core.DebugLevel, core.VerboseLevel, core.NoticeLevel, core.WarningLevel}

// Collector exposes a forwarder's counters to Prometheus. It reads the
// live bridge.Stats on every scrape, so registering it once is enough
// to keep the metrics current.
type Collector struct {
	stats *bridge.Stats

	forwardedDesc *prometheus.Desc
	truncatedDesc *prometheus.Desc
}

var _ prometheus.Collector = (*Collector)(nil)

// NewCollector builds a Collector over stats.
func NewCollector(stats *bridge.Stats) *Collector {
	return &Collector{
		stats: stats,
		forwardedDesc: prometheus.NewDesc(
			"hostlog_forwarded_total",
			"Total number of messages forwarded to the sink",
			[]string{"level"},
			nil,
		),
		truncatedDesc: prometheus.NewDesc(
			"hostlog_truncated_total",
			"Total number of messages clipped to the render capacity",
			nil,
			nil,
		),
	}
}

// Describe implements prometheus.Collector.
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.forwardedDesc
	ch <- c.truncatedDesc
}

// Collect implements prometheus.Collector.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	for _, level := range levels {
		ch <- prometheus.MustNewConstMetric(
			c.forwardedDesc,
			prometheus.CounterValue,
			float64(c.stats.GetForwarded(level)),
			level.String(),
		)
	}
	ch <- prometheus.MustNewConstMetric(
		c.truncatedDesc,
		prometheus.CounterValue,
		float64(c.stats.GetTruncated()),
	)
}
