package config

import (
	"fmt"

	"github.com/embedkit/hostlog/bridge"
	"github.com/embedkit/hostlog/core"
	"github.com/embedkit/hostlog/sink"
)

// Sink kinds accepted by SinkConfig.Kind.
const (
	KindWriter  = "writer"
	KindJSON    = "json"
	KindSlog    = "slog"
	KindZap     = "zap"
	KindZerolog = "zerolog"
	KindDiscard = "discard"
)

// Output names with a fixed meaning. Anything else is treated as a file path.
const (
	OutputStdout = "stdout"
	OutputStderr = "stderr"
)

// SinkConfig selects and shapes the delivery target.
type SinkConfig struct {
	// Kind picks the sink implementation: writer, json, slog, zap,
	// zerolog or discard.
	Kind string `koanf:"kind"`

	// Output is stdout, stderr or a file path. Empty means stderr.
	// Ignored by the discard kind.
	Output string `koanf:"output"`

	// TimestampFormat is the time layout for the writer and json kinds.
	// Empty means RFC3339.
	TimestampFormat string `koanf:"timestamp_format"`

	// OmitTimestamp drops the timestamp from writer and json lines.
	OmitTimestamp bool `koanf:"omit_timestamp"`
}

// Config holds every tunable of the forwarding pipeline.
type Config struct {
	// RenderCapacity bounds rendered messages. A message never exceeds
	// RenderCapacity-1 bytes.
	RenderCapacity int `koanf:"render_capacity"`

	// CaptureCapacity bounds messages recorded by captures built
	// through NewCapture.
	CaptureCapacity int `koanf:"capture_capacity"`

	// MinLevel drops messages below the named level before delivery.
	// Empty means no filtering.
	MinLevel string `koanf:"min_level"`

	Sink SinkConfig `koanf:"sink"`
}

// Default returns a Config with all default values. Defaults are applied
// first, then overridden by the config file and environment variables.
func Default() *Config {
	return &Config{
		RenderCapacity:  core.DefaultRenderCapacity,
		CaptureCapacity: sink.DefaultCaptureCapacity,
		MinLevel:        "",
		Sink: SinkConfig{
			Kind:   KindWriter,
			Output: OutputStderr,
		},
	}
}

// Validate checks the configuration for values that cannot be built into
// a working forwarder.
func (c *Config) Validate() error {
	if c.RenderCapacity <= 0 {
		return fmt.Errorf("render_capacity must be positive, got %d", c.RenderCapacity)
	}
	if c.CaptureCapacity <= 0 {
		return fmt.Errorf("capture_capacity must be positive, got %d", c.CaptureCapacity)
	}
	if c.MinLevel != "" {
		if _, err := bridge.ParseLevelStrict(c.MinLevel); err != nil {
			return fmt.Errorf("min_level: %w", err)
		}
	}
	switch c.Sink.Kind {
	case KindWriter, KindJSON, KindSlog, KindZap, KindZerolog, KindDiscard:
	default:
		return fmt.Errorf("unknown sink kind %q", c.Sink.Kind)
	}
	return nil
}
