package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/embedkit/hostlog/core"
	"github.com/embedkit/hostlog/sink"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, core.DefaultRenderCapacity, cfg.RenderCapacity)
	assert.Equal(t, sink.DefaultCaptureCapacity, cfg.CaptureCapacity)
	assert.Equal(t, "", cfg.MinLevel)
	assert.Equal(t, KindWriter, cfg.Sink.Kind)
	assert.Equal(t, OutputStderr, cfg.Sink.Output)
	assert.False(t, cfg.Sink.OmitTimestamp)

	require.NoError(t, cfg.Validate())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:   "defaults pass",
			mutate: func(c *Config) {},
		},
		{
			name:   "every sink kind passes",
			mutate: func(c *Config) { c.Sink.Kind = KindZerolog },
		},
		{
			name:   "min level passes",
			mutate: func(c *Config) { c.MinLevel = "warning" },
		},
		{
			name:    "zero render capacity",
			mutate:  func(c *Config) { c.RenderCapacity = 0 },
			wantErr: "render_capacity",
		},
		{
			name:    "negative capture capacity",
			mutate:  func(c *Config) { c.CaptureCapacity = -1 },
			wantErr: "capture_capacity",
		},
		{
			name:    "unknown min level",
			mutate:  func(c *Config) { c.MinLevel = "fatal" },
			wantErr: "min_level",
		},
		{
			name:    "unknown sink kind",
			mutate:  func(c *Config) { c.Sink.Kind = "syslog" },
			wantErr: "unknown sink kind",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			if assert.Error(t, err) {
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}
