package config

import (
	"fmt"
	"os"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix is shared by all recognized environment variables.
const EnvPrefix = "HOSTLOG_"

// ConfigPathEnvVar is the environment variable that can override the
// config file search.
const ConfigPathEnvVar = "HOSTLOG_CONFIG"

// DefaultConfigPaths lists the paths where config files are searched in
// order of priority. The first file found will be used.
var DefaultConfigPaths = []string{
	"hostlog.yaml",
	"hostlog.yml",
	"/etc/hostlog/hostlog.yaml",
	"/etc/hostlog/hostlog.yml",
}

// Load builds a Config from layered sources:
//  1. Defaults from Default()
//  2. An optional YAML file (skipped when path is empty)
//  3. HOSTLOG_* environment variables (highest priority)
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(Default(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envTransformFunc), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// FindConfigFile searches for a config file in the default paths.
// The ConfigPathEnvVar environment variable wins when it points at an
// existing file. An empty return means no file was found, which Load
// treats as "defaults plus environment".
func FindConfigFile() string {
	if envPath := os.Getenv(ConfigPathEnvVar); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath
		}
	}

	for _, path := range DefaultConfigPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return ""
}

// envMappings maps environment variable names to koanf config paths.
var envMappings = map[string]string{
	"HOSTLOG_RENDER_CAPACITY":       "render_capacity",
	"HOSTLOG_CAPTURE_CAPACITY":      "capture_capacity",
	"HOSTLOG_MIN_LEVEL":             "min_level",
	"HOSTLOG_SINK_KIND":             "sink.kind",
	"HOSTLOG_SINK_OUTPUT":           "sink.output",
	"HOSTLOG_SINK_TIMESTAMP_FORMAT": "sink.timestamp_format",
	"HOSTLOG_SINK_OMIT_TIMESTAMP":   "sink.omit_timestamp",
}

// envTransformFunc resolves an environment variable name to its config
// path. Unrecognized names map to the empty string and are skipped, which
// keeps unrelated environment variables out of the configuration.
func envTransformFunc(key string) string {
	return envMappings[key]
}

// Watch invokes callback whenever the file at path changes. The callback
// typically reloads with Load; the caller is responsible for mutex
// protection around the swapped configuration.
func Watch(path string, callback func()) error {
	provider := file.Provider(path)
	return provider.Watch(func(event interface{}, err error) {
		if err != nil {
			return
		}
		callback()
	})
}
