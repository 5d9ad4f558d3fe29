// Package config loads forwarding settings from layered sources and
// assembles sinks and forwarders from them.
//
// Settings come from three layers with increasing priority: built-in
// defaults, an optional YAML file, and HOSTLOG_* environment variables.
// Loading is type-safe; a Config that survives Validate can always be
// built into a working forwarder, except for output files that cannot
// be opened.
//
// Basic usage:
//
//	cfg, err := config.Load("hostlog.yaml")
//	if err != nil {
//		// handle
//	}
//	fwd, err := cfg.NewForwarder()
//	if err != nil {
//		// handle
//	}
//	defer fwd.Close()
//	fwd.Noticef("configured and running")
package config
