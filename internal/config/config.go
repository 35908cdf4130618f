// Package config defines process configuration and its loading hooks.
//
// Conventions:
// - New returns a Config populated with defaults.
// - Load layers defaults, an optional YAML file and FOOTRISK_* env vars.
// - Loader errors wrap ErrLoadConfig, validation errors wrap ErrInvalidConfig.
package config

import (
	"time"
)

// DefaultAPIURL is used when no prediction service URL is configured.
const DefaultAPIURL = "http://localhost:5000"

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// LogFormat selects the log handler: text or json.
	LogFormat string `koanf:"log_format"`

	// Addr configures the dashboard HTTP listen address, e.g. ":9080".
	Addr string `koanf:"addr"`

	// APIURL is the base URL of the prediction service.
	APIURL string `koanf:"api_url"`

	// ClientTimeoutMS bounds each prediction service call at the transport.
	// Zero leaves calls unbounded.
	ClientTimeoutMS int `koanf:"client_timeout_ms"`

	// ProbeIntervalMS sets how often the server probes GET /health upstream.
	// Zero disables the probe.
	ProbeIntervalMS int `koanf:"probe_interval_ms"`

	// PageCacheSize bounds the rendered dashboard page cache.
	PageCacheSize int `koanf:"page_cache_size"`
}

// New creates a Config with defaults.
func New() *Config {
	return &Config{
		LogLevel:        "info",
		LogFormat:       "text",
		Addr:            ":9080",
		APIURL:          DefaultAPIURL,
		ClientTimeoutMS: 0,
		ProbeIntervalMS: 30_000,
		PageCacheSize:   64,
	}
}

// ClientTimeout returns ClientTimeoutMS as a duration.
func (c *Config) ClientTimeout() time.Duration {
	return time.Duration(c.ClientTimeoutMS) * time.Millisecond
}

// ProbeInterval returns ProbeIntervalMS as a duration.
func (c *Config) ProbeInterval() time.Duration {
	return time.Duration(c.ProbeIntervalMS) * time.Millisecond
}
