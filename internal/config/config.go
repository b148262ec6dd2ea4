// Package config defines service configuration structures and loading.
//
// Conventions:
//   - Defaults live in New; Load layers an optional YAML file and TAP_* env vars
//     on top.
//   - External errors are wrapped via this package's sentinel kinds.
package config

import "context"

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr"`

	// DatabaseDSN selects the Postgres-backed store when non-empty; the
	// service falls back to the in-memory store otherwise.
	DatabaseDSN string `koanf:"database_dsn"`

	// ActiveWindowDays is the trailing window that keeps a manager "active".
	ActiveWindowDays int `koanf:"active_window_days"`

	// DefaultTrendMonths is used when a monthly trend request omits months.
	DefaultTrendMonths int `koanf:"default_trend_months"`

	// MaxTrendMonths caps GET /trends/monthly?months.
	MaxTrendMonths int `koanf:"max_trend_months"`

	// DedupeSize bounds the submission idempotency cache.
	DedupeSize int `koanf:"dedupe_size"`
}

// New creates a Config populated with defaults. Context is accepted first to
// satisfy the project-wide convention; it is reserved for future use.
func New(_ context.Context) *Config {
	return &Config{
		LogLevel:           "info",
		Addr:               ":8090",
		DatabaseDSN:        "",
		ActiveWindowDays:   30,
		DefaultTrendMonths: 12,
		MaxTrendMonths:     36,
		DedupeSize:         50_000,
	}
}
