package config

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Load builds a Config by layering defaults, optional file, and env vars.
// Order of precedence (low -> high):
//  1. defaults (New(ctx))
//  2. file (YAML) if TAP_CONFIG is set
//  3. env (prefix TAP_)
func Load(ctx context.Context) (*Config, error) {
	base := New(ctx)

	k := koanf.New(".")

	if path := os.Getenv("TAP_CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrLoadConfig, err)
		}
	}

	// Environment variables: TAP_ADDR, TAP_DATABASE_DSN, ...
	// Map env keys like TAP_ACTIVE_WINDOW_DAYS -> active_window_days; keep
	// underscores to match the koanf tags on the struct.
	envProvider := env.Provider("TAP_", ".", func(s string) string {
		s = strings.ToLower(s)
		return strings.TrimPrefix(s, "tap_")
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoadConfig, err)
	}

	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoadConfig, err)
	}

	switch {
	case cfg.Addr == "":
		return nil, fmt.Errorf("%w: addr must not be empty", ErrInvalidConfig)
	case cfg.DefaultTrendMonths < 1:
		return nil, fmt.Errorf("%w: default_trend_months must be positive", ErrInvalidConfig)
	case cfg.MaxTrendMonths < cfg.DefaultTrendMonths:
		return nil, fmt.Errorf("%w: max_trend_months below default_trend_months", ErrInvalidConfig)
	}
	return &cfg, nil
}
