// Package config reads application settings from the environment.
package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

// Config carries everything main needs to wire the app together.
type Config struct {
	// DBPath overrides the default store location when set.
	DBPath string `env:"PUNCHCARD_DB"`

	// GeoURL is the IP geolocation endpoint queried once on startup.
	GeoURL string `env:"PUNCHCARD_GEO_URL, default=http://ip-api.com/json"`

	// GeoTimeout bounds the single location lookup.
	GeoTimeout time.Duration `env:"PUNCHCARD_GEO_TIMEOUT, default=10s"`

	// GeoDisabled turns location lookups off entirely.
	GeoDisabled bool `env:"PUNCHCARD_GEO_DISABLED, default=false"`
}

func Load(ctx context.Context) (Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return Config{}, fmt.Errorf("read environment: %w", err)
	}
	return cfg, nil
}
