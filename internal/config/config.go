// Package config centralises runtime configuration for the service.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config captures runtime settings read from environment variables.
type Config struct {
	HTTPAddress     string        `env:"HTTP_ADDRESS" envDefault:":8080"`
	ReadTimeout     time.Duration `env:"READ_TIMEOUT" envDefault:"15s"`
	WriteTimeout    time.Duration `env:"WRITE_TIMEOUT" envDefault:"15s"`
	IdleTimeout     time.Duration `env:"IDLE_TIMEOUT" envDefault:"60s"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`

	// CapacityEnforced rejects signups once an activity reaches
	// max_participants. Off by default: capacity is descriptive metadata
	// unless a deployment opts in.
	CapacityEnforced bool `env:"CAPACITY_ENFORCED" envDefault:"false"`

	// SeedFile points at a YAML roster to load instead of the built-in seed.
	SeedFile string `env:"SEED_FILE"`

	// WebDir is served at the root for the static signup page.
	WebDir string `env:"WEB_DIR" envDefault:"./web"`
}

// Load parses environment variables into a Config.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
