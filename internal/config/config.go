// Package config loads runtime configuration from the environment.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds the settings shared by the CLI commands.
type Config struct {
	HTTPAddr        string        `env:"RESUMEGEN_HTTP_ADDR" envDefault:"localhost:8080"`
	SeedFile        string        `env:"RESUMEGEN_SEED_FILE"`
	LogLevel        string        `env:"RESUMEGEN_LOG_LEVEL" envDefault:"info"`
	Theme           string        `env:"RESUMEGEN_THEME" envDefault:"resume"`
	ThemeVariant    string        `env:"RESUMEGEN_THEME_VARIANT" envDefault:"light"`
	ShutdownTimeout time.Duration `env:"RESUMEGEN_SHUTDOWN_TIMEOUT" envDefault:"5s"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Load parses Config from the environment.
func Load() (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
