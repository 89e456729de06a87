// Package config loads zcampus settings from the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Prefix is prepended to every environment variable name.
const Prefix = "ZCAMPUS_"

// Config holds runtime settings. Every field has a usable default.
type Config struct {
	// Catalog is a path or glob for the university catalog.
	Catalog string `env:"CATALOG" envDefault:"verified_universities.json"`
	// Count is the number of rows the sample command prints.
	Count int `env:"COUNT" envDefault:"10"`
	// Seed makes runs reproducible. Zero means crypto-seeded.
	Seed     uint64 `env:"SEED" envDefault:"0"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"warn"`
}

// Load reads an optional .env file from the working directory, then parses
// the environment.
func Load(dotenv ...string) (Config, error) {
	if err := godotenv.Load(dotenv...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load dotenv: %w", err)
	}
	return Parse()
}

// Parse reads the environment without touching .env files.
func Parse() (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: Prefix}); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.Count < 0 {
		return Config{}, fmt.Errorf("parse env: %sCOUNT must not be negative, got %d", Prefix, cfg.Count)
	}
	if _, err := cfg.Level(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Level converts LogLevel to a slog level.
func (c Config) Level() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.TrimSpace(c.LogLevel))); err != nil {
		return 0, fmt.Errorf("%sLOG_LEVEL: %w", Prefix, err)
	}
	return lvl, nil
}
