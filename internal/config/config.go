// Package config loads dinograph settings from the environment.
//
// Every setting can be overridden by the matching CLI flag; the environment
// only supplies defaults.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds environment-provided defaults.
type Config struct {
	// DataPath is the record document to load. Empty selects the embedded document.
	DataPath string `env:"DINOGRAPH_DATA"`

	// Seed seeds the random source. Zero means pick a fresh seed per run.
	Seed int64 `env:"DINOGRAPH_SEED" envDefault:"0"`

	// Format is the default output format.
	Format string `env:"DINOGRAPH_FORMAT" envDefault:"text"`

	// ImageBase is the URL prefix for tile images.
	ImageBase string `env:"DINOGRAPH_IMAGE_BASE" envDefault:"/images"`
}

// Load parses the process environment.
func Load() (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadFrom parses the given variables instead of the process environment.
func LoadFrom(environ map[string]string) (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{Environment: environ}); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}
