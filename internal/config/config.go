// Package config loads CLI defaults from an optional YAML file.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config carries the CLI's tunable defaults.
type Config struct {
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level"`
	// DefaultOutput is the stego path used when none is given on the
	// command line.
	DefaultOutput string `yaml:"default_output"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		LogLevel:      "info",
		DefaultOutput: "stego.png",
	}
}

// Load reads a YAML config from path. A missing file is not an error and
// yields Default(); empty fields fall back to their defaults.
func Load(path string) (Config, error) {
	cfg := Default()

	raw, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, err
	}

	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return Default(), fmt.Errorf("parsing %q: %w", path, err)
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = Default().LogLevel
	}
	if cfg.DefaultOutput == "" {
		cfg.DefaultOutput = Default().DefaultOutput
	}
	return cfg, nil
}
