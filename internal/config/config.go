package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the tunable settings read from config.yaml. Every field
// has a working default, so a missing config file is not an error.
type Config struct {
	// PlansDir overrides where plan documents are written.
	PlansDir string `yaml:"plans_dir"`

	// Database overrides the quadrant database path.
	Database string `yaml:"database"`

	Logging LoggingConfig `yaml:"logging"`
}

// LoggingConfig controls the structured log output. When File is empty
// logs go to stderr only; otherwise they are also written to the file
// with size-based rotation.
type LoggingConfig struct {
	Level      string `yaml:"level"`
	File       string `yaml:"file"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAgeDays int    `yaml:"max_age_days"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:      "info",
			MaxSizeMB:  10,
			MaxBackups: 3,
			MaxAgeDays: 30,
		},
	}
}

// Load reads the config file at path, layering it over the defaults. A
// missing file yields the defaults unchanged.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return cfg, nil
}

// ApplyTo overlays the config's path overrides onto paths.
func (c *Config) ApplyTo(paths *Paths) {
	if c.PlansDir != "" {
		paths.Plans = c.PlansDir
	}
	if c.Database != "" {
		paths.Database = c.Database
	}
}
