// Package config loads evaluation settings from a YAML file.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	nereval "github.com/entext/go-nereval"
)

// Config holds evaluation parameters. CLI flags override file values.
type Config struct {
	StandardDir string `yaml:"standard_dir"`
	TestDir     string `yaml:"test_dir"`
	Mode        string `yaml:"mode"`
	LocOrg      bool   `yaml:"locorg"`
	ReportsDir  string `yaml:"reports_dir"`
}

// Default returns the default evaluation configuration.
func Default() Config {
	return Config{
		Mode:   string(nereval.ModeRegular),
		LocOrg: true,
	}
}

// Load reads a YAML config file over the defaults.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config %s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks the settings that would otherwise fail deep inside the
// evaluation run.
func (c Config) Validate() error {
	switch nereval.Mode(c.Mode) {
	case nereval.ModeRegular, nereval.ModeSimple:
	default:
		return fmt.Errorf("%w: %q", nereval.ErrInvalidMode, c.Mode)
	}

	if c.StandardDir == "" {
		return fmt.Errorf("standard directory is required")
	}
	if c.TestDir == "" {
		return fmt.Errorf("test directory is required")
	}
	return nil
}
