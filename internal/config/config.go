// Package config loads the ithscan CLI configuration from YAML, falling
// back to defaults when no file is present.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the full CLI configuration.
type Config struct {
	Analysis Analysis `yaml:"analysis"`
	Rolling  Rolling  `yaml:"rolling"`
}

// Analysis configures the single-pass ITH analysis.
type Analysis struct {
	Hurdle         float64 `yaml:"hurdle"`           // fractional threshold, also the fixed TMAEG value
	TMAEGMethod    string  `yaml:"tmaeg_method"`     // "fixed" or "mdd"
	PeriodsPerYear float64 `yaml:"periods_per_year"` // 252 daily equities, 365 crypto
	MinEpochs      int     `yaml:"min_epochs"`       // qualification: minimum bull epochs
	MaxIntervalsCV float64 `yaml:"max_intervals_cv"` // qualification: regularity ceiling
}

// Rolling configures windowed feature generation.
type Rolling struct {
	Lookback int `yaml:"lookback"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Analysis: Analysis{
			Hurdle:         0.05,
			TMAEGMethod:    "fixed",
			PeriodsPerYear: 365,
			MinEpochs:      3,
			MaxIntervalsCV: 1.0,
		},
		Rolling: Rolling{
			Lookback: 50,
		},
	}
}

// Load reads the config at path. A missing file yields Default; any other
// read, parse, or validation failure is an error.
func Load(path string) (Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("validate config: %w", err)
	}
	return cfg, nil
}

// Validate checks field ranges.
func (c Config) Validate() error {
	if c.Analysis.Hurdle <= 0 {
		return fmt.Errorf("analysis.hurdle must be positive, got %v", c.Analysis.Hurdle)
	}
	switch c.Analysis.TMAEGMethod {
	case "fixed", "mdd":
	default:
		return fmt.Errorf("analysis.tmaeg_method must be fixed or mdd, got %q", c.Analysis.TMAEGMethod)
	}
	if c.Analysis.PeriodsPerYear <= 0 {
		return fmt.Errorf("analysis.periods_per_year must be positive, got %v", c.Analysis.PeriodsPerYear)
	}
	if c.Analysis.MinEpochs < 0 {
		return fmt.Errorf("analysis.min_epochs must be non-negative, got %d", c.Analysis.MinEpochs)
	}
	if c.Analysis.MaxIntervalsCV <= 0 {
		return fmt.Errorf("analysis.max_intervals_cv must be positive, got %v", c.Analysis.MaxIntervalsCV)
	}
	if c.Rolling.Lookback < 1 {
		return fmt.Errorf("rolling.lookback must be positive, got %d", c.Rolling.Lookback)
	}
	return nil
}
