// Package config carries the demonstration CLI's settings: defaults in
// code, overlaid by an optional TOML file, overlaid by the environment.
// Configuration is the orchestration layer's concern alone; the core
// packages never read any of it.
package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"

	"github.com/veradun/demiurge/internal/cosmology"
	"github.com/veradun/demiurge/internal/cosmos"
	"github.com/veradun/demiurge/internal/fault"
)

// Config is the demonstration CLI's configuration.
type Config struct {
	LogLevel      string   `toml:"log_level" env:"DEMIURGE_LOG_LEVEL"`
	ChroniclePath string   `toml:"chronicle" env:"DEMIURGE_CHRONICLE"`
	ConstantCount int      `toml:"constants" env:"DEMIURGE_CONSTANTS"`
	LifespanDays  int64    `toml:"lifespan_days" env:"DEMIURGE_LIFESPAN_DAYS"`
	EntropyLevel  float64  `toml:"entropy" env:"DEMIURGE_ENTROPY"`
	MaxEntropy    float64  `toml:"max_entropy" env:"DEMIURGE_MAX_ENTROPY"`
	Inhabitants   []string `toml:"inhabitants" env:"DEMIURGE_INHABITANTS" envSeparator:","`
}

func defaults() Config {
	return Config{
		LogLevel:      "info",
		ChroniclePath: "data/demiurge.db",
		ConstantCount: cosmology.ConstantCount,
		LifespanDays:  cosmology.LifespanDays,
		EntropyLevel:  cosmology.GenesisEntropy,
		MaxEntropy:    cosmology.EntropyCeiling,
		Inhabitants:   []string{"Human1", "Human2"},
	}
}

// Load builds the configuration: defaults, then the TOML file at path when
// path is non-empty, then the environment.
func Load(path string) (Config, error) {
	cfg := defaults()
	if path != "" {
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			return Config{}, fmt.Errorf("config file %s: %w", path, err)
		}
	}
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("config environment: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	// The genesis numbers are validated again by world creation; the one
	// rule that is purely the CLI's is that the demonstration needs someone
	// to pray.
	if len(c.Inhabitants) == 0 {
		return fault.New(fault.InvalidArgument, "no inhabitants configured")
	}
	return nil
}

// Genesis maps the configuration to world creation parameters.
func (c Config) Genesis() cosmos.Genesis {
	return cosmos.Genesis{
		ConstantCount: c.ConstantCount,
		LifespanDays:  c.LifespanDays,
		EntropyLevel:  c.EntropyLevel,
		MaxEntropy:    c.MaxEntropy,
	}
}

// Level converts LogLevel to slog's scale; unknown names mean info.
func (c Config) Level() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
