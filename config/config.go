// SPDX-License-Identifier: MIT
// Package: cliquespec/config
//
// config.go — YAML configuration with environment overrides.

package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/cliquespec/search"
)

// ErrInvalidConfig indicates a configuration value out of range.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is the full runtime configuration.
type Config struct {
	Search  search.Config `yaml:"search"`
	Engine  EngineConfig  `yaml:"engine"`
	Log     LogConfig     `yaml:"log"`
	Archive ArchiveConfig `yaml:"archive"`
	Metrics MetricsConfig `yaml:"metrics"`
}

// EngineConfig tunes invariant.Engine.
type EngineConfig struct {
	// CatalogLimit caps the blown-up catalog size (0 = unlimited).
	CatalogLimit int `yaml:"catalog_limit"`
}

// LogConfig selects the slog handler.
type LogConfig struct {
	Level  string `yaml:"level"`  // debug|info|warn|error
	Format string `yaml:"format"` // text|json

	// File, when set, receives the log through a rotating writer.
	File       string `yaml:"file"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAgeDays int    `yaml:"max_age_days"`
}

// ArchiveConfig locates the counterexample archive. Empty Dir disables it.
type ArchiveConfig struct {
	Dir string `yaml:"dir"`
}

// MetricsConfig exposes /metrics. Empty Addr disables the listener.
type MetricsConfig struct {
	Addr string `yaml:"addr"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Search: search.DefaultConfig(),
		Log: LogConfig{
			Level:      "info",
			Format:     "text",
			MaxSizeMB:  100,
			MaxBackups: 3,
			MaxAgeDays: 28,
		},
	}
}

// Load returns Default overlaid with the YAML file at path (skipped when path
// is empty) and the environment, then validated.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("config.Load: %w", err)
		}
		if err = decode(bytes.NewReader(data), &cfg); err != nil {
			return cfg, fmt.Errorf("config.Load %s: %w", path, err)
		}
	}
	if err := ApplyEnv(&cfg, os.LookupEnv); err != nil {
		return cfg, fmt.Errorf("config.Load: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config.Load: %w", err)
	}

	return cfg, nil
}

func decode(r io.Reader, cfg *Config) error {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return err
	}

	return nil
}

// ApplyEnv overrides cfg from CLIQUESPEC_* variables read through lookup.
func ApplyEnv(cfg *Config, lookup func(string) (string, bool)) error {
	ints := []struct {
		key string
		dst *int
	}{
		{"CLIQUESPEC_WORKERS", &cfg.Search.Workers},
		{"CLIQUESPEC_CATALOG_LIMIT", &cfg.Engine.CatalogLimit},
	}
	for _, e := range ints {
		if v, ok := lookup(e.key); ok {
			n, err := strconv.Atoi(v)
			if err != nil {
				return fmt.Errorf("%s=%q: %w", e.key, v, ErrInvalidConfig)
			}
			*e.dst = n
		}
	}

	int64s := []struct {
		key string
		dst *int64
	}{
		{"CLIQUESPEC_SEED", &cfg.Search.Seed},
		{"CLIQUESPEC_MAX_TRIALS", &cfg.Search.MaxTrials},
	}
	for _, e := range int64s {
		if v, ok := lookup(e.key); ok {
			n, err := strconv.ParseInt(v, 10, 64)
			if err != nil {
				return fmt.Errorf("%s=%q: %w", e.key, v, ErrInvalidConfig)
			}
			*e.dst = n
		}
	}

	if v, ok := lookup("CLIQUESPEC_TIMEOUT"); ok {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("CLIQUESPEC_TIMEOUT=%q: %w", v, ErrInvalidConfig)
		}
		cfg.Search.Timeout = d
	}

	strs := []struct {
		key string
		dst *string
	}{
		{"CLIQUESPEC_LOG_LEVEL", &cfg.Log.Level},
		{"CLIQUESPEC_LOG_FORMAT", &cfg.Log.Format},
		{"CLIQUESPEC_LOG_FILE", &cfg.Log.File},
		{"CLIQUESPEC_ARCHIVE_DIR", &cfg.Archive.Dir},
		{"CLIQUESPEC_METRICS_ADDR", &cfg.Metrics.Addr},
	}
	for _, e := range strs {
		if v, ok := lookup(e.key); ok {
			*e.dst = v
		}
	}

	return nil
}

// Validate checks every section.
func (c Config) Validate() error {
	if err := c.Search.Validate(); err != nil {
		return fmt.Errorf("%w: search: %w", ErrInvalidConfig, err)
	}
	if c.Engine.CatalogLimit < 0 {
		return fmt.Errorf("engine.catalog_limit=%d < 0: %w", c.Engine.CatalogLimit, ErrInvalidConfig)
	}
	if _, err := ParseLevel(c.Log.Level); err != nil {
		return err
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("log.format=%q: want text or json: %w", c.Log.Format, ErrInvalidConfig)
	}
	if c.Log.MaxSizeMB < 0 || c.Log.MaxBackups < 0 || c.Log.MaxAgeDays < 0 {
		return fmt.Errorf("log rotation limits must be >= 0: %w", ErrInvalidConfig)
	}

	return nil
}

// ParseLevel maps a level name to its slog.Level.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}

	return slog.LevelInfo, fmt.Errorf("log.level=%q: %w", s, ErrInvalidConfig)
}
