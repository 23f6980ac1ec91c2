// Copyright (c) 2026 The Nanocube Authors
// SPDX-License-Identifier: MIT

// Package config loads the ambient configuration a nanocube deployment
// needs: per-dimension depth and logging verbosity. Grounded in
// junjiewwang-perf-analysis's viper-backed config loading, adapted from an
// ORM/tracing service config to the much smaller surface a nanocube needs.
package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config is the ambient configuration of a nanocube process: the
// per-dimension maximum depth passed to nanocube.New, and the logging
// verbosity for its EventSink.
type Config struct {
	// Levels gives the maximum depth for each dimension, in order.
	Levels []int `mapstructure:"levels"`
	// LogLevel is a zapcore level name: "debug", "info", "warn", "error".
	LogLevel string `mapstructure:"log_level"`
}

// Default returns the configuration used when no file or environment
// override is present: a two-dimensional cube with depth 2 in each
// dimension, logging at info level.
func Default() Config {
	return Config{Levels: []int{2, 2}, LogLevel: "info"}
}

// Load reads configuration from path (if non-empty) and from environment
// variables prefixed NANOCUBE_ (e.g. NANOCUBE_LOG_LEVEL), falling back to
// Default for anything unset.
func Load(path string) (Config, error) {
	v := viper.New()
	v.SetEnvPrefix("nanocube")
	v.AutomaticEnv()

	def := Default()
	v.SetDefault("levels", def.Levels)
	v.SetDefault("log_level", def.LogLevel)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("config: reading %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: unmarshal: %w", err)
	}
	if len(cfg.Levels) == 0 {
		return Config{}, fmt.Errorf("config: levels must declare at least one dimension")
	}
	for d, l := range cfg.Levels {
		if l < 0 {
			return Config{}, fmt.Errorf("config: dimension %d has negative depth %d", d, l)
		}
	}
	return cfg, nil
}
