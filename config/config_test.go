// Copyright (c) 2026 The Nanocube Authors
// SPDX-License-Identifier: MIT

package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if len(cfg.Levels) != 2 || cfg.LogLevel != "info" {
		t.Fatalf("Default() = %+v, unexpected", cfg)
	}
}

func TestLoad_NoPathUsesDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") error: %v", err)
	}
	if cfg.LogLevel != "info" {
		t.Fatalf("expected default log level, got %q", cfg.LogLevel)
	}
}

func TestLoad_FromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nanocube.yaml")
	contents := "levels: [3, 4]\nlog_level: debug\n"
	if err := os.WriteFile(path, []byte(contents), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load(%q) error: %v", path, err)
	}
	if len(cfg.Levels) != 2 || cfg.Levels[0] != 3 || cfg.Levels[1] != 4 {
		t.Fatalf("expected levels [3 4], got %v", cfg.Levels)
	}
	if cfg.LogLevel != "debug" {
		t.Fatalf("expected log_level debug, got %q", cfg.LogLevel)
	}
}

func TestLoad_MissingFileErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Fatalf("expected an error for a missing config file")
	}
}

func TestLoad_NegativeDepthRejected(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nanocube.yaml")
	if err := os.WriteFile(path, []byte("levels: [-1]\n"), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Fatalf("expected an error for a negative dimension depth")
	}
}
