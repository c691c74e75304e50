// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides configuration loading and management for flagrun.
//
// Configuration is TOML with sensible defaults and environment variable
// overrides. Locations, in order of precedence:
//   - FLAGRUN_* environment variables
//   - ~/.flagrun/config.toml
//   - Built-in defaults
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/BurntSushi/toml"
)

// =============================================================================
// CONFIG STRUCTURES
// =============================================================================

// Config represents the complete flagrun configuration.
type Config struct {
	// Shell overrides the platform shell used when executing commands.
	// Empty means sh on Unix and cmd on Windows.
	Shell string `toml:"shell"`

	// Output configures where assembled commands go by default.
	Output OutputConfig `toml:"output"`

	// History configures the command history store.
	History HistoryConfig `toml:"history"`

	// UI configures the picker's appearance.
	UI UIConfig `toml:"ui"`
}

// OutputConfig contains output sink configuration.
type OutputConfig struct {
	// DefaultMode is what Enter does in the picker: "print", "clipboard"
	// or "execute".
	DefaultMode string `toml:"default_mode"`
}

// HistoryConfig contains command history configuration.
type HistoryConfig struct {
	// Enabled turns recording of emitted commands on or off.
	Enabled bool `toml:"enabled"`
	// Path is the SQLite database location (empty = ~/.flagrun/history.db).
	Path string `toml:"path"`
}

// UIConfig contains picker appearance configuration.
type UIConfig struct {
	// NoColor disables all styling, equivalent to the NO_COLOR environment
	// variable.
	NoColor bool `toml:"no_color"`
	// ShowDescriptions renders option descriptions next to the flags.
	ShowDescriptions bool `toml:"show_descriptions"`
}

// =============================================================================
// DEFAULTS AND PATHS
// =============================================================================

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Output: OutputConfig{
			DefaultMode: "print",
		},
		History: HistoryConfig{
			Enabled: true,
		},
		UI: UIConfig{
			ShowDescriptions: true,
		},
	}
}

// Dir returns the flagrun configuration directory (~/.flagrun).
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return filepath.Join(home, ".flagrun"), nil
}

// Path returns the configuration file path (~/.flagrun/config.toml).
func Path() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// HistoryPath returns the configured history database path, falling back to
// ~/.flagrun/history.db.
func (c *Config) HistoryPath() (string, error) {
	if c.History.Path != "" {
		return c.History.Path, nil
	}
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "history.db"), nil
}

// =============================================================================
// LOADING
// =============================================================================

// Load reads the configuration file if present, applies environment
// overrides and validates the result. A missing file is not an error; the
// defaults are used.
func Load() (*Config, error) {
	cfg := Default()

	path, err := Path()
	if err == nil {
		if _, statErr := os.Stat(path); statErr == nil {
			if err := LoadTOML(cfg, path); err != nil {
				return nil, fmt.Errorf("load config: %w", err)
			}
		}
	}

	cfg.ApplyEnvOverrides()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// LoadTOML decodes a TOML configuration file into cfg.
func LoadTOML(cfg *Config, path string) error {
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return err
	}
	return nil
}

// LoadFromPath loads a specific configuration file, for tests and the
// --config escape hatch.
func LoadFromPath(path string) (*Config, error) {
	cfg := Default()
	if err := LoadTOML(cfg, path); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	cfg.ApplyEnvOverrides()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// ApplyEnvOverrides applies FLAGRUN_* environment variables over the loaded
// values. Environment always wins over the file.
func (c *Config) ApplyEnvOverrides() {
	if shell := os.Getenv("FLAGRUN_SHELL"); shell != "" {
		c.Shell = shell
	}
	if mode := os.Getenv("FLAGRUN_OUTPUT_MODE"); mode != "" {
		c.Output.DefaultMode = mode
	}
	if hist := os.Getenv("FLAGRUN_HISTORY"); hist != "" {
		c.History.Enabled = hist == "1" || hist == "true" || hist == "on"
	}
	if path := os.Getenv("FLAGRUN_HISTORY_PATH"); path != "" {
		c.History.Path = path
	}
	// NO_COLOR is the ecosystem-wide convention; see https://no-color.org/.
	if os.Getenv("NO_COLOR") != "" {
		c.UI.NoColor = true
	}
}

// Validate checks the configuration for values that would misbehave later.
func (c *Config) Validate() error {
	switch c.Output.DefaultMode {
	case "", "print", "clipboard", "copy", "execute", "exec":
	default:
		return fmt.Errorf("output.default_mode %q is not one of print, clipboard, execute", c.Output.DefaultMode)
	}
	return nil
}

// =============================================================================
// GLOBAL ACCESS
// =============================================================================

var (
	globalConfig     *Config
	globalConfigOnce sync.Once
)

// Global returns the process-wide configuration, loading it on first use.
// Load errors fall back to defaults; startup must not fail because a config
// file has a typo, the picker works fine without one.
func Global() *Config {
	globalConfigOnce.Do(func() {
		cfg, err := Load()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: %v (using defaults)\n", err)
			cfg = Default()
		}
		globalConfig = cfg
	})
	return globalConfig
}
