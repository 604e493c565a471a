// Copyright 2026 The Rayliner Authors
// SPDX-License-Identifier: Apache-2.0

// Package config provides configuration loading for the rayliner
// client binaries.
//
// Configuration is loaded from a single YAML file specified by:
//   - RAYLINER_CONFIG environment variable, or
//   - --config flag passed to the command
//
// When neither is given, built-in defaults apply. Environment
// variables never override file values — a loaded file is the single
// source of truth, which keeps configuration deterministic and easy
// to reason about when debugging against different booking servers.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the client configuration shared by rayliner and
// rayliner-admin.
type Config struct {
	// Server configures the booking server connection.
	Server ServerConfig `yaml:"server"`

	// Paths configures where the client keeps local state.
	Paths PathsConfig `yaml:"paths"`
}

// ServerConfig configures the booking server connection.
type ServerConfig struct {
	// URL is the base URL of the booking server's REST API,
	// including the API prefix (e.g., "http://localhost:8081/api").
	URL string `yaml:"url"`

	// RequestTimeout bounds each HTTP request. Zero means the
	// default of 15s.
	RequestTimeout time.Duration `yaml:"request_timeout"`
}

// PathsConfig configures local state locations.
type PathsConfig struct {
	// State is the directory holding session files and exported
	// tickets. The user and admin session files live here under
	// independent names.
	State string `yaml:"state"`
}

// Default returns the built-in configuration: a local development
// booking server and a per-user state directory.
func Default() *Config {
	homeDir, _ := os.UserHomeDir()
	return &Config{
		Server: ServerConfig{
			URL:            "http://localhost:8081/api",
			RequestTimeout: 15 * time.Second,
		},
		Paths: PathsConfig{
			State: filepath.Join(homeDir, ".local", "state", "rayliner"),
		},
	}
}

// Load loads configuration from the path given by the --config flag
// value, falling back to the RAYLINER_CONFIG environment variable,
// falling back to defaults. An explicitly named file that cannot be
// read or parsed is an error — misconfiguration should fail loud, not
// silently revert to defaults.
func Load(flagPath string) (*Config, error) {
	path := flagPath
	if path == "" {
		path = os.Getenv("RAYLINER_CONFIG")
	}
	if path == "" {
		return Default(), nil
	}
	return LoadFile(path)
}

// LoadFile loads configuration from a specific file path. Fields
// absent from the file keep their default values.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: reading %s: %w", path, err)
	}

	configuration := Default()
	if err := yaml.Unmarshal(data, configuration); err != nil {
		return nil, fmt.Errorf("config: parsing %s: %w", path, err)
	}

	if err := configuration.Validate(); err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	return configuration, nil
}

// Validate checks the configuration for values that cannot work.
func (c *Config) Validate() error {
	if c.Server.URL == "" {
		return fmt.Errorf("server.url must not be empty")
	}
	if c.Server.RequestTimeout < 0 {
		return fmt.Errorf("server.request_timeout must not be negative")
	}
	if c.Paths.State == "" {
		return fmt.Errorf("paths.state must not be empty")
	}
	return nil
}

// Timeout returns the request timeout, substituting the default for a
// zero value.
func (c *Config) Timeout() time.Duration {
	if c.Server.RequestTimeout == 0 {
		return 15 * time.Second
	}
	return c.Server.RequestTimeout
}
