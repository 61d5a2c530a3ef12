// Package config loads server configuration from an optional YAML file with
// environment-variable overrides.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the server settings.
type Config struct {
	// ListenAddr is the HTTP listen address (default ":8080").
	ListenAddr string `yaml:"listen_addr"`

	// DBPath is the SQLite database path (default "./data/settlewise.db").
	DBPath string `yaml:"db_path"`

	// LogLevel is one of debug, info, warn, error (default "info").
	LogLevel string `yaml:"log_level"`
}

// Load reads the YAML file at path (skipped if empty), then applies env
// overrides (LISTEN_ADDR, DB_PATH, LOG_LEVEL) on top of the defaults.
func Load(path string) (*Config, error) {
	cfg := &Config{
		ListenAddr: ":8080",
		DBPath:     "./data/settlewise.db",
		LogLevel:   "info",
	}

	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(raw, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	}

	if v := os.Getenv("LISTEN_ADDR"); v != "" {
		cfg.ListenAddr = v
	}
	if v := os.Getenv("DB_PATH"); v != "" {
		cfg.DBPath = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	return cfg, nil
}
