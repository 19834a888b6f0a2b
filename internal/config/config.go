// Package config loads secondsole configuration from an optional YAML file
// with environment-variable overrides.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds all secondsole configuration.
type Config struct {
	Store   StoreConfig   `yaml:"store"`
	Catalog CatalogConfig `yaml:"catalog"`
	Logging LoggingConfig `yaml:"logging"`
}

// StoreConfig configures the persistent record backing.
type StoreConfig struct {
	// Path to the SQLite database holding the record.
	Path string `yaml:"path"`
	// Key the record is stored under. Leave empty for the default.
	Key string `yaml:"key"`
}

// CatalogConfig configures the inventory source. An empty Path uses the
// built-in seeded inventory.
type CatalogConfig struct {
	Path  string `yaml:"path"`
	Watch bool   `yaml:"watch"`
}

// LoggingConfig configures the zap logger.
type LoggingConfig struct {
	Level       string `yaml:"level"` // debug, info, warn, error
	Development bool   `yaml:"development"`
}

// Default returns the configuration used when no config file exists. The
// record lives under the user's home directory.
func Default() Config {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return Config{
		Store: StoreConfig{
			Path: filepath.Join(home, ".secondsole", "sole.db"),
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load reads the config file at path, merged over defaults. A missing file is
// not an error; a malformed one is.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			if !os.IsNotExist(err) {
				return cfg, fmt.Errorf("failed to read config: %w", err)
			}
		} else if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	applyEnvOverrides(&cfg)
	return cfg, nil
}

// applyEnvOverrides lets the environment win over both defaults and file
// values, which is how tests and one-off sessions point at a scratch store.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("SOLE_STORE_PATH"); v != "" {
		cfg.Store.Path = v
	}
	if v := os.Getenv("SOLE_STORE_KEY"); v != "" {
		cfg.Store.Key = v
	}
	if v := os.Getenv("SOLE_CATALOG_PATH"); v != "" {
		cfg.Catalog.Path = v
	}
	if v := os.Getenv("SOLE_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
}
