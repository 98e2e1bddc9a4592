// Package config loads the YAML configuration file and supplies defaults
// when no file is present.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the full runtime configuration.
type Config struct {
	// DatabasePath is the SQLite file for finished workouts.
	DatabasePath string `yaml:"database_path"`
	// StashDir holds the in-progress workout slot.
	StashDir string `yaml:"stash_dir"`
	// ListenAddr is the HTTP API bind address.
	ListenAddr string `yaml:"listen_addr"`
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level"`
}

// Default returns the configuration used when no file overrides it.
func Default() Config {
	return Config{
		DatabasePath: "repcore.db",
		StashDir:     ".repcore",
		ListenAddr:   ":8000",
		LogLevel:     "info",
	}
}

// Load reads the config file at path, layering it over the defaults.
// A missing file is not an error: defaults apply. An unreadable or
// malformed file is.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) validate() error {
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log_level %q", c.LogLevel)
	}
	if c.DatabasePath == "" {
		return fmt.Errorf("database_path must not be empty")
	}
	if c.StashDir == "" {
		return fmt.Errorf("stash_dir must not be empty")
	}
	return nil
}

// SlogLevel maps the configured level onto slog.
func (c Config) SlogLevel() slog.Level {
	switch c.LogLevel {
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
