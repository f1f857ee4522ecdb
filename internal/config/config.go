// Package config loads costline preferences from a TOML file with
// environment-variable overrides. Missing files fall back to defaults so
// the CLI works out of the box.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds all costline configuration.
type Config struct {
	General GeneralConfig `toml:"general"`
	Storage StorageConfig `toml:"storage"`
}

// GeneralConfig holds general preferences.
type GeneralConfig struct {
	// DefaultCreatedBy is used as the version author when none is given.
	DefaultCreatedBy string `toml:"default_created_by,omitempty"`
	// Color controls ANSI output: "auto", "always" or "never".
	Color string `toml:"color"`
}

// StorageConfig holds database settings.
type StorageConfig struct {
	// DBPath overrides the default database location.
	DBPath string `toml:"db_path,omitempty"`
	// RetryAttempts bounds retries of transient SQLite failures.
	RetryAttempts int `toml:"retry_attempts"`
	// RetryBackoffMs is the fixed sleep between retries.
	RetryBackoffMs int `toml:"retry_backoff_ms"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		General: GeneralConfig{Color: "auto"},
		Storage: StorageConfig{RetryAttempts: 3, RetryBackoffMs: 50},
	}
}

// ConfigDir returns the XDG-compliant config directory.
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "costline")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "costline")
}

// ConfigPath returns the full path to the config file.
func ConfigPath() string {
	return filepath.Join(ConfigDir(), "config.toml")
}

// Load reads the config file, returning defaults if it doesn't exist.
func Load() (Config, error) {
	return loadFrom(ConfigPath())
}

func loadFrom(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}
	return cfg, nil
}

// Save writes the config to disk.
func Save(cfg Config) error {
	dir := ConfigDir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(ConfigPath(), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer f.Close()

	enc := toml.NewEncoder(f)
	return enc.Encode(cfg)
}

// ResolveDBPath picks the database location: the COSTLINE_DB environment
// variable wins, then the config file, then ~/.costline/costline.db.
func (c Config) ResolveDBPath() (string, error) {
	if env := os.Getenv("COSTLINE_DB"); env != "" {
		return env, nil
	}
	if c.Storage.DBPath != "" {
		return c.Storage.DBPath, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("finding home directory: %w", err)
	}
	return filepath.Join(home, ".costline", "costline.db"), nil
}
