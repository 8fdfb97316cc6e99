// Package config handles the persistent CLI configuration stored under the
// user's home directory.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Backend modes
const (
	// BackendModeLive talks to the query backend over HTTP.
	BackendModeLive = "live"
	// BackendModeCanned serves deterministic fixtures, for offline use.
	BackendModeCanned = "canned"
)

// DefaultBackendURL is the query backend used when none is configured.
const DefaultBackendURL = "http://localhost:8000"

// Config represents the flat sitedesk configuration
type Config struct {
	Version       string `json:"version"`
	DatabasePath  string `json:"database_path,omitempty"`   // override; default ~/.sitedesk/sitedesk.db
	BackendMode   string `json:"backend_mode"`              // "live" or "canned"
	BackendURL    string `json:"backend_url,omitempty"`     // used in live mode
	DefaultSiteID string `json:"default_site_id,omitempty"` // assumed when --site is omitted
}

// Default returns the configuration used when no config file exists.
func Default() *Config {
	return &Config{
		Version:     "1.0",
		BackendMode: BackendModeLive,
		BackendURL:  DefaultBackendURL,
	}
}

// Dir returns the sitedesk configuration directory.
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".sitedesk"), nil
}

// Load reads the configuration file. A missing file yields the defaults,
// any other failure is an error.
func Load() (*Config, error) {
	dir, err := Dir()
	if err != nil {
		return nil, err
	}
	return LoadFrom(dir)
}

// LoadFrom reads config.json from the given directory.
func LoadFrom(dir string) (*Config, error) {
	path := filepath.Join(dir, "config.json")
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if cfg.BackendMode == "" {
		cfg.BackendMode = BackendModeLive
	}
	if cfg.BackendURL == "" {
		cfg.BackendURL = DefaultBackendURL
	}

	return &cfg, nil
}

// Save writes the configuration to the default directory.
func Save(cfg *Config) error {
	dir, err := Dir()
	if err != nil {
		return err
	}
	return SaveTo(dir, cfg)
}

// SaveTo writes config.json to the given directory.
func SaveTo(dir string, cfg *Config) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config dir: %w", err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	path := filepath.Join(dir, "config.json")
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}
