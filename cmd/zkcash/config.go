// config.go - Configuration management for the pool operator CLI.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"zkcash/internal/account"
)

// Config represents the CLI configuration.
type Config struct {
	// StorePath is the LevelDB directory holding pool state.
	StorePath string `json:"store_path"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `json:"log_level"`

	// AdminKey, when set (hex), pins who may initialize the pool.
	AdminKey string `json:"admin_key,omitempty"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		StorePath: "zkcash-state",
		LogLevel:  "info",
	}
}

// LoadConfig loads configuration from a JSON file, falling back to defaults
// when the file does not exist.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// SaveConfig writes the configuration to a JSON file.
func (c *Config) SaveConfig(path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create config directory: %w", err)
		}
	}
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// Validate checks the configuration for consistency.
func (c *Config) Validate() error {
	if c.StorePath == "" {
		return fmt.Errorf("store_path must not be empty")
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log level %q", c.LogLevel)
	}
	if c.AdminKey != "" {
		if _, err := account.AddressFromHex(c.AdminKey); err != nil {
			return fmt.Errorf("admin_key: %w", err)
		}
	}
	return nil
}

// Admin returns the pinned admin address, or nil when unrestricted.
func (c *Config) Admin() (*account.Address, error) {
	if c.AdminKey == "" {
		return nil, nil
	}
	addr, err := account.AddressFromHex(c.AdminKey)
	if err != nil {
		return nil, err
	}
	return &addr, nil
}
