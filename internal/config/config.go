package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/example/yms/internal/core/category"
)

// Version is the config file format written by SaveConfig.
const Version = "1"

// Defaults
const (
	DefaultMaxBatch  = 100
	DefaultLogLevel  = "warn"
	DefaultLogFormat = "console"
	dirName          = ".yms"
	fileName         = "config.json"
)

// Config represents the flat yms configuration
type Config struct {
	Version           string `json:"version"`
	DBPath            string `json:"db_path,omitempty"`             // Defaults to ~/.yms/yms.db
	DefaultDigitWidth int    `json:"default_digit_width,omitempty"` // Suffix width for categories that omit one
	MaxBatch          int    `json:"max_batch,omitempty"`           // Largest batch one request may ask for
	LogLevel          string `json:"log_level,omitempty"`
	LogFormat         string `json:"log_format,omitempty"` // "console" or "json"
	Operator          string `json:"operator,omitempty"`   // Recorded as the actor on issued batches
}

// Default returns a config with every field at its default.
func Default() *Config {
	cfg := &Config{Version: Version}
	cfg.ApplyDefaults()
	return cfg
}

// ApplyDefaults fills unset fields.
func (c *Config) ApplyDefaults() {
	if c.Version == "" {
		c.Version = Version
	}
	if c.DefaultDigitWidth == 0 {
		c.DefaultDigitWidth = category.DefaultDigitWidth
	}
	if c.MaxBatch == 0 {
		c.MaxBatch = DefaultMaxBatch
	}
	if c.LogLevel == "" {
		c.LogLevel = DefaultLogLevel
	}
	if c.LogFormat == "" {
		c.LogFormat = DefaultLogFormat
	}
}

// Validate rejects values no command could work with.
func (c *Config) Validate() error {
	if c.MaxBatch < 1 {
		return fmt.Errorf("max_batch must be at least 1, got %d", c.MaxBatch)
	}
	if c.DefaultDigitWidth < 1 {
		return fmt.Errorf("default_digit_width must be at least 1, got %d", c.DefaultDigitWidth)
	}
	switch c.LogFormat {
	case "console", "json":
	default:
		return fmt.Errorf("log_format must be console or json, got %q", c.LogFormat)
	}
	return nil
}

// LockPath returns the lock file that sits next to the database.
func LockPath(dbPath string) string {
	return filepath.Join(filepath.Dir(dbPath), "yms.lock")
}

// LoadConfig reads .yms/config.json from the specified directory.
// Returns error if no config found - caller should handle accordingly.
func LoadConfig(dir string) (*Config, error) {
	path := filepath.Join(dir, dirName, fileName)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return &cfg, nil
}

// Resolve loads the config in dir, falling back to defaults when the file
// does not exist.
func Resolve(dir string) (*Config, error) {
	cfg, err := LoadConfig(dir)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return nil, err
	}

	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// SaveConfig writes config.json to directory
func SaveConfig(dir string, cfg *Config) error {
	ymsDir := filepath.Join(dir, dirName)
	if err := os.MkdirAll(ymsDir, 0755); err != nil {
		return fmt.Errorf("failed to create .yms dir: %w", err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	path := filepath.Join(ymsDir, fileName)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// Dir returns the .yms directory under base.
func Dir(base string) string {
	return filepath.Join(base, dirName)
}
