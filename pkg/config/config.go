// Package config loads the itemd service configuration from a file and
// the environment.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/getitemd/itemd/pkg/store"
)

// Common errors for configuration loading.
var (
	ErrFileNotFound = errors.New("configuration file not found")
	ErrInvalidJSON  = errors.New("invalid JSON syntax")
	ErrInvalidYAML  = errors.New("invalid YAML syntax")
	ErrEmptyFile    = errors.New("configuration file is empty")
)

// Environment variable names.
const (
	EnvPort      = "ITEMD_PORT"
	EnvDBBackend = "ITEMD_DB_BACKEND"
	EnvDBDSN     = "ITEMD_DB_DSN"
	EnvLogLevel  = "ITEMD_LOG_LEVEL"
	EnvLogFormat = "ITEMD_LOG_FORMAT"
)

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `json:"level,omitempty" yaml:"level,omitempty"`
	Format string `json:"format,omitempty" yaml:"format,omitempty"`
}

// Config is the top-level service configuration.
type Config struct {
	// Port is the HTTP listen port.
	Port int `json:"port,omitempty" yaml:"port,omitempty"`

	Log   LogConfig    `json:"log,omitempty" yaml:"log,omitempty"`
	Store store.Config `json:"store,omitempty" yaml:"store,omitempty"`
}

// Default returns the built-in defaults: port 8080, text logging at info,
// embedded SQLite storage.
func Default() Config {
	return Config{
		Port: 8080,
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
		Store: store.DefaultConfig(),
	}
}

// Load builds the effective configuration: defaults, then the file at path
// (skipped when path is empty), then environment overrides.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		if err := loadFile(path, &cfg); err != nil {
			return cfg, err
		}
	}
	ApplyEnv(&cfg)
	return cfg, nil
}

// loadFile reads a YAML or JSON configuration file into cfg. The format is
// detected from the file extension (.yaml/.yml for YAML, otherwise JSON).
func loadFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return fmt.Errorf("read config file: %w", err)
	}
	if len(strings.TrimSpace(string(data))) == 0 {
		return fmt.Errorf("%w: %s", ErrEmptyFile, path)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidYAML, err)
		}
	default:
		if err := json.Unmarshal(data, cfg); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidJSON, err)
		}
	}
	return nil
}

// ApplyEnv overrides cfg with values from the environment. Only variables
// that are set take effect.
func ApplyEnv(cfg *Config) {
	if v := os.Getenv(EnvPort); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Port = port
		}
	}
	if v := os.Getenv(EnvDBBackend); v != "" {
		cfg.Store.Backend = store.Backend(v)
	}
	if v := os.Getenv(EnvDBDSN); v != "" {
		cfg.Store.DSN = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv(EnvLogFormat); v != "" {
		cfg.Log.Format = v
	}
}
