// Package config loads user preferences for the twisty tools.
//
// Values come from, in increasing priority: built-in defaults, the JSON
// preferences file, the process environment (optionally seeded from a
// .env file). Command-line flags are applied on top by the CLI.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
)

// Environment variables that override the preferences file.
const (
	EnvAddr         = "TWISTY_ADDR"
	EnvClientOrigin = "TWISTY_CLIENT_ORIGIN"
	EnvLogLevel     = "TWISTY_LOG_LEVEL"
	EnvDefaultSize  = "TWISTY_DEFAULT_SIZE"
)

// Config holds user preferences.
type Config struct {
	DefaultSize    int    `json:"default_size"`
	ScrambleLength int    `json:"scramble_length"`
	BeginnerMode   bool   `json:"beginner_mode"`
	Addr           string `json:"addr"`
	ClientOrigin   string `json:"client_origin"`
	LogLevel       string `json:"log_level"`

	path string
}

// Default returns the built-in preferences.
func Default() Config {
	return Config{
		DefaultSize:    3,
		ScrambleLength: 20,
		BeginnerMode:   true,
		Addr:           ":5175",
		ClientOrigin:   "http://localhost:5173",
		LogLevel:       "info",
	}
}

// DefaultPath returns the default preferences file path.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".twisty", "config.json"), nil
}

// Load reads preferences from path, or from DefaultPath when path is
// empty. A missing file yields the defaults. Environment overrides are
// applied afterwards; a .env file in the working directory is read first
// if present.
func Load(path string) (Config, error) {
	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return Config{}, err
		}
		path = p
	}

	cfg := Default()
	cfg.path = path

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return Config{}, fmt.Errorf("failed to read config: %w", err)
	default:
		if err := json.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	}

	_ = godotenv.Load()
	if err := cfg.applyEnv(); err != nil {
		return Config{}, err
	}
	return cfg, cfg.Validate()
}

func (c *Config) applyEnv() error {
	if v := os.Getenv(EnvAddr); v != "" {
		c.Addr = v
	}
	if v := os.Getenv(EnvClientOrigin); v != "" {
		c.ClientOrigin = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.LogLevel = v
	}
	if v := os.Getenv(EnvDefaultSize); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvDefaultSize, err)
		}
		c.DefaultSize = n
	}
	return nil
}

// Validate checks the values the engine cannot accept.
func (c Config) Validate() error {
	if c.DefaultSize < 2 {
		return fmt.Errorf("default_size must be at least 2, got %d", c.DefaultSize)
	}
	if c.ScrambleLength < 1 {
		return fmt.Errorf("scramble_length must be at least 1, got %d", c.ScrambleLength)
	}
	return nil
}

// Path returns the file the preferences were loaded from.
func (c Config) Path() string {
	return c.path
}

// Save writes the preferences back to their file.
func (c Config) Save() error {
	if c.path == "" {
		return errors.New("config has no path")
	}
	if err := os.MkdirAll(filepath.Dir(c.path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(c.path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}
