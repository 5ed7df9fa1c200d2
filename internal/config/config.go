// Package config handles reading and writing the optional
// ~/Documents/PasswordChecker/config.yaml.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/pwcheck-dev/pwcheck/internal/strength"
)

// ErrInvalid is wrapped by every error returned from Validate.
var ErrInvalid = errors.New("invalid config")

// Color modes.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config is the top-level structure for config.yaml.
type Config struct {
	MinLength int           `yaml:"min_length"`
	Symbols   string        `yaml:"symbols"`
	LogFile   string        `yaml:"log_file"`
	Color     string        `yaml:"color"` // "auto" | "always" | "never"
	Spinner   SpinnerConfig `yaml:"spinner"`
}

// SpinnerConfig controls the "Analyzing password" animation.
type SpinnerConfig struct {
	DurationMs int `yaml:"duration_ms"`
	FPS        int `yaml:"fps"`
}

// Duration returns the configured animation length.
func (s SpinnerConfig) Duration() time.Duration {
	return time.Duration(s.DurationMs) * time.Millisecond
}

const (
	appDir     = "PasswordChecker"
	configFile = "config.yaml"
)

// Dir returns ~/Documents/PasswordChecker.
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("locating home directory: %w", err)
	}
	return filepath.Join(home, "Documents", appDir), nil
}

// DefaultPath returns the location of config.yaml inside Dir.
func DefaultPath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, configFile), nil
}

// ReadConfig reads the YAML config at path. Fields absent from the file
// keep their DefaultConfig values.
// Returns an error if the file is not found, the YAML is malformed, or
// the result fails Validate.
func ReadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadOrDefault reads the config at path, returning DefaultConfig when
// the file does not exist. Any other error is returned.
func LoadOrDefault(path string) (*Config, error) {
	cfg, err := ReadConfig(path)
	if errors.Is(err, os.ErrNotExist) {
		return DefaultConfig(), nil
	}
	return cfg, err
}

// WriteConfig writes cfg to path, creating parent directories.
func WriteConfig(path string, cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	return nil
}

// Validate checks field ranges.
func (c *Config) Validate() error {
	switch {
	case c.MinLength < 1:
		return fmt.Errorf("%w: min_length must be at least 1, got %d", ErrInvalid, c.MinLength)
	case c.Symbols == "":
		return fmt.Errorf("%w: symbols must not be empty", ErrInvalid)
	case c.Color != ColorAuto && c.Color != ColorAlways && c.Color != ColorNever:
		return fmt.Errorf("%w: color must be auto, always or never, got %q", ErrInvalid, c.Color)
	case c.Spinner.FPS < 1:
		return fmt.Errorf("%w: spinner.fps must be at least 1, got %d", ErrInvalid, c.Spinner.FPS)
	case c.Spinner.DurationMs < 0:
		return fmt.Errorf("%w: spinner.duration_ms must not be negative", ErrInvalid)
	}
	return nil
}

// Policy returns the scoring policy described by the config.
func (c *Config) Policy() strength.Policy {
	return strength.Policy{
		MinLength: c.MinLength,
		Symbols:   c.Symbols,
	}
}

// DefaultConfig returns a Config populated with the standard rules.
// LogFile is left empty; callers resolve it against the home directory.
func DefaultConfig() *Config {
	return &Config{
		MinLength: strength.DefaultMinLength,
		Symbols:   strength.DefaultSymbols,
		Color:     ColorAuto,
		Spinner: SpinnerConfig{
			DurationMs: 1400,
			FPS:        14,
		},
	}
}
