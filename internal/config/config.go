// Package config loads the paysheet configuration from
// ~/.config/paysheet/config.yaml, creating an annotated default file on
// first run.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config is the root configuration for paysheet.
type Config struct {
	// HourlyRate is the flat pay rate applied to every worked hour.
	HourlyRate float64 `yaml:"hourly_rate"`
	// Currency is the symbol prefixed to pay amounts, e.g. "$".
	Currency string `yaml:"currency"`
	// DatabasePath overrides the default SQLite database location.
	DatabasePath string `yaml:"database_path"`
	// ExportDir is where export files are written. Empty means the
	// current directory.
	ExportDir string `yaml:"export_dir"`
}

const (
	// DefaultHourlyRate matches the fixed rate the pay policy was
	// written for.
	DefaultHourlyRate = 17.50
	DefaultCurrency   = "$"
)

const configTemplate = `# paysheet configuration
#
# All settings are optional; missing or zero values fall back to the
# defaults shown here.

# Flat hourly pay rate.
hourly_rate: 17.50

# Currency symbol used when formatting pay.
currency: "$"

# SQLite database location. Empty uses ~/.config/paysheet/paysheet.db.
database_path: ""

# Directory export files are written to. Empty uses the current directory.
export_dir: ""
`

func defaultConfig() Config {
	return Config{
		HourlyRate: DefaultHourlyRate,
		Currency:   DefaultCurrency,
	}
}

// DefaultPath returns ~/.config/paysheet/config.yaml.
func DefaultPath() (string, error) {
	cfg, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine config directory: %w", err)
	}
	return filepath.Join(cfg, "paysheet", "config.yaml"), nil
}

// Load reads the config file at path, writing the annotated template first
// if the file does not exist yet. Zero-value fields are filled with
// defaults so callers always get a usable Config.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		if writeErr := writeDefault(path); writeErr != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not create config file %s: %v\n", path, writeErr)
		}
		return defaultConfig(), nil
	}
	if err != nil {
		return defaultConfig(), fmt.Errorf("reading config file %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return defaultConfig(), fmt.Errorf("parsing config file %s: %w", path, err)
	}

	if cfg.HourlyRate <= 0 {
		cfg.HourlyRate = DefaultHourlyRate
	}
	if cfg.Currency == "" {
		cfg.Currency = DefaultCurrency
	}
	return cfg, nil
}

func writeDefault(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(configTemplate), 0o600); err != nil {
		return fmt.Errorf("writing default config: %w", err)
	}
	return nil
}
