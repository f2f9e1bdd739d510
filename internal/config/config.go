// Package config loads focusplan's configuration from the YAML config file,
// first-run prompts and command-line flags
package config

import (
	"fmt"
	"path/filepath"

	"github.com/ayoisaiah/focusplan/internal/models"
	"github.com/ayoisaiah/focusplan/internal/pathutil"
)

type (
	// Config holds all configuration settings.
	Config struct {
		Storage       StorageConfig      `mapstructure:"storage"`
		Settings      SettingsConfig     `mapstructure:"settings"`
		WakeLock      WakeLockConfig     `mapstructure:"wake_lock"`
		Defaults      DefaultsConfig     `mapstructure:"defaults"`
		Notifications NotificationConfig `mapstructure:"notifications"`
		Display       DisplayConfig      `mapstructure:"display"`
	}

	// DefaultsConfig seeds the preferences of a fresh state.
	DefaultsConfig struct {
		Language           string `mapstructure:"language"`
		WorkDuration       int    `mapstructure:"work_duration"`
		ShortBreakDuration int    `mapstructure:"short_break_duration"`
		LongBreakDuration  int    `mapstructure:"long_break_duration"`
		AutoStartBreaks    bool   `mapstructure:"auto_start_breaks"`
	}

	// SettingsConfig holds timer behaviour settings.
	SettingsConfig struct {
		Cmd               string `mapstructure:"cmd"`
		LogLevel          string `mapstructure:"log_level"`
		LongBreakInterval int    `mapstructure:"long_break_interval"`
		TwentyFourHour    bool   `mapstructure:"24hr_clock"`
	}

	// NotificationConfig holds phase completion alert settings.
	NotificationConfig struct {
		Enabled bool `mapstructure:"enabled"`
		Sound   bool `mapstructure:"sound"`
	}

	// WakeLockConfig controls sleep inhibition while a countdown runs.
	WakeLockConfig struct {
		Cmd     string `mapstructure:"cmd"`
		Enabled bool   `mapstructure:"enabled"`
	}

	// StorageConfig selects the persistence backend.
	StorageConfig struct {
		Driver string `mapstructure:"driver"`
		Path   string `mapstructure:"path"`
	}

	// DisplayConfig holds display-related settings.
	DisplayConfig struct {
		DarkTheme bool `mapstructure:"dark_theme"`
	}

	// Option is a function that modifies Config.
	Option func(*Config) error
)

const Version = "v0.3.0"

const (
	DriverBolt   = "bolt"
	DriverSQLite = "sqlite"
)

// Preferences converts the configured defaults into state preferences.
func (c *Config) Preferences() models.Preferences {
	return models.Preferences{
		WorkDuration:       c.Defaults.WorkDuration,
		ShortBreakDuration: c.Defaults.ShortBreakDuration,
		LongBreakDuration:  c.Defaults.LongBreakDuration,
		AutoStartBreaks:    c.Defaults.AutoStartBreaks,
		Language:           models.Language(c.Defaults.Language),
	}
}

// DBPath returns the location of the database file for the configured
// driver.
func (c *Config) DBPath() string {
	if c.Storage.Path != "" {
		return filepath.Clean(c.Storage.Path)
	}

	return pathutil.DBFilePath(c.Storage.Driver)
}

// New creates a Config by applying opts in order and validating the result.
func New(opts ...Option) (*Config, error) {
	cfg := &Config{}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, fmt.Errorf("%w: %w", errConfigOption, err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", errConfigValidation, err)
	}

	return cfg, nil
}
