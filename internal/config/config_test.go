package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/ayoisaiah/focusplan/internal/config"
	"github.com/ayoisaiah/focusplan/internal/models"
)

// defaultConfig returns a new Config instance with default values.
func defaultConfig() *config.Config {
	return &config.Config{
		Defaults: config.DefaultsConfig{
			Language:           "en",
			WorkDuration:       25,
			ShortBreakDuration: 5,
			LongBreakDuration:  15,
			AutoStartBreaks:    false,
		},
		Settings: config.SettingsConfig{
			Cmd:               "",
			LogLevel:          "info",
			LongBreakInterval: 4,
			TwentyFourHour:    false,
		},
		Notifications: config.NotificationConfig{
			Enabled: true,
			Sound:   true,
		},
		WakeLock: config.WakeLockConfig{
			Enabled: true,
		},
		Storage: config.StorageConfig{
			Driver: config.DriverBolt,
		},
		Display: config.DisplayConfig{
			DarkTheme: true,
		},
	}
}

func TestViperWriteConfig(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yml")

	cfg, err := config.New(
		config.WithViperConfig(configPath),
	)
	require.NoError(t, err)

	assert.Equal(t, defaultConfig(), cfg)

	b, err := os.ReadFile(configPath)
	require.NoError(t, err)

	var written map[string]map[string]any

	require.NoError(t, yaml.Unmarshal(b, &written))

	assert.Equal(t, 25, written["defaults"]["work_duration"])
	assert.Equal(t, "en", written["defaults"]["language"])
	assert.Equal(t, 4, written["settings"]["long_break_interval"])
	assert.Equal(t, "bolt", written["storage"]["driver"])
	assert.Equal(t, true, written["wake_lock"]["enabled"])
}

const modifiedConfig = `defaults:
    auto_start_breaks: true
    language: es
    long_break_duration: 30
    short_break_duration: 10
    work_duration: 50
settings:
    24hr_clock: true
    cmd: notify-send done
    log_level: debug
    long_break_interval: 6
notifications:
    enabled: false
storage:
    driver: sqlite
    path: /tmp/focusplan.sqlite
`

func TestViperReadConfig(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yml")

	require.NoError(t, os.WriteFile(configPath, []byte(modifiedConfig), 0o600))

	want := defaultConfig()
	want.Defaults = config.DefaultsConfig{
		Language:           "es",
		WorkDuration:       50,
		ShortBreakDuration: 10,
		LongBreakDuration:  30,
		AutoStartBreaks:    true,
	}
	want.Settings = config.SettingsConfig{
		Cmd:               "notify-send done",
		LogLevel:          "debug",
		LongBreakInterval: 6,
		TwentyFourHour:    true,
	}
	want.Notifications.Enabled = false
	want.Storage = config.StorageConfig{
		Driver: config.DriverSQLite,
		Path:   "/tmp/focusplan.sqlite",
	}

	cfg, err := config.New(
		config.WithViperConfig(configPath),
	)
	require.NoError(t, err)

	assert.Equal(t, want, cfg)
	assert.Equal(t, "/tmp/focusplan.sqlite", cfg.DBPath())
	assert.Equal(t, models.Preferences{
		Language:           models.Spanish,
		WorkDuration:       50,
		ShortBreakDuration: 10,
		LongBreakDuration:  30,
		AutoStartBreaks:    true,
	}, cfg.Preferences())
}

func TestViperRejectsInvalidConfig(t *testing.T) {
	cases := map[string]string{
		"duration too long": "defaults:\n    work_duration: 721\n",
		"zero break":        "defaults:\n    short_break_duration: 0\n",
		"interval":          "settings:\n    long_break_interval: 1\n",
		"language":          "defaults:\n    language: fr\n",
		"driver":            "storage:\n    driver: postgres\n",
		"log level":         "settings:\n    log_level: loud\n",
	}

	for name, content := range cases {
		t.Run(name, func(t *testing.T) {
			configPath := filepath.Join(t.TempDir(), "config.yml")

			require.NoError(t, os.WriteFile(configPath, []byte(content), 0o600))

			_, err := config.New(config.WithViperConfig(configPath))
			assert.ErrorContains(t, err, "config validation error")
		})
	}
}

func TestViperMalformedFile(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yml")

	require.NoError(t, os.WriteFile(configPath, []byte("defaults: [\n"), 0o600))

	_, err := config.New(config.WithViperConfig(configPath))
	assert.ErrorContains(t, err, "reading config file failed")
}
