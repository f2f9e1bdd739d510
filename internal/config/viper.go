package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/viper"

	"github.com/ayoisaiah/focusplan/internal/models"
)

const (
	keyWorkDuration         = "defaults.work_duration"
	keyShortBreakDuration   = "defaults.short_break_duration"
	keyLongBreakDuration    = "defaults.long_break_duration"
	keyAutoStartBreaks      = "defaults.auto_start_breaks"
	keyLanguage             = "defaults.language"
	keyLongBreakInterval    = "settings.long_break_interval"
	keySessionCmd           = "settings.cmd"
	keyTwentyFourHour       = "settings.24hr_clock"
	keyLogLevel             = "settings.log_level"
	keyNotificationsEnabled = "notifications.enabled"
	keyNotificationSound    = "notifications.sound"
	keyWakeLockEnabled      = "wake_lock.enabled"
	keyWakeLockCmd          = "wake_lock.cmd"
	keyStorageDriver        = "storage.driver"
	keyStoragePath          = "storage.path"
	keyDarkTheme            = "display.dark_theme"
)

// WithViperConfig returns an Option that loads configuration from the YAML
// file at configPath, writing a default file if none exists. Values already
// set on the Config (by the first-run prompt) are written to the new file.
func WithViperConfig(configPath string) Option {
	return func(c *Config) error {
		v := viper.New()

		v.SetConfigFile(configPath)
		v.SetConfigType("yaml")

		setupViper(v, c)

		err := v.ReadInConfig()
		if err == nil {
			return loadViperConfig(v, c)
		}

		if !errors.Is(err, os.ErrNotExist) {
			return errReadConfig.Wrap(err)
		}

		if err := v.WriteConfig(); err != nil {
			return errWriteConfig.Wrap(err)
		}

		return loadViperConfig(v, c)
	}
}

// setupViper configures Viper with defaults and prompt values.
func setupViper(v *viper.Viper, c *Config) {
	prefs := models.DefaultPreferences()

	v.SetDefault(keyWorkDuration, prefs.WorkDuration)
	v.SetDefault(keyShortBreakDuration, prefs.ShortBreakDuration)
	v.SetDefault(keyLongBreakDuration, prefs.LongBreakDuration)
	v.SetDefault(keyAutoStartBreaks, prefs.AutoStartBreaks)
	v.SetDefault(keyLanguage, string(prefs.Language))
	v.SetDefault(keyLongBreakInterval, 4)
	v.SetDefault(keySessionCmd, "")
	v.SetDefault(keyTwentyFourHour, false)
	v.SetDefault(keyLogLevel, "info")
	v.SetDefault(keyNotificationsEnabled, true)
	v.SetDefault(keyNotificationSound, true)
	v.SetDefault(keyWakeLockEnabled, true)
	v.SetDefault(keyWakeLockCmd, "")
	v.SetDefault(keyStorageDriver, DriverBolt)
	v.SetDefault(keyStoragePath, "")
	v.SetDefault(keyDarkTheme, true)

	if c.Defaults.WorkDuration != 0 {
		v.Set(keyWorkDuration, c.Defaults.WorkDuration)
	}

	if c.Defaults.ShortBreakDuration != 0 {
		v.Set(keyShortBreakDuration, c.Defaults.ShortBreakDuration)
	}

	if c.Defaults.LongBreakDuration != 0 {
		v.Set(keyLongBreakDuration, c.Defaults.LongBreakDuration)
	}

	if c.Defaults.Language != "" {
		v.Set(keyLanguage, c.Defaults.Language)
	}

	if c.Settings.LongBreakInterval != 0 {
		v.Set(keyLongBreakInterval, c.Settings.LongBreakInterval)
	}
}

// loadViperConfig loads configuration from Viper into the Config struct.
func loadViperConfig(v *viper.Viper, c *Config) error {
	if err := v.Unmarshal(c); err != nil {
		return fmt.Errorf("decoding config: %w", err)
	}

	return nil
}
