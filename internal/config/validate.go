package config

import (
	"slices"
	"strings"

	"github.com/ayoisaiah/focusplan/internal/models"
)

const (
	minDurationMins = 1
	maxDurationMins = 720 // 12 hours

	minLongBreakInterval = 2
	maxLongBreakInterval = 10
)

var logLevels = []string{"debug", "info", "warn", "error"}

// Validate performs validation checks on the Config struct and its fields.
func (c *Config) Validate() error {
	durations := []struct {
		name string
		mins int
	}{
		{"work", c.Defaults.WorkDuration},
		{"short break", c.Defaults.ShortBreakDuration},
		{"long break", c.Defaults.LongBreakDuration},
	}

	for _, d := range durations {
		if d.mins < minDurationMins || d.mins > maxDurationMins {
			return errInvalidDuration.Fmt(d.name, minDurationMins, maxDurationMins)
		}
	}

	if c.Settings.LongBreakInterval < minLongBreakInterval ||
		c.Settings.LongBreakInterval > maxLongBreakInterval {
		return errInvalidLongBreakInterval.Fmt(
			minLongBreakInterval,
			maxLongBreakInterval,
		)
	}

	if !models.Language(c.Defaults.Language).Valid() {
		return errInvalidLanguage.Fmt(c.Defaults.Language)
	}

	if c.Storage.Driver != DriverBolt && c.Storage.Driver != DriverSQLite {
		return errInvalidDriver.Fmt(c.Storage.Driver)
	}

	if !slices.Contains(logLevels, strings.ToLower(c.Settings.LogLevel)) {
		return errInvalidLogLevel.Fmt(c.Settings.LogLevel)
	}

	return nil
}
