package config

import (
	"fmt"

	"github.com/urfave/cli/v2"
)

// CLIOptions represents command-line configuration options.
type CLIOptions struct {
	SessionCmd        string
	Work              uint
	ShortBreak        uint
	LongBreak         uint
	LongBreakInterval uint
	DisableNotify     bool
	DisableSound      bool
	NoWakeLock        bool
}

// WithCLIConfig returns an Option that overrides configuration with CLI
// flags for the current run only.
func WithCLIConfig(ctx *cli.Context) Option {
	return func(c *Config) error {
		opts := CLIOptions{
			Work:              ctx.Uint("work"),
			ShortBreak:        ctx.Uint("short-break"),
			LongBreak:         ctx.Uint("long-break"),
			LongBreakInterval: ctx.Uint("long-break-interval"),
			SessionCmd:        ctx.String("session-cmd"),
			DisableNotify:     ctx.Bool("disable-notification"),
			DisableSound:      ctx.Bool("no-sound"),
			NoWakeLock:        ctx.Bool("no-wake-lock"),
		}

		applyCLIOptions(c, opts)

		return nil
	}
}

// applyCLIOptions applies CLI options to the config.
func applyCLIOptions(c *Config, opts CLIOptions) {
	if opts.Work > 0 {
		c.Defaults.WorkDuration = int(opts.Work)
	}

	if opts.ShortBreak > 0 {
		c.Defaults.ShortBreakDuration = int(opts.ShortBreak)
	}

	if opts.LongBreak > 0 {
		c.Defaults.LongBreakDuration = int(opts.LongBreak)
	}

	if opts.LongBreakInterval > 0 {
		c.Settings.LongBreakInterval = int(opts.LongBreakInterval)
	}

	if opts.SessionCmd != "" {
		c.Settings.Cmd = opts.SessionCmd
	}

	if opts.DisableNotify {
		c.Notifications.Enabled = false
	}

	if opts.DisableSound {
		c.Notifications.Sound = false
	}

	if opts.NoWakeLock {
		c.WakeLock.Enabled = false
	}
}

// Overrides reports whether any duration flag was set on the command line.
func Overrides(ctx *cli.Context) bool {
	return ctx.Uint("work") > 0 ||
		ctx.Uint("short-break") > 0 ||
		ctx.Uint("long-break") > 0
}

// WithOverrides returns a validated copy of c with the command-line flags
// applied. The receiver keeps the values from the config file.
func (c *Config) WithOverrides(ctx *cli.Context) (*Config, error) {
	run := *c

	if err := WithCLIConfig(ctx)(&run); err != nil {
		return nil, fmt.Errorf("%w: %w", errConfigOption, err)
	}

	if err := run.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", errConfigValidation, err)
	}

	return &run, nil
}
