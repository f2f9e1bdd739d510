package app

import "github.com/urfave/cli/v2"

var (
	noColorFlag = &cli.BoolFlag{
		Name:  "no-color",
		Usage: "Disable coloured output",
	}

	disableNotificationFlag = &cli.BoolFlag{
		Name:    "disable-notification",
		Aliases: []string{"d"},
		Usage:   "Disable the system notification that appears after a phase is completed",
	}

	noSoundFlag = &cli.BoolFlag{
		Name:  "no-sound",
		Usage: "Do not play the chime when a phase is completed",
	}

	noWakeLockFlag = &cli.BoolFlag{
		Name:  "no-wake-lock",
		Usage: "Allow the system to sleep while the countdown is running",
	}

	sessionCmdFlag = &cli.StringFlag{
		Name:    "session-cmd",
		Aliases: []string{"cmd"},
		Usage:   "Execute an arbitrary command after each phase",
	}

	shortBreakFlag = &cli.UintFlag{
		Name:    "short-break",
		Aliases: []string{"s"},
		Usage:   "Short break duration in minutes for this run",
	}

	longBreakFlag = &cli.UintFlag{
		Name:    "long-break",
		Aliases: []string{"l"},
		Usage:   "Long break duration in minutes for this run",
	}

	longBreakIntervalFlag = &cli.UintFlag{
		Name:    "long-break-interval",
		Aliases: []string{"int"},
		Usage:   "The number of focus sessions before a long break (default: 4)",
	}

	workFlag = &cli.UintFlag{
		Name:    "work",
		Aliases: []string{"w"},
		Usage:   "Focus duration in minutes for this run",
	}

	yesFlag = &cli.BoolFlag{
		Name:    "yes",
		Aliases: []string{"y"},
		Usage:   "Skip the confirmation prompt",
	}

	jsonFlag = &cli.BoolFlag{
		Name:  "json",
		Usage: "Print the output as JSON",
	}

	domainFlag = &cli.StringFlag{
		Name:    "domain",
		Aliases: []string{"d"},
		Usage:   "Domain id or unique id prefix. Prompts for a choice when omitted",
	}

	sectionFlag = &cli.StringFlag{
		Name:    "section",
		Aliases: []string{"s"},
		Usage:   "Section id or unique id prefix. Prompts for a choice when omitted",
	}

	colorFlag = &cli.StringFlag{
		Name:    "color",
		Aliases: []string{"c"},
		Usage:   "Domain colour: blue, emerald, orange, purple, rose, amber, cyan, slate or a hex value",
		Value:   "blue",
	}

	sortFlag = &cli.StringFlag{
		Name:  "sort",
		Usage: "Sort order: 'created' (default) or 'name'",
		Value: sortCreated,
	}

	estimateFlag = &cli.IntFlag{
		Name:    "estimate",
		Aliases: []string{"e"},
		Usage:   "Estimated number of pomodoros",
		Value:   1,
	}

	sinceFlag = &cli.StringFlag{
		Name:  "since",
		Usage: "Only show sessions logged after this time (e.g. '2 days ago', 'last monday')",
	}

	formatFlag = &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"f"},
		Usage:   "Output format: json, yaml or toml",
		Value:   "json",
	}

	outputFlag = &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "Write to this file instead of standard output",
	}

	prefWorkFlag = &cli.IntFlag{
		Name:  "work",
		Usage: "Focus duration in minutes",
	}

	prefShortBreakFlag = &cli.IntFlag{
		Name:  "short-break",
		Usage: "Short break duration in minutes",
	}

	prefLongBreakFlag = &cli.IntFlag{
		Name:  "long-break",
		Usage: "Long break duration in minutes",
	}

	prefAutoStartFlag = &cli.BoolFlag{
		Name:  "auto-start-breaks",
		Usage: "Start breaks as soon as a focus session ends",
	}

	prefLanguageFlag = &cli.StringFlag{
		Name:  "language",
		Usage: "Interface language: en or es",
	}
)

// timerFlags adjust the timer for the current run only.
var timerFlags = []cli.Flag{
	workFlag,
	shortBreakFlag,
	longBreakFlag,
	longBreakIntervalFlag,
	sessionCmdFlag,
	disableNotificationFlag,
	noSoundFlag,
	noWakeLockFlag,
	noColorFlag,
}
