package app

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"runtime"
	"strconv"

	"github.com/kballard/go-shellquote"
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/focusplan/internal/config"
	"github.com/ayoisaiah/focusplan/internal/export"
	"github.com/ayoisaiah/focusplan/internal/i18n"
	"github.com/ayoisaiah/focusplan/internal/logging"
	"github.com/ayoisaiah/focusplan/internal/osutil"
	"github.com/ayoisaiah/focusplan/internal/pathutil"
	"github.com/ayoisaiah/focusplan/internal/ui"
	"github.com/ayoisaiah/focusplan/planner"
	"github.com/ayoisaiah/focusplan/state"
	"github.com/ayoisaiah/focusplan/stats"
	"github.com/ayoisaiah/focusplan/store"
	"github.com/ayoisaiah/focusplan/timer"
)

const (
	envNoColor          = "NO_COLOR"
	envFocusplanNoColor = "FOCUSPLAN_NO_COLOR"
)

const (
	minLogMinutes = 1
	maxLogMinutes = 720
)

// firstNonEmptyString returns its first non-empty argument, or "" if all
// arguments are empty.
func firstNonEmptyString(ss ...string) string {
	for _, s := range ss {
		if s != "" {
			return s
		}
	}

	return ""
}

func (e *env) success(format string, args ...any) {
	pterm.Success.WithWriter(e.out).Printfln(format, args...)
}

func (e *env) info(format string, args ...any) {
	pterm.Info.WithWriter(e.out).Printfln(format, args...)
}

func beforeAction(ctx *cli.Context) {
	// Override the default help template
	cli.AppHelpTemplate = helpText()

	pterm.Error.MessageStyle = pterm.NewStyle(pterm.FgRed)
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "ERROR",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}

	// Disable colour output if NO_COLOR is set
	if _, exists := os.LookupEnv(envNoColor); exists {
		disableStyling()
	}

	// Disable colour output if FOCUSPLAN_NO_COLOR is set
	if _, exists := os.LookupEnv(envFocusplanNoColor); exists {
		disableStyling()
	}

	if ctx.Bool("no-color") {
		disableStyling()
	}
}

func (e *env) beforeAction(ctx *cli.Context) error {
	beforeAction(ctx)

	if e.planner != nil {
		return nil
	}

	// edit-config must work even when the config file does not validate
	if ctx.Args().First() == "edit-config" {
		return pathutil.Initialize()
	}

	return e.setup(ctx)
}

// setup loads the configuration, installs the logger and opens the planner
// on the configured store.
func (e *env) setup(ctx *cli.Context) error {
	err := pathutil.Initialize()
	if err != nil {
		return err
	}

	configPath := pathutil.ConfigFilePath()

	base, err := config.New(
		config.WithPromptConfig(configPath),
		config.WithViperConfig(configPath),
	)
	if err != nil {
		return err
	}

	cfg, err := base.WithOverrides(ctx)
	if err != nil {
		return err
	}

	logFile, err := logging.Setup(
		pathutil.LogFilePath(),
		logging.ParseLevel(cfg.Settings.LogLevel),
	)
	if err != nil {
		return err
	}

	e.closers = append(e.closers, logFile)

	ui.DarkTheme = cfg.Display.DarkTheme

	db, err := store.Open(cfg.Storage.Driver, cfg.DBPath())
	if err != nil {
		return err
	}

	e.closers = append(e.closers, db)

	e.cfg = cfg
	e.overrides = overridesPatch(ctx, cfg)

	// the stored state is seeded from the config file, never from flags
	e.planner = planner.Open(
		db,
		base.Preferences(),
		planner.WithLocalizer(e.catalog),
	)

	slog.Debug(
		"focusplan started",
		slog.String("driver", cfg.Storage.Driver),
		slog.String("db", cfg.DBPath()),
		slog.String("command", ctx.Args().First()),
	)

	return nil
}

func (e *env) afterAction(ctx *cli.Context) error {
	slog.InfoContext(ctx.Context, "exiting focusplan")

	var errs []error

	for i := len(e.closers) - 1; i >= 0; i-- {
		errs = append(errs, e.closers[i].Close())
	}

	e.closers = nil

	return errors.Join(errs...)
}

// overridesPatch collects the duration flags of this run as a preferences
// patch. cfg already holds the validated flag values.
func overridesPatch(ctx *cli.Context, cfg *config.Config) state.PreferencesPatch {
	var patch state.PreferencesPatch

	if !config.Overrides(ctx) {
		return patch
	}

	if ctx.Uint("work") > 0 {
		patch.WorkDuration = &cfg.Defaults.WorkDuration
	}

	if ctx.Uint("short-break") > 0 {
		patch.ShortBreakDuration = &cfg.Defaults.ShortBreakDuration
	}

	if ctx.Uint("long-break") > 0 {
		patch.LongBreakDuration = &cfg.Defaults.LongBreakDuration
	}

	return patch
}

// defaultAction starts the interactive timer.
func (e *env) defaultAction(ctx *cli.Context) error {
	if ctx.Args().Present() {
		return errUnexpectedArgs.Fmt(ctx.Args().First())
	}

	t := timer.New(
		e.planner,
		e.catalog,
		timer.NewDesktopNotifier(
			e.catalog,
			e.cfg.Notifications.Enabled,
			e.cfg.Notifications.Sound,
		),
		e.wakeLock(),
		timer.Options{
			Overrides:         e.overrides,
			SessionCmd:        e.cfg.Settings.Cmd,
			LongBreakInterval: e.cfg.Settings.LongBreakInterval,
			TwentyFourHour:    e.cfg.Settings.TwentyFourHour,
			DarkTheme:         e.cfg.Display.DarkTheme,
		},
	)

	return t.Run()
}

// wakeLock returns the configured sleep inhibitor, or nil when disabled or
// unavailable on this platform.
func (e *env) wakeLock() timer.WakeLock {
	if !e.cfg.WakeLock.Enabled {
		return nil
	}

	cmd := firstNonEmptyString(e.cfg.WakeLock.Cmd, timer.DefaultWakeLockCmd())
	if cmd == "" {
		return nil
	}

	return timer.NewCommandWakeLock(cmd)
}

// logAction records a focus session of the given length against the active
// task.
func (e *env) logAction(ctx *cli.Context) error {
	arg := ctx.Args().First()

	mins, err := strconv.Atoi(arg)
	if err != nil || mins < minLogMinutes || mins > maxLogMinutes {
		return errInvalidMinutes.Fmt(arg, minLogMinutes, maxLogMinutes)
	}

	label := timer.TaskLabel(e.planner.State(), e.catalog)

	e.planner.LogSession(mins)

	e.success(
		"logged a %d minute session: %s (streak %d, %d today)",
		mins,
		label,
		e.planner.State().SessionStreak,
		e.planner.DailySessionCount(),
	)

	return nil
}

func (e *env) streakResetAction(_ *cli.Context) error {
	e.planner.ResetSessionStreak()

	e.success("the session streak was reset")

	return nil
}

// statsAction prints the analytics of the whole history.
func (e *env) statsAction(ctx *cli.Context) error {
	s := e.planner.State()

	st := stats.Compute(s, e.now(), i18n.WeekStart(s.Preferences.Language))

	if ctx.Bool("json") {
		b, err := st.ToJSON()
		if err != nil {
			return err
		}

		_, err = fmt.Fprintln(e.out, string(b))

		return err
	}

	return st.Render(e.out, e.catalog)
}

// exportAction writes the whole state in the requested format.
func (e *env) exportAction(ctx *cli.Context) error {
	format, err := export.ParseFormat(ctx.String("format"))
	if err != nil {
		return err
	}

	var w io.Writer = e.out

	if path := ctx.String("output"); path != "" {
		f, err := os.OpenFile(
			path,
			os.O_CREATE|os.O_WRONLY|os.O_TRUNC,
			osutil.FilePermission,
		)
		if err != nil {
			return errCreateExport.Wrap(err)
		}

		defer f.Close()

		w = f
	}

	err = export.Write(w, e.planner.State(), format)
	if err != nil {
		return err
	}

	if w != e.out {
		e.success("exported to %s", ctx.String("output"))
	}

	return nil
}

// editConfigAction opens the focusplan config file in the user's default
// text editor.
func editConfigAction(_ *cli.Context) error {
	defaultEditor := "nano"

	if runtime.GOOS == osutil.Windows {
		defaultEditor = "C:\\Windows\\system32\\notepad.exe"
	}

	editor := firstNonEmptyString(
		os.Getenv("VISUAL"),
		os.Getenv("EDITOR"),
		defaultEditor,
	)

	args, err := shellquote.Split(editor)
	if err != nil || len(args) == 0 {
		args = []string{defaultEditor}
	}

	args = append(args, pathutil.ConfigFilePath())

	cmd := exec.Command(args[0], args[1:]...)

	cmd.Stderr = os.Stderr
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout

	return cmd.Run()
}
