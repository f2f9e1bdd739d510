// Package app wires the focusplan command line: configuration, storage and
// the planner behind each command
package app

import (
	"io"
	"os"
	"time"

	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/focusplan/internal/config"
	"github.com/ayoisaiah/focusplan/internal/i18n"
	"github.com/ayoisaiah/focusplan/planner"
	"github.com/ayoisaiah/focusplan/state"
)

// env holds the collaborators shared by every command. The Before hook
// fills in whatever was not provided up front.
type env struct {
	out       io.Writer
	in        io.Reader
	cfg       *config.Config
	planner   *planner.Planner
	catalog   *i18n.Catalog
	now       func() time.Time
	closers   []io.Closer
	overrides state.PreferencesPatch
}

func newEnv(out io.Writer, in io.Reader) *env {
	return &env{
		out:     out,
		in:      in,
		catalog: i18n.New(),
		now:     time.Now,
	}
}

// disableStyling disables all styling provided by pterm.
func disableStyling() {
	pterm.DisableColor()
	pterm.DisableStyling()
	pterm.Debug.Prefix.Text = ""
	pterm.Info.Prefix.Text = ""
	pterm.Success.Prefix.Text = ""
	pterm.Warning.Prefix.Text = ""
	pterm.Error.Prefix.Text = ""
	pterm.Fatal.Prefix.Text = ""
}

// Get retrieves the focusplan app instance.
func Get() *cli.App {
	return newEnv(os.Stdout, os.Stdin).app()
}

func (e *env) app() *cli.App {
	return &cli.App{
		Name: "focusplan",
		Usage: `
		focusplan is a Pomodoro timer for the command-line that tracks where
		your focus goes. Organise work into domains, sections and tasks, pick
		an active task and every completed focus session is logged against it.`,
		UsageText:            "[COMMAND] [OPTIONS]",
		Version:              config.Version,
		EnableBashCompletion: true,
		Writer:               e.out,
		Reader:               e.in,
		Commands:             e.commands(),
		Flags:                timerFlags,
		Action:               e.defaultAction,
		Before:               e.beforeAction,
		After:                e.afterAction,
	}
}

func (e *env) commands() []*cli.Command {
	return []*cli.Command{
		{
			Name:  "domain",
			Usage: "Manage domains, the top level areas of your work",
			Subcommands: []*cli.Command{
				{
					Name:      "add",
					Usage:     "Add a domain",
					ArgsUsage: "NAME",
					Flags:     []cli.Flag{colorFlag},
					Action:    e.domainAddAction,
				},
				{
					Name:      "delete",
					Aliases:   []string{"rm"},
					Usage:     "Delete a domain with all its sections and tasks",
					ArgsUsage: "ID",
					Flags:     []cli.Flag{yesFlag},
					Action:    e.domainDeleteAction,
				},
				{
					Name:    "list",
					Aliases: []string{"ls"},
					Usage:   "List domains",
					Flags:   []cli.Flag{sortFlag},
					Action:  e.domainListAction,
				},
			},
		},
		{
			Name:  "section",
			Usage: "Manage the sections of a domain",
			Subcommands: []*cli.Command{
				{
					Name:      "add",
					Usage:     "Add a section to a domain",
					ArgsUsage: "NAME",
					Flags:     []cli.Flag{domainFlag},
					Action:    e.sectionAddAction,
				},
				{
					Name:      "delete",
					Aliases:   []string{"rm"},
					Usage:     "Delete a section with all its tasks",
					ArgsUsage: "ID",
					Flags:     []cli.Flag{domainFlag, yesFlag},
					Action:    e.sectionDeleteAction,
				},
			},
		},
		{
			Name:  "task",
			Usage: "Manage tasks and choose the active one",
			Subcommands: []*cli.Command{
				{
					Name:      "add",
					Usage:     "Add a task to a section",
					ArgsUsage: "TITLE",
					Flags:     []cli.Flag{domainFlag, sectionFlag, estimateFlag},
					Action:    e.taskAddAction,
				},
				{
					Name:      "delete",
					Aliases:   []string{"rm"},
					Usage:     "Delete a task. Its logged sessions are kept",
					ArgsUsage: "ID",
					Action:    e.taskDeleteAction,
				},
				{
					Name:      "toggle",
					Usage:     "Mark a task as done, or as not done",
					ArgsUsage: "ID",
					Action:    e.taskToggleAction,
				},
				{
					Name:      "activate",
					Usage:     "Log future focus sessions against a task",
					ArgsUsage: "ID",
					Action:    e.taskActivateAction,
				},
				{
					Name:   "deactivate",
					Usage:  "Clear the active task",
					Action: e.taskDeactivateAction,
				},
			},
		},
		{
			Name:   "tree",
			Usage:  "Print all domains, sections and tasks",
			Action: e.treeAction,
		},
		{
			Name:      "log",
			Usage:     "Record a completed focus session against the active task",
			ArgsUsage: "MINUTES",
			Action:    e.logAction,
		},
		{
			Name:   "history",
			Usage:  "List logged focus sessions, newest first",
			Flags:  []cli.Flag{sinceFlag, jsonFlag},
			Action: e.historyAction,
			Subcommands: []*cli.Command{
				{
					Name:      "delete",
					Aliases:   []string{"rm"},
					Usage:     "Delete a logged session",
					ArgsUsage: "ID",
					Flags:     []cli.Flag{yesFlag},
					Action:    e.historyDeleteAction,
				},
			},
		},
		{
			Name:  "streak",
			Usage: "Manage the focus session streak",
			Subcommands: []*cli.Command{
				{
					Name:   "reset",
					Usage:  "Reset the streak to zero",
					Action: e.streakResetAction,
				},
			},
		},
		{
			Name:   "stats",
			Usage:  "Track your progress with detailed statistics",
			Flags:  []cli.Flag{jsonFlag},
			Action: e.statsAction,
		},
		{
			Name:  "prefs",
			Usage: "Show or change the stored preferences",
			Subcommands: []*cli.Command{
				{
					Name:   "show",
					Usage:  "Print the stored preferences",
					Action: e.prefsShowAction,
				},
				{
					Name:  "set",
					Usage: "Change one or more preferences",
					Flags: []cli.Flag{
						prefWorkFlag,
						prefShortBreakFlag,
						prefLongBreakFlag,
						prefAutoStartFlag,
						prefLanguageFlag,
					},
					Action: e.prefsSetAction,
				},
			},
		},
		{
			Name:   "export",
			Usage:  "Export all domains, tasks, history and preferences",
			Flags:  []cli.Flag{formatFlag, outputFlag},
			Action: e.exportAction,
		},
		{
			Name:   "edit-config",
			Usage:  "Edit the configuration file",
			Action: editConfigAction,
		},
	}
}
