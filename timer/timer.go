// Package timer drives the focus/break cycle: a countdown engine, the phase
// rule and the terminal interface that ties them to the planner
package timer

import (
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ayoisaiah/focusplan/internal/i18n"
	"github.com/ayoisaiah/focusplan/internal/models"
	"github.com/ayoisaiah/focusplan/planner"
	"github.com/ayoisaiah/focusplan/state"
)

// Options configures a Timer.
type Options struct {
	// Overrides adjust the stored preferences for this run only
	Overrides         state.PreferencesPatch
	SessionCmd        string
	CountdownOpts     []CountdownOption
	LongBreakInterval int
	TwentyFourHour    bool
	DarkTheme         bool
}

// Timer is the bubbletea model of the focus timer.
type Timer struct {
	planner  *planner.Planner
	catalog  *i18n.Catalog
	clock    *Countdown
	notifier Notifier
	wakeLock WakeLock
	now      func() time.Time
	phase    Phase
	style    Style
	opts     Options
	help     help.Model
	progress progress.Model
}

// tickMsg reports that the countdown changed on its own.
type tickMsg struct{}

// New returns a timer positioned at the start of a focus phase.
func New(
	p *planner.Planner,
	catalog *i18n.Catalog,
	notifier Notifier,
	wakeLock WakeLock,
	opts Options,
) *Timer {
	if opts.LongBreakInterval <= 0 {
		opts.LongBreakInterval = DefaultLongBreakInterval
	}

	if wakeLock == nil {
		wakeLock = noWakeLock{}
	}

	t := &Timer{
		planner:  p,
		catalog:  catalog,
		notifier: notifier,
		wakeLock: wakeLock,
		now:      time.Now,
		phase:    Focus,
		style:    NewStyle(opts.DarkTheme),
		opts:     opts,
		help:     help.New(),
		progress: progress.New(progress.WithDefaultGradient()),
	}

	t.clock = NewCountdown(Focus.Seconds(t.preferences()), opts.CountdownOpts...)

	return t
}

// preferences returns the stored preferences with this run's overrides
// applied.
func (t *Timer) preferences() models.Preferences {
	return t.planner.State().UpdatePreferences(t.opts.Overrides).Preferences
}

// Phase reports the current phase.
func (t *Timer) Phase() Phase {
	return t.phase
}

// Countdown exposes the countdown of the current phase.
func (t *Timer) Countdown() *Countdown {
	return t.clock
}

func (t *Timer) Init() tea.Cmd {
	return t.waitForTick()
}

// waitForTick blocks until the countdown changes on its own.
func (t *Timer) waitForTick() tea.Cmd {
	ticks := t.clock.Ticks()

	return func() tea.Msg {
		<-ticks

		return tickMsg{}
	}
}

// syncWakeLock holds the wake lock exactly while the countdown runs.
func (t *Timer) syncWakeLock() {
	if t.clock.Running() {
		t.wakeLock.Acquire()
		return
	}

	t.wakeLock.Release()
}

// completePhase handles a countdown reaching zero: the phase advances and
// the user is notified.
func (t *Timer) completePhase() tea.Cmd {
	completed := t.advancePhase()

	return tea.Batch(t.notifyCmd(completed), t.sessionCmd())
}

// advancePhase ends the current phase, logging it if it was a focus phase,
// and moves to the next one. It returns the phase that ended.
func (t *Timer) advancePhase() Phase {
	completed := t.phase
	prefs := t.preferences()

	t.clock.Stop()

	if completed == Focus {
		t.planner.LogSession(prefs.WorkDuration)
	}

	t.phase = NextPhase(
		completed,
		t.planner.State().SessionStreak,
		t.opts.LongBreakInterval,
	)

	t.clock.ResetTo(t.phase.Seconds(prefs))

	if t.phase != Focus && prefs.AutoStartBreaks {
		t.clock.Toggle()
	}

	t.syncWakeLock()

	slog.Info(
		"phase complete",
		slog.String("completed", string(completed)),
		slog.String("next", string(t.phase)),
		slog.Int("streak", t.planner.State().SessionStreak),
	)

	return completed
}

func (t *Timer) notifyCmd(completed Phase) tea.Cmd {
	if t.notifier == nil {
		return nil
	}

	return func() tea.Msg {
		t.notifier.PhaseComplete(completed)

		return nil
	}
}

func (t *Timer) sessionCmd() tea.Cmd {
	if t.opts.SessionCmd == "" {
		return nil
	}

	command := t.opts.SessionCmd

	return func() tea.Msg {
		if err := runSessionCmd(command); err != nil {
			slog.Error(
				"session command failed",
				slog.String("cmd", command),
				slog.Any("error", err),
			)
		}

		return nil
	}
}

// Run starts the interactive timer and blocks until the user quits.
func (t *Timer) Run() error {
	_, err := tea.NewProgram(t).Run()

	t.clock.Stop()
	t.wakeLock.Release()

	return err
}
