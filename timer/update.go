package timer

import (
	"context"
	"log/slog"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/davecgh/go-spew/spew"
)

const minuteSecs = 60

// handleTick advances the phase once the countdown has run out.
func (t *Timer) handleTick() (tea.Model, tea.Cmd) {
	if !t.clock.Expired() {
		t.syncWakeLock()
		return t, t.waitForTick()
	}

	return t, tea.Batch(t.completePhase(), t.waitForTick())
}

func (t *Timer) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, defaultKeymap.togglePlay):
		t.clock.Toggle()
		t.syncWakeLock()

	case key.Matches(msg, defaultKeymap.reset):
		t.clock.Reset()
		t.syncWakeLock()

	case key.Matches(msg, defaultKeymap.skip):
		t.advancePhase()

	case key.Matches(msg, defaultKeymap.increase):
		if !t.clock.Running() {
			t.clock.Set(t.clock.Remaining() + minuteSecs)
		}

	case key.Matches(msg, defaultKeymap.decrease):
		if !t.clock.Running() && t.clock.Remaining() > minuteSecs {
			t.clock.Set(t.clock.Remaining() - minuteSecs)
		}

	case key.Matches(msg, defaultKeymap.resetStreak):
		t.planner.ResetSessionStreak()

	case key.Matches(msg, defaultKeymap.quit):
		t.clock.Stop()
		t.wakeLock.Release()

		return t, tea.Quit
	}

	return t, nil
}

func (t *Timer) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if _, ok := msg.(tickMsg); !ok &&
		slog.Default().Enabled(context.Background(), slog.LevelDebug) {
		slog.Debug("tea message", slog.String("msg", spew.Sdump(msg)))
	}

	switch msg := msg.(type) {
	case tickMsg:
		return t.handleTick()

	case tea.KeyMsg:
		return t.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		t.progress.Width = min(msg.Width-padding*2-4, maxWidth)

		return t, nil
	}

	return t, nil
}
