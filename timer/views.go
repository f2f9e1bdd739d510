package timer

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"

	"github.com/ayoisaiah/focusplan/internal/i18n"
	"github.com/ayoisaiah/focusplan/internal/timeutil"
	"github.com/ayoisaiah/focusplan/internal/ui"
	"github.com/ayoisaiah/focusplan/state"
)

// TaskLabel describes the active task of s: its domain, section and title
// when it exists, or a placeholder when there is none or it was deleted.
func TaskLabel(s state.State, catalog *i18n.Catalog) string {
	ref, res := s.ActiveTask()

	switch res {
	case state.Resolved:
		return ui.Paint(ref.DomainColor, "● "+ref.DomainName) +
			" › " + ref.SectionName +
			" › " + ref.Task.Title
	case state.Dangling:
		return catalog.T(i18n.TimerDeletedTask)
	default:
		return catalog.T(i18n.TimerNoTask)
	}
}

// streakDots renders one dot per focus session in the current long break
// cycle, filled for the sessions already completed.
func (t *Timer) streakDots(streak int) string {
	done := streak % t.opts.LongBreakInterval

	var s strings.Builder

	for i := range t.opts.LongBreakInterval {
		if i < done {
			s.WriteString(t.style.DotOn.Render("●"))
		} else {
			s.WriteString(t.style.DotOff.Render("○"))
		}
	}

	return s.String()
}

func (t *Timer) phaseBadge() string {
	switch t.phase {
	case ShortBreak:
		return t.style.ShortBreak.Render(t.catalog.T(i18n.TimerShortBreak))
	case LongBreak:
		return t.style.LongBreak.Render(t.catalog.T(i18n.TimerLongBreak))
	default:
		return t.style.Focus.Render(t.catalog.T(i18n.TimerFocus))
	}
}

func (t *Timer) statusHint() string {
	if !t.clock.Running() {
		return t.style.Secondary.Render("[" + t.catalog.T(i18n.TimerPaused) + "]")
	}

	timeFormat := "03:04 PM"
	if t.opts.TwentyFourHour {
		timeFormat = "15:04"
	}

	end := t.now().Add(time.Duration(t.clock.Remaining()) * time.Second)

	return t.style.Hint.Render("→ " + end.Format(timeFormat))
}

func (t *Timer) helpView() string {
	bindings := []key.Binding{
		defaultKeymap.togglePlay,
		defaultKeymap.skip,
		defaultKeymap.reset,
	}

	if !t.clock.Running() {
		bindings = append(bindings, defaultKeymap.increase, defaultKeymap.decrease)
	}

	bindings = append(bindings, defaultKeymap.resetStreak, defaultKeymap.quit)

	return t.help.ShortHelpView(bindings)
}

func (t *Timer) View() string {
	s := t.planner.State()

	var b strings.Builder

	b.WriteString(t.phaseBadge())
	b.WriteString(t.statusHint())
	b.WriteString("\n\n")
	b.WriteString(TaskLabel(s, t.catalog))
	b.WriteString("\n\n")
	b.WriteString(t.style.Main.Render(timeutil.FormatClock(t.clock.Remaining())))
	b.WriteString("\n\n")

	percent := 0.0
	if total := t.clock.Total(); total > 0 {
		percent = max(0, 1-float64(t.clock.Remaining())/float64(total))
	}

	b.WriteString(t.progress.ViewAs(percent))
	b.WriteString("\n\n")
	b.WriteString(t.streakDots(s.SessionStreak))
	b.WriteString(t.style.Hint.Render(fmt.Sprintf(
		"  %s %d · %s %d",
		t.catalog.T(i18n.TimerStreak),
		s.SessionStreak,
		t.catalog.T(i18n.TimerToday),
		t.planner.DailySessionCount(),
	)))
	b.WriteString("\n\n")
	b.WriteString(t.helpView())

	return t.style.Base.Render(b.String())
}
