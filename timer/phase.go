package timer

import "github.com/ayoisaiah/focusplan/internal/models"

// Phase is a segment of the focus/break cycle.
type Phase string

const (
	Focus      Phase = "focus"
	ShortBreak Phase = "short_break"
	LongBreak  Phase = "long_break"
)

// DefaultLongBreakInterval is the number of focus sessions per long break.
const DefaultLongBreakInterval = 4

// NextPhase returns the phase that follows current. streak is the session
// streak after the completed phase was logged.
func NextPhase(current Phase, streak, interval int) Phase {
	if current != Focus {
		return Focus
	}

	if interval <= 0 {
		interval = DefaultLongBreakInterval
	}

	if streak > 0 && streak%interval == 0 {
		return LongBreak
	}

	return ShortBreak
}

// Minutes returns the configured length of p.
func (p Phase) Minutes(prefs models.Preferences) int {
	switch p {
	case ShortBreak:
		return prefs.ShortBreakDuration
	case LongBreak:
		return prefs.LongBreakDuration
	default:
		return prefs.WorkDuration
	}
}

// Seconds returns the configured length of p in seconds.
func (p Phase) Seconds(prefs models.Preferences) int {
	return p.Minutes(prefs) * 60
}
