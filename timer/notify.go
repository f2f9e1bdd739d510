package timer

import (
	"log/slog"

	"github.com/gen2brain/beeep"

	"github.com/ayoisaiah/focusplan/internal/i18n"
)

// Notifier is told when a phase runs to completion.
type Notifier interface {
	PhaseComplete(completed Phase)
}

// DesktopNotifier shows a desktop notification and plays a chime. Failures
// are logged and otherwise ignored.
type DesktopNotifier struct {
	catalog *i18n.Catalog
	notify  func(title, message string) error
	play    func() error
	popup   bool
	sound   bool
}

// NewDesktopNotifier returns a notifier that shows a popup if popup is set
// and plays the chime if sound is set.
func NewDesktopNotifier(catalog *i18n.Catalog, popup, sound bool) *DesktopNotifier {
	return &DesktopNotifier{
		catalog: catalog,
		popup:   popup,
		sound:   sound,
		notify: func(title, message string) error {
			return beeep.Notify(title, message, "")
		},
		play: playChime,
	}
}

// messages returns the localised title and body for a completed phase.
func (n *DesktopNotifier) messages(completed Phase) (title, body string) {
	if completed == Focus {
		return n.catalog.T(i18n.TimerComplete), n.catalog.T(i18n.TimerCompleteBody)
	}

	return n.catalog.T(i18n.TimerBreakComplete), n.catalog.T(i18n.TimerBreakBody)
}

func (n *DesktopNotifier) PhaseComplete(completed Phase) {
	if n.popup {
		title, body := n.messages(completed)

		if err := n.notify(title, body); err != nil {
			slog.Warn(
				"unable to display notification",
				slog.Any("error", err),
			)
		}
	}

	if n.sound {
		if err := n.play(); err != nil {
			slog.Warn(
				"unable to play sound",
				slog.Any("error", err),
			)
		}
	}
}
