package timer

import "github.com/charmbracelet/bubbles/key"

type keymap struct {
	togglePlay  key.Binding
	reset       key.Binding
	skip        key.Binding
	increase    key.Binding
	decrease    key.Binding
	resetStreak key.Binding
	quit        key.Binding
}

var defaultKeymap = keymap{
	togglePlay: key.NewBinding(
		key.WithKeys(" ", "p"),
		key.WithHelp("space", "play/pause"),
	),
	reset: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "reset"),
	),
	skip: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "skip"),
	),
	increase: key.NewBinding(
		key.WithKeys("+", "="),
		key.WithHelp("+", "add a minute"),
	),
	decrease: key.NewBinding(
		key.WithKeys("-"),
		key.WithHelp("-", "remove a minute"),
	),
	resetStreak: key.NewBinding(
		key.WithKeys("x"),
		key.WithHelp("x", "reset streak"),
	),
	quit: key.NewBinding(
		key.WithKeys("ctrl+c", "q"),
		key.WithHelp("q", "quit"),
	),
}
