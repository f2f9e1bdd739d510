package timer

import "github.com/charmbracelet/lipgloss"

const (
	padding  = 2
	maxWidth = 80
)

// Style holds the lipgloss styles of the timer view.
type Style struct {
	Base       lipgloss.Style
	Main       lipgloss.Style
	Secondary  lipgloss.Style
	Hint       lipgloss.Style
	Focus      lipgloss.Style
	ShortBreak lipgloss.Style
	LongBreak  lipgloss.Style
	DotOn      lipgloss.Style
	DotOff     lipgloss.Style
}

// NewStyle returns the timer styles for a dark or light terminal.
func NewStyle(dark bool) Style {
	text := lipgloss.Color("#1F2937")
	hint := lipgloss.Color("#6B7280")

	if dark {
		text = lipgloss.Color("#F9FAFB")
		hint = lipgloss.Color("#9CA3AF")
	}

	badge := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#FFFFFF")).
		Padding(0, 1).
		MarginRight(1).
		Bold(true)

	return Style{
		Base:       lipgloss.NewStyle().Padding(1, padding),
		Main:       lipgloss.NewStyle().Foreground(text).Bold(true),
		Secondary:  lipgloss.NewStyle().Foreground(text),
		Hint:       lipgloss.NewStyle().Foreground(hint),
		Focus:      badge.Background(lipgloss.Color("#E11D48")),
		ShortBreak: badge.Background(lipgloss.Color("#0D9488")),
		LongBreak:  badge.Background(lipgloss.Color("#4F46E5")),
		DotOn:      lipgloss.NewStyle().Foreground(lipgloss.Color("#E11D48")),
		DotOff:     lipgloss.NewStyle().Foreground(hint),
	}
}
