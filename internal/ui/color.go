// Package ui holds terminal colour and table helpers shared by the CLI and
// the timer
package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/pterm/pterm"
)

var DarkTheme bool

// Palette maps the colour tags a domain may carry to hex colours.
var Palette = map[string]string{
	"blue":    "#3B82F6",
	"emerald": "#10B981",
	"orange":  "#F97316",
	"purple":  "#A855F7",
	"rose":    "#F43F5E",
	"amber":   "#F59E0B",
	"cyan":    "#06B6D4",
	"slate":   "#64748B",
}

const fallbackColor = "#9CA3AF"

// Swatch resolves a domain colour tag. Hex values are used as is and
// unknown tags resolve to grey.
func Swatch(tag string) lipgloss.Color {
	tag = strings.ToLower(strings.TrimSpace(tag))

	if hex, ok := Palette[tag]; ok {
		return lipgloss.Color(hex)
	}

	if strings.HasPrefix(tag, "#") {
		return lipgloss.Color(tag)
	}

	return lipgloss.Color(fallbackColor)
}

// Paint renders text in the colour of a domain tag.
func Paint(tag, text string) string {
	return lipgloss.NewStyle().Foreground(Swatch(tag)).Render(text)
}

func Green(a any) string {
	if DarkTheme {
		return pterm.LightGreen(a)
	}

	return pterm.Green(a)
}

func Yellow(a any) string {
	if DarkTheme {
		return pterm.LightYellow(a)
	}

	return pterm.Yellow(a)
}

func Red(a any) string {
	if DarkTheme {
		return pterm.LightRed(a)
	}

	return pterm.Red(a)
}

func Faint(a any) string {
	return pterm.Gray(a)
}

func Highlight(a any) string {
	if DarkTheme {
		return pterm.LightWhite(a)
	}

	return pterm.Black(a)
}

// KnownColor reports whether tag names a palette colour or is a hex value.
func KnownColor(tag string) bool {
	tag = strings.ToLower(strings.TrimSpace(tag))

	if _, ok := Palette[tag]; ok {
		return true
	}

	if !strings.HasPrefix(tag, "#") || (len(tag) != 4 && len(tag) != 7) {
		return false
	}

	return strings.Trim(tag[1:], "0123456789abcdef") == ""
}
