package stats

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/ayoisaiah/focusplan/internal/i18n"
	"github.com/ayoisaiah/focusplan/internal/timeutil"
	"github.com/ayoisaiah/focusplan/internal/ui"
)

const heatmapCell = "■"

// tierColors holds one colour per heatmap tier, for dark and light
// terminals.
var tierColors = map[bool][5]lipgloss.Color{
	true:  {"#2D333B", "#0E4429", "#006D32", "#26A641", "#39D353"},
	false: {"#EBEDF0", "#9BE9A8", "#40C463", "#30A14E", "#216E39"},
}

func cell(tier int) string {
	return lipgloss.NewStyle().
		Foreground(tierColors[ui.DarkTheme][tier]).
		Render(heatmapCell)
}

// RenderHeatmap lays days out as a calendar grid with one column per week
// and one row per weekday, starting on weekStart.
func RenderHeatmap(days []HeatmapDay, weekStart time.Weekday, catalog *i18n.Catalog) string {
	if len(days) == 0 {
		return ""
	}

	offset := (int(days[0].Date.Weekday()) - int(weekStart) + timeutil.DaysInWeek) %
		timeutil.DaysInWeek
	cols := (offset + len(days) + timeutil.DaysInWeek - 1) / timeutil.DaysInWeek

	grid := make([][]string, timeutil.DaysInWeek)
	for row := range grid {
		grid[row] = make([]string, cols)

		for col := range grid[row] {
			grid[row][col] = " "
		}
	}

	for i, d := range days {
		pos := offset + i
		grid[pos%timeutil.DaysInWeek][pos/timeutil.DaysInWeek] = cell(d.Tier)
	}

	var b strings.Builder

	for row, cells := range grid {
		day := time.Weekday((int(weekStart) + row) % timeutil.DaysInWeek)

		b.WriteString(ui.Faint(padRight(catalog.Weekday(day), 4)))
		b.WriteString(strings.Join(cells, ""))
		b.WriteString("\n")
	}

	b.WriteString(ui.Faint(catalog.T(i18n.StatsLess)) + " ")

	for tier := range 5 {
		b.WriteString(cell(tier))
	}

	b.WriteString(" " + ui.Faint(catalog.T(i18n.StatsMore)) + "\n")

	return b.String()
}

func padRight(s string, width int) string {
	if n := len([]rune(s)); n < width {
		return s + strings.Repeat(" ", width-n)
	}

	return s
}
