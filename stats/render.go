package stats

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/pterm/pterm"

	"github.com/ayoisaiah/focusplan/internal/i18n"
	"github.com/ayoisaiah/focusplan/internal/ui"
)

const barChartChar = "▇"

func section(title string) string {
	return "\n" + ui.Highlight(pterm.Bold.Sprint(title)) + "\n"
}

// bucketName returns the display name of a domain bucket.
func bucketName(d DomainTotal, catalog *i18n.Catalog) string {
	switch d.Kind {
	case Unassigned:
		return catalog.T(i18n.StatsUnassigned)
	case Other:
		return catalog.T(i18n.StatsOther)
	default:
		return ui.Paint(d.Color, d.Name)
	}
}

func barChart(bars pterm.Bars) (string, error) {
	return pterm.DefaultBarChart.WithHorizontalBarCharacter(barChartChar).
		WithHorizontal().
		WithShowValue().
		WithBars(bars).
		Srender()
}

func (s *Stats) overview(catalog *i18n.Catalog) string {
	var b strings.Builder

	b.WriteString(section(catalog.T(i18n.StatsOverview)))

	fmt.Fprintf(&b, "%s: %s\n", catalog.T(i18n.StatsTotalHours), ui.Green(s.Totals.TotalHours))
	fmt.Fprintf(&b, "%s: %s\n", catalog.T(i18n.StatsSessionsToday), ui.Green(s.Totals.TodaySessions))
	fmt.Fprintf(&b, "%s: %s\n", catalog.T(i18n.StatsTotalSessions), ui.Green(s.Totals.TotalSessions))

	b.WriteString(section(catalog.T(i18n.StatsAccuracy)))

	a := s.Accuracy

	switch a.Status {
	case Measured:
		verdict := ""

		switch {
		case a.Percent < 100:
			verdict = " (" + catalog.T(i18n.StatsUnderestimate) + ")"
		case a.Percent > 100:
			verdict = " (" + catalog.T(i18n.StatsOverestimate) + ")"
		}

		fmt.Fprintf(&b, "%s%s\n", ui.Green(fmt.Sprintf("%d%%", a.Percent)), verdict)
	default:
		b.WriteString(ui.Faint(catalog.T(i18n.StatsNoData)) + "\n")
	}

	fmt.Fprintf(
		&b,
		"%s: %d / %d %s\n",
		catalog.T(i18n.StatsRealVsEst),
		a.RealMinutes,
		a.EstimatedMinutes,
		catalog.T(i18n.SettingsMinutes),
	)

	return b.String()
}

func (s *Stats) domainChart(catalog *i18n.Catalog) (string, error) {
	out := section(catalog.T(i18n.StatsAreaTime))

	if len(s.Domains) == 0 {
		return out + ui.Faint(catalog.T(i18n.StatsNoData)) + "\n", nil
	}

	bars := make(pterm.Bars, 0, len(s.Domains))

	for _, d := range s.Domains {
		bars = append(bars, pterm.Bar{
			Label: bucketName(d, catalog),
			Value: d.Minutes,
		})
	}

	chart, err := barChart(bars)

	return out + chart, err
}

func (s *Stats) timeCharts(catalog *i18n.Catalog) (string, error) {
	var b strings.Builder

	b.WriteString(section(catalog.T(i18n.StatsTime)))

	if s.Totals.TotalSessions == 0 {
		b.WriteString(ui.Faint(catalog.T(i18n.StatsNoData)) + "\n")
		return b.String(), nil
	}

	if h, ok := s.GoldenHour(); ok {
		fmt.Fprintf(&b, "%s: %s\n", catalog.T(i18n.StatsGoldenHour), ui.Green(fmt.Sprintf("%02d:00", h)))
	}

	if d, ok := s.BestDay(); ok {
		fmt.Fprintf(&b, "%s: %s\n", catalog.T(i18n.StatsBestDay), ui.Green(catalog.Weekday(d)))
	}

	hourBars := make(pterm.Bars, 0, len(s.Hourly))

	for h, mins := range s.Hourly {
		hourBars = append(hourBars, pterm.Bar{
			Label: fmt.Sprintf("%02d:00", h),
			Value: mins,
		})
	}

	chart, err := barChart(hourBars)
	if err != nil {
		return "", err
	}

	b.WriteString(chart)

	dayBars := make(pterm.Bars, 0, len(s.Weekdays))

	for _, d := range s.Weekdays {
		dayBars = append(dayBars, pterm.Bar{
			Label: catalog.Weekday(d.Day),
			Value: d.Minutes,
		})
	}

	chart, err = barChart(dayBars)
	if err != nil {
		return "", err
	}

	b.WriteString("\n" + chart)

	return b.String(), nil
}

// Render prints the stats in the catalog's language.
func (s *Stats) Render(w io.Writer, catalog *i18n.Catalog) error {
	header := pterm.DefaultHeader.WithBackgroundStyle(pterm.NewStyle(pterm.BgRed)).
		WithTextStyle(pterm.NewStyle(pterm.FgWhite)).
		Sprintln(catalog.T(i18n.StatsTitle))

	domains, err := s.domainChart(catalog)
	if err != nil {
		return err
	}

	times, err := s.timeCharts(catalog)
	if err != nil {
		return err
	}

	heatmap := section(catalog.T(i18n.StatsActivity)) +
		RenderHeatmap(s.Heatmap, s.weekStart(), catalog)

	_, err = fmt.Fprintln(w, strings.TrimSpace(fmt.Sprint(
		header,
		s.overview(catalog),
		domains,
		times,
		heatmap,
	)))

	return err
}

// weekStart is the first day of the weekday breakdown.
func (s *Stats) weekStart() time.Weekday {
	if len(s.Weekdays) == 0 {
		return time.Monday
	}

	return s.Weekdays[0].Day
}
