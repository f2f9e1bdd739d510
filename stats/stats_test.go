package stats

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/pterm/pterm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayoisaiah/focusplan/internal/i18n"
	"github.com/ayoisaiah/focusplan/internal/models"
	"github.com/ayoisaiah/focusplan/state"
)

// 2024-05-08 is a Wednesday.
var now = time.Date(2024, 5, 8, 12, 0, 0, 0, time.UTC)

func ptr[T any](v T) *T {
	return &v
}

func entry(id string, date time.Time, mins int, taskID, domainID *string) models.SessionLog {
	return models.SessionLog{
		ID:              id,
		Date:            date,
		DurationMinutes: mins,
		TaskID:          taskID,
		DomainID:        domainID,
	}
}

// fixture builds a tree with one domain, one completed task estimated at two
// pomodoros and one open task.
func fixture() state.State {
	s := state.Default()
	s.Domains = []models.Domain{
		{
			ID:    "d1",
			Name:  "Work",
			Color: "blue",
			Sections: []models.Section{
				{
					ID:   "s1",
					Name: "Launch",
					Tasks: []models.Task{
						{ID: "t1", Title: "Write spec", Completed: true, EstimatedPomodoros: 2},
						{ID: "t2", Title: "Review", EstimatedPomodoros: 3},
					},
				},
			},
		},
	}

	return s
}

func TestComputeTotals(t *testing.T) {
	history := []models.SessionLog{
		entry("h1", now.Add(-time.Hour), 25, nil, nil),
		entry("h2", now.Add(-2*time.Hour), 25, nil, nil),
		entry("h3", now.AddDate(0, 0, -1), 40, nil, nil),
	}

	got := ComputeTotals(history, now)

	assert.Equal(t, Totals{
		TotalMinutes:  90,
		TotalHours:    1.5,
		TodaySessions: 2,
		TotalSessions: 3,
	}, got)

	assert.Equal(t, Totals{}, ComputeTotals(nil, now))
}

func TestComputeAccuracy(t *testing.T) {
	s := fixture()
	s.History = []models.SessionLog{
		entry("h1", now, 20, ptr("t1"), ptr("d1")),
		entry("h2", now, 40, ptr("t1"), ptr("d1")),
		entry("h3", now, 25, ptr("t2"), ptr("d1")),
		entry("h4", now, 25, nil, nil),
	}

	got := ComputeAccuracy(s)

	assert.Equal(t, Accuracy{
		Status:           Measured,
		EstimatedMinutes: 50,
		RealMinutes:      60,
		Percent:          83,
	}, got)
}

func TestComputeAccuracyEdgeCases(t *testing.T) {
	t.Run("no completed tasks", func(t *testing.T) {
		s := fixture()
		s.Domains[0].Sections[0].Tasks[0].Completed = false

		got := ComputeAccuracy(s)

		assert.Equal(t, NoData, got.Status)
		assert.Zero(t, got.Percent)
	})

	t.Run("estimates without logged time", func(t *testing.T) {
		got := ComputeAccuracy(fixture())

		assert.Equal(t, Unmeasured, got.Status)
		assert.Equal(t, 50, got.EstimatedMinutes)
		assert.Zero(t, got.RealMinutes)
		assert.Zero(t, got.Percent)
	})

	t.Run("estimate priced at the work duration", func(t *testing.T) {
		s := fixture()
		s.Preferences.WorkDuration = 50
		s.History = []models.SessionLog{entry("h1", now, 50, ptr("t1"), ptr("d1"))}

		got := ComputeAccuracy(s)

		assert.Equal(t, 100, got.EstimatedMinutes)
		assert.Equal(t, 200, got.Percent)
	})
}

func TestDomainDistribution(t *testing.T) {
	s := fixture()
	s.Domains = append(s.Domains, models.Domain{ID: "d2", Name: "Home", Color: "emerald"})
	s.History = []models.SessionLog{
		entry("h1", now, 25, ptr("t1"), ptr("d1")),
		entry("h2", now, 25, nil, nil),
		entry("h3", now, 50, ptr("gone"), ptr("deleted-domain")),
		entry("h4", now, 30, ptr("t1"), ptr("d1")),
		entry("h5", now, 10, nil, ptr("d2")),
	}

	got := DomainDistribution(s)

	assert.Equal(t, []DomainTotal{
		{Name: "Work", Color: "blue", Kind: Named, Minutes: 55},
		{Kind: Other, Minutes: 50},
		{Kind: Unassigned, Minutes: 25},
		{Name: "Home", Color: "emerald", Kind: Named, Minutes: 10},
	}, got)

	assert.Empty(t, DomainDistribution(state.Default()))
}

func TestHourlyDistribution(t *testing.T) {
	history := []models.SessionLog{
		entry("h1", time.Date(2024, 5, 8, 9, 15, 0, 0, time.UTC), 25, nil, nil),
		entry("h2", time.Date(2024, 5, 7, 9, 45, 0, 0, time.UTC), 25, nil, nil),
		entry("h3", time.Date(2024, 5, 7, 23, 59, 0, 0, time.UTC), 10, nil, nil),
	}

	got := HourlyDistribution(history, time.UTC)

	assert.Equal(t, 50, got[9])
	assert.Equal(t, 10, got[23])
	assert.Zero(t, got[0])

	// the same instants fall an hour later one zone east
	east := time.FixedZone("UTC+1", 3600)
	got = HourlyDistribution(history, east)

	assert.Equal(t, 50, got[10])
	assert.Equal(t, 10, got[0])
}

func TestWeekdayDistribution(t *testing.T) {
	history := []models.SessionLog{
		entry("h1", now, 25, nil, nil),                   // Wednesday
		entry("h2", now.AddDate(0, 0, -3), 40, nil, nil), // Sunday
	}

	got := WeekdayDistribution(history, time.UTC, time.Monday)

	require.Len(t, got, 7)
	assert.Equal(t, time.Monday, got[0].Day)
	assert.Equal(t, WeekdayTotal{Day: time.Wednesday, Minutes: 25}, got[2])
	assert.Equal(t, WeekdayTotal{Day: time.Sunday, Minutes: 40}, got[6])

	got = WeekdayDistribution(history, time.UTC, time.Sunday)

	assert.Equal(t, WeekdayTotal{Day: time.Sunday, Minutes: 40}, got[0])
}

func TestTier(t *testing.T) {
	cases := map[int]int{0: 0, 1: 1, 2: 1, 3: 2, 5: 2, 6: 3, 8: 3, 9: 4, 40: 4}

	for count, want := range cases {
		assert.Equal(t, want, Tier(count), "count %d", count)
	}
}

func TestHeatmap(t *testing.T) {
	var history []models.SessionLog

	for i := range 9 {
		history = append(history, entry("today", now.Add(-time.Duration(i)*time.Minute), 25, nil, nil))
	}

	history = append(history,
		entry("yesterday", now.AddDate(0, 0, -1), 25, nil, nil),
		entry("old", now.AddDate(0, 0, -HeatmapDays), 25, nil, nil),
	)

	got := Heatmap(history, now)

	require.Len(t, got, HeatmapDays)

	last := got[HeatmapDays-1]
	assert.Equal(t, time.Date(2024, 5, 8, 0, 0, 0, 0, time.UTC), last.Date)
	assert.Equal(t, 9, last.Count)
	assert.Equal(t, 4, last.Tier)

	assert.Equal(t, 1, got[HeatmapDays-2].Count)
	assert.Equal(t, 1, got[HeatmapDays-2].Tier)

	first := got[0]
	assert.Equal(t, time.Date(2023, 5, 10, 0, 0, 0, 0, time.UTC), first.Date)
	assert.Zero(t, first.Count)

	total := 0
	for _, d := range got {
		total += d.Count
	}

	assert.Equal(t, 10, total)
}

func TestComputeAndHighlights(t *testing.T) {
	s := fixture()
	s.History = []models.SessionLog{
		entry("h1", time.Date(2024, 5, 8, 9, 0, 0, 0, time.UTC), 25, ptr("t1"), ptr("d1")),
		entry("h2", time.Date(2024, 5, 8, 9, 30, 0, 0, time.UTC), 25, ptr("t1"), ptr("d1")),
		entry("h3", time.Date(2024, 5, 6, 14, 0, 0, 0, time.UTC), 25, nil, nil),
	}

	st := Compute(s, now, time.Monday)

	assert.Equal(t, 3, st.Totals.TotalSessions)
	assert.Equal(t, 2, st.Totals.TodaySessions)
	assert.Equal(t, 100, st.Accuracy.Percent)

	hour, ok := st.GoldenHour()
	assert.True(t, ok)
	assert.Equal(t, 9, hour)

	day, ok := st.BestDay()
	assert.True(t, ok)
	assert.Equal(t, time.Wednesday, day)

	empty := Compute(state.Default(), now, time.Monday)

	_, ok = empty.GoldenHour()
	assert.False(t, ok)

	_, ok = empty.BestDay()
	assert.False(t, ok)
}

func TestToJSON(t *testing.T) {
	s := fixture()
	s.History = []models.SessionLog{entry("h1", now, 20, ptr("t1"), ptr("d1"))}

	b, err := Compute(s, now, time.Monday).ToJSON()
	require.NoError(t, err)

	var decoded struct {
		Accuracy struct {
			Status  string `json:"status"`
			Percent int    `json:"percent"`
		} `json:"accuracy"`
		Totals struct {
			TotalMinutes int `json:"totalMinutes"`
		} `json:"totals"`
		Domains []struct {
			Name string `json:"name"`
			Kind string `json:"kind"`
		} `json:"domains"`
		Heatmap []json.RawMessage `json:"heatmap"`
		Hourly  []int             `json:"hourly"`
	}

	require.NoError(t, json.Unmarshal(b, &decoded))

	assert.Equal(t, "measured", decoded.Accuracy.Status)
	assert.Equal(t, 250, decoded.Accuracy.Percent)
	assert.Equal(t, 20, decoded.Totals.TotalMinutes)
	assert.Equal(t, "Work", decoded.Domains[0].Name)
	assert.Equal(t, "named", decoded.Domains[0].Kind)
	assert.Len(t, decoded.Heatmap, HeatmapDays)
	assert.Len(t, decoded.Hourly, 24)
}

func TestRender(t *testing.T) {
	pterm.DisableStyling()
	t.Cleanup(pterm.EnableStyling)

	s := fixture()
	s.History = []models.SessionLog{
		entry("h1", time.Date(2024, 5, 8, 9, 0, 0, 0, time.UTC), 60, ptr("t1"), ptr("d1")),
		entry("h2", time.Date(2024, 5, 8, 10, 0, 0, 0, time.UTC), 30, nil, nil),
	}

	catalog := i18n.New()

	var buf bytes.Buffer

	require.NoError(t, Compute(s, now, time.Monday).Render(&buf, catalog))

	out := buf.String()

	assert.Contains(t, out, "Statistics Center")
	assert.Contains(t, out, "Total Hours: 1.5")
	assert.Contains(t, out, "83%")
	assert.Contains(t, out, "Underestimating")
	assert.Contains(t, out, "Unassigned")
	assert.Contains(t, out, "Golden Hour: 09:00")
	assert.Contains(t, out, "Best Day: Wed")
	assert.Contains(t, out, "Less")

	catalog.SetLanguage(models.Spanish)
	buf.Reset()

	require.NoError(t, Compute(state.Default(), now, time.Monday).Render(&buf, catalog))

	out = buf.String()

	assert.Contains(t, out, "Centro de Estadísticas")
	assert.Contains(t, out, "No hay datos suficientes")
}

func TestRenderHeatmapGrid(t *testing.T) {
	pterm.DisableStyling()
	t.Cleanup(pterm.EnableStyling)

	days := Heatmap(nil, now)

	out := RenderHeatmap(days, time.Monday, i18n.New())

	lines := bytes.Split([]byte(out), []byte("\n"))

	// seven weekday rows, the legend and a trailing newline
	require.Len(t, lines, 9)
	assert.True(t, bytes.HasPrefix(lines[0], []byte("Mon")))
	assert.True(t, bytes.HasPrefix(lines[6], []byte("Sun")))
	assert.Contains(t, string(lines[7]), "More")
}

func TestHistory(t *testing.T) {
	s := fixture()
	s.History = []models.SessionLog{
		entry("old", now.AddDate(0, 0, -10), 25, nil, nil),
		entry("gone", now.Add(-2*time.Hour), 25, ptr("missing"), ptr("d1")),
		entry("work", now.Add(-time.Hour), 50, ptr("t1"), ptr("d1")),
	}

	got := History(s, time.Time{})
	require.Len(t, got, 3)

	assert.Equal(t, []string{"work", "gone", "old"}, []string{got[0].ID, got[1].ID, got[2].ID})
	assert.Equal(t, state.Resolved, got[0].Resolution)
	assert.Equal(t, "Write spec", got[0].Task.Task.Title)
	assert.Equal(t, state.Dangling, got[1].Resolution)
	assert.Nil(t, got[1].Task)
	assert.Equal(t, state.Unassigned, got[2].Resolution)

	recent := History(s, now.AddDate(0, 0, -1))
	assert.Len(t, recent, 2)
}

func TestPrintHistory(t *testing.T) {
	s := fixture()
	s.History = []models.SessionLog{
		entry("0123456789ab", now.Add(-time.Hour), 50, ptr("t1"), ptr("d1")),
		entry("free", now.Add(-3*time.Hour), 25, nil, nil),
	}

	var buf bytes.Buffer

	require.NoError(t, PrintHistory(&buf, History(s, time.Time{}), i18n.New(), now))

	out := buf.String()
	assert.Contains(t, out, "01234567")
	assert.NotContains(t, out, "0123456789ab")
	assert.Contains(t, out, "Write spec")
	assert.Contains(t, out, "Free session")
	assert.Contains(t, out, "1 hour ago")

	buf.Reset()
	require.NoError(t, PrintHistory(&buf, nil, i18n.New(), now))
	assert.Contains(t, buf.String(), "No sessions recorded yet.")
}
