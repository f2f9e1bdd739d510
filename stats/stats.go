// Package stats derives focusplan analytics from the session history and
// task tree. Every computation is read-only and depends only on its inputs.
package stats

import (
	"cmp"
	"encoding/json"
	"slices"
	"time"

	"github.com/ayoisaiah/focusplan/internal/models"
	"github.com/ayoisaiah/focusplan/internal/timeutil"
	"github.com/ayoisaiah/focusplan/state"
)

// HeatmapDays is the number of trailing days covered by the heatmap.
const HeatmapDays = 365

// Totals summarises the whole history.
type Totals struct {
	TotalMinutes  int     `json:"totalMinutes"`
	TotalHours    float64 `json:"totalHours"`
	TodaySessions int     `json:"todaySessions"`
	TotalSessions int     `json:"totalSessions"`
}

// AccuracyStatus qualifies an Accuracy percentage.
type AccuracyStatus string

const (
	// NoData means no completed task carries an estimate.
	NoData AccuracyStatus = "no_data"
	// Unmeasured means estimates exist but no time was logged against them.
	Unmeasured AccuracyStatus = "unmeasured"
	// Measured means Percent holds a meaningful ratio.
	Measured AccuracyStatus = "measured"
)

// Accuracy compares estimated and logged minutes of completed tasks.
type Accuracy struct {
	Status           AccuracyStatus `json:"status"`
	EstimatedMinutes int            `json:"estimatedMinutes"`
	RealMinutes      int            `json:"realMinutes"`
	Percent          int            `json:"percent"`
}

// BucketKind distinguishes named domains from the catch-all buckets.
type BucketKind string

const (
	Named BucketKind = "named"
	// Unassigned collects sessions logged without an active task.
	Unassigned BucketKind = "unassigned"
	// Other collects sessions whose domain no longer exists.
	Other BucketKind = "other"
)

// DomainTotal is the time logged against one domain bucket.
type DomainTotal struct {
	Name    string     `json:"name,omitempty"`
	Color   string     `json:"color,omitempty"`
	Kind    BucketKind `json:"kind"`
	Minutes int        `json:"minutes"`
}

// WeekdayTotal is the time logged on one day of the week.
type WeekdayTotal struct {
	Day     time.Weekday `json:"day"`
	Minutes int          `json:"minutes"`
}

// HeatmapDay is the number of sessions logged on one calendar day.
type HeatmapDay struct {
	Date  time.Time `json:"date"`
	Count int       `json:"count"`
	Tier  int       `json:"tier"`
}

// Stats bundles every analytic for one point in time.
type Stats struct {
	GeneratedAt time.Time      `json:"generatedAt"`
	Domains     []DomainTotal  `json:"domains"`
	Weekdays    []WeekdayTotal `json:"weekdays"`
	Heatmap     []HeatmapDay   `json:"heatmap"`
	Accuracy    Accuracy       `json:"accuracy"`
	Totals      Totals         `json:"totals"`
	Hourly      [24]int        `json:"hourly"`
}

// ComputeTotals sums the history. Today is the calendar day of now in now's
// location.
func ComputeTotals(history []models.SessionLog, now time.Time) Totals {
	var t Totals

	for _, h := range history {
		t.TotalMinutes += h.DurationMinutes

		if timeutil.SameDay(h.Date, now) {
			t.TodaySessions++
		}
	}

	t.TotalSessions = len(history)
	t.TotalHours = timeutil.MinsToHours(t.TotalMinutes)

	return t
}

// ComputeAccuracy compares the estimates of completed tasks, priced at
// workDuration minutes per pomodoro, with the minutes logged against them.
func ComputeAccuracy(s state.State) Accuracy {
	logged := make(map[string]int)

	for _, h := range s.History {
		if h.TaskID != nil {
			logged[*h.TaskID] += h.DurationMinutes
		}
	}

	var a Accuracy

	for _, d := range s.Domains {
		for _, sec := range d.Sections {
			for _, task := range sec.Tasks {
				if !task.Completed || task.EstimatedPomodoros <= 0 {
					continue
				}

				a.EstimatedMinutes += task.EstimatedPomodoros * s.Preferences.WorkDuration
				a.RealMinutes += logged[task.ID]
			}
		}
	}

	switch {
	case a.EstimatedMinutes == 0:
		a.Status = NoData
	case a.RealMinutes == 0:
		a.Status = Unmeasured
	default:
		a.Status = Measured
		a.Percent = timeutil.Round(
			float64(a.EstimatedMinutes) / float64(a.RealMinutes) * 100,
		)
	}

	return a
}

// DomainDistribution groups logged minutes by the name of the domain each
// session was recorded against, largest first. Sessions without a domain
// fall into the Unassigned bucket and sessions whose domain was deleted
// fall into the Other bucket.
func DomainDistribution(s state.State) []DomainTotal {
	var (
		totals []DomainTotal
		index  = make(map[string]int)
	)

	add := func(key string, bucket DomainTotal, minutes int) {
		i, ok := index[key]
		if !ok {
			i = len(totals)
			index[key] = i
			totals = append(totals, bucket)
		}

		totals[i].Minutes += minutes
	}

	for _, h := range s.History {
		if h.DomainID == nil {
			add("\x00unassigned", DomainTotal{Kind: Unassigned}, h.DurationMinutes)
			continue
		}

		d, ok := s.FindDomain(*h.DomainID)
		if !ok {
			add("\x00other", DomainTotal{Kind: Other}, h.DurationMinutes)
			continue
		}

		add(d.Name, DomainTotal{
			Name:  d.Name,
			Color: d.Color,
			Kind:  Named,
		}, h.DurationMinutes)
	}

	slices.SortStableFunc(totals, func(a, b DomainTotal) int {
		return cmp.Compare(b.Minutes, a.Minutes)
	})

	return totals
}

// HourlyDistribution sums logged minutes by hour of day in loc.
func HourlyDistribution(history []models.SessionLog, loc *time.Location) [24]int {
	var hours [24]int

	for _, h := range history {
		hours[h.Date.In(loc).Hour()] += h.DurationMinutes
	}

	return hours
}

// WeekdayDistribution sums logged minutes by day of week in loc. The result
// always has seven entries and starts on weekStart.
func WeekdayDistribution(
	history []models.SessionLog,
	loc *time.Location,
	weekStart time.Weekday,
) []WeekdayTotal {
	var days [timeutil.DaysInWeek]int

	for _, h := range history {
		days[h.Date.In(loc).Weekday()] += h.DurationMinutes
	}

	totals := make([]WeekdayTotal, timeutil.DaysInWeek)

	for i := range totals {
		day := time.Weekday((int(weekStart) + i) % timeutil.DaysInWeek)
		totals[i] = WeekdayTotal{Day: day, Minutes: days[day]}
	}

	return totals
}

// Tier maps a daily session count to a heatmap intensity from 0 to 4.
func Tier(count int) int {
	switch {
	case count <= 0:
		return 0
	case count <= 2:
		return 1
	case count <= 5:
		return 2
	case count <= 8:
		return 3
	default:
		return 4
	}
}

// Heatmap counts the sessions on each of the HeatmapDays days ending with
// the day of now, oldest first.
func Heatmap(history []models.SessionLog, now time.Time) []HeatmapDay {
	loc := now.Location()

	counts := make(map[string]int)

	for _, h := range history {
		counts[h.Date.In(loc).Format(time.DateOnly)]++
	}

	today := timeutil.RoundToStart(now)
	days := make([]HeatmapDay, HeatmapDays)

	for i := range days {
		date := today.AddDate(0, 0, i-(HeatmapDays-1))
		count := counts[date.Format(time.DateOnly)]

		days[i] = HeatmapDay{
			Date:  date,
			Count: count,
			Tier:  Tier(count),
		}
	}

	return days
}

// Compute gathers every analytic of s as of now. Weekly breakdowns start on
// weekStart.
func Compute(s state.State, now time.Time, weekStart time.Weekday) *Stats {
	loc := now.Location()

	return &Stats{
		GeneratedAt: now,
		Totals:      ComputeTotals(s.History, now),
		Accuracy:    ComputeAccuracy(s),
		Domains:     DomainDistribution(s),
		Hourly:      HourlyDistribution(s.History, loc),
		Weekdays:    WeekdayDistribution(s.History, loc, weekStart),
		Heatmap:     Heatmap(s.History, now),
	}
}

// GoldenHour returns the hour of day with the most logged minutes. It
// reports false when nothing was logged.
func (s *Stats) GoldenHour() (int, bool) {
	best := 0

	for h, mins := range s.Hourly {
		if mins > s.Hourly[best] {
			best = h
		}
	}

	return best, s.Hourly[best] > 0
}

// BestDay returns the weekday with the most logged minutes. It reports
// false when nothing was logged.
func (s *Stats) BestDay() (time.Weekday, bool) {
	if len(s.Weekdays) == 0 {
		return time.Sunday, false
	}

	best := s.Weekdays[0]

	for _, d := range s.Weekdays[1:] {
		if d.Minutes > best.Minutes {
			best = d
		}
	}

	return best.Day, best.Minutes > 0
}

// ToJSON encodes the stats as indented JSON.
func (s *Stats) ToJSON() ([]byte, error) {
	return json.MarshalIndent(s, "", "  ")
}
