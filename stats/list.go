package stats

import (
	"cmp"
	"fmt"
	"io"
	"slices"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/pterm/pterm"

	"github.com/ayoisaiah/focusplan/internal/i18n"
	"github.com/ayoisaiah/focusplan/internal/models"
	"github.com/ayoisaiah/focusplan/internal/ui"
	"github.com/ayoisaiah/focusplan/state"
)

// ShortIDLen is the number of id characters shown in tables.
const ShortIDLen = 8

// HistoryEntry is a session log with its task reference resolved.
type HistoryEntry struct {
	Date       time.Time        `json:"date"`
	Task       *state.TaskRef   `json:"task,omitempty"`
	ID         string           `json:"id"`
	Resolution state.Resolution `json:"resolution"`
	Minutes    int              `json:"durationMinutes"`
}

// History returns the sessions logged at or after since, newest first. A
// zero since returns the whole history.
func History(s state.State, since time.Time) []HistoryEntry {
	entries := make([]HistoryEntry, 0, len(s.History))

	for _, h := range s.History {
		if !since.IsZero() && h.Date.Before(since) {
			continue
		}

		e := HistoryEntry{
			ID:      h.ID,
			Date:    h.Date,
			Minutes: h.DurationMinutes,
		}

		ref, res := s.ResolveTask(h.TaskID)
		if res == state.Resolved {
			e.Task = &ref
		}

		e.Resolution = res

		entries = append(entries, e)
	}

	slices.SortStableFunc(entries, func(a, b HistoryEntry) int {
		return cmp.Compare(b.Date.UnixNano(), a.Date.UnixNano())
	})

	return entries
}

// Label describes what a session was spent on.
func (e HistoryEntry) Label(catalog *i18n.Catalog) string {
	switch e.Resolution {
	case state.Resolved:
		return ui.Paint(e.Task.DomainColor, e.Task.DomainName) + " › " + e.Task.Task.Title
	case state.Dangling:
		return ui.Faint(catalog.T(i18n.StatsDeletedItem))
	default:
		return catalog.T(i18n.StatsFreeSession)
	}
}

func shortID(id string) string {
	if len(id) > ShortIDLen {
		return id[:ShortIDLen]
	}

	return id
}

// PrintHistory writes entries as a table. Relative dates are shown for
// English only.
func PrintHistory(
	w io.Writer,
	entries []HistoryEntry,
	catalog *i18n.Catalog,
	now time.Time,
) error {
	if len(entries) == 0 {
		_, err := fmt.Fprintln(w, pterm.Info.Sprint(catalog.T(i18n.StatsEmptyHistory)))
		return err
	}

	rows := [][]string{
		{
			"ID",
			catalog.T(i18n.StatsDate),
			catalog.T(i18n.StatsDuration),
			catalog.T(i18n.StatsTask),
		},
	}

	for _, e := range entries {
		date := e.Date.In(now.Location()).Format("2006-01-02 15:04")

		if catalog.Language() == models.English {
			date += " (" + humanize.RelTime(e.Date, now, "ago", "from now") + ")"
		}

		rows = append(rows, []string{
			shortID(e.ID),
			date,
			fmt.Sprintf("%d %s", e.Minutes, catalog.T(i18n.SettingsMinutes)),
			e.Label(catalog),
		})
	}

	return ui.PrintTable(rows, w)
}
