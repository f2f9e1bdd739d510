package app

import (
	"encoding/json"
	"fmt"
	"slices"
	"strconv"
	"time"

	"github.com/maruel/natural"
	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/focusplan/internal/i18n"
	"github.com/ayoisaiah/focusplan/internal/models"
	"github.com/ayoisaiah/focusplan/internal/timeutil"
	"github.com/ayoisaiah/focusplan/internal/ui"
	"github.com/ayoisaiah/focusplan/state"
	"github.com/ayoisaiah/focusplan/stats"
)

const (
	sortCreated = "created"
	sortName    = "name"
)

const noDomainsMsg = "No domains yet. Add one with: focusplan domain add NAME"

// sortDomains orders domains by the given key. Creation order is the
// stored order.
func sortDomains(domains []models.Domain, by string) ([]models.Domain, error) {
	switch by {
	case sortCreated, "":
		return domains, nil
	case sortName:
		sorted := slices.Clone(domains)

		slices.SortStableFunc(sorted, func(a, b models.Domain) int {
			switch {
			case natural.Less(a.Name, b.Name):
				return -1
			case natural.Less(b.Name, a.Name):
				return 1
			default:
				return 0
			}
		})

		return sorted, nil
	default:
		return nil, errInvalidSort.Fmt(by)
	}
}

// domainListAction prints a table of domains with their task counts and
// logged minutes.
func (e *env) domainListAction(ctx *cli.Context) error {
	s := e.planner.State()

	domains, err := sortDomains(s.Domains, ctx.String("sort"))
	if err != nil {
		return err
	}

	if len(domains) == 0 {
		e.info(noDomainsMsg)
		return nil
	}

	logged := make(map[string]int)

	for _, h := range s.History {
		if h.DomainID != nil {
			logged[*h.DomainID] += h.DurationMinutes
		}
	}

	rows := [][]string{{"ID", "NAME", "SECTIONS", "TASKS", "DONE", "LOGGED"}}

	for _, d := range domains {
		var tasks, done int

		for _, sec := range d.Sections {
			for _, t := range sec.Tasks {
				tasks++

				if t.Completed {
					done++
				}
			}
		}

		hrs, mins := timeutil.MinsToHoursAndMins(logged[d.ID])

		rows = append(rows, []string{
			shortID(d.ID),
			ui.Paint(d.Color, d.Name),
			strconv.Itoa(len(d.Sections)),
			strconv.Itoa(tasks),
			strconv.Itoa(done),
			fmt.Sprintf("%dh %dm", hrs, mins),
		})
	}

	return ui.PrintTable(rows, e.out)
}

// taskLine renders one task of the tree.
func taskLine(t models.Task, active bool) string {
	box := "[ ]"
	if t.Completed {
		box = ui.Green("[x]")
	}

	line := fmt.Sprintf("%s %s ×%d %s", box, t.Title, t.EstimatedPomodoros, ui.Faint(shortID(t.ID)))

	if active {
		line = ui.Yellow("▶ ") + line
	}

	return line
}

// treeList flattens the domain tree into pterm's leveled list.
func treeList(s state.State) pterm.LeveledList {
	var list pterm.LeveledList

	for _, d := range s.Domains {
		list = append(list, pterm.LeveledListItem{
			Level: 0,
			Text:  ui.Paint(d.Color, "● "+d.Name) + " " + ui.Faint(shortID(d.ID)),
		})

		for _, sec := range d.Sections {
			list = append(list, pterm.LeveledListItem{
				Level: 1,
				Text:  sec.Name + " " + ui.Faint(shortID(sec.ID)),
			})

			for _, t := range sec.Tasks {
				active := s.ActiveTaskID != nil && *s.ActiveTaskID == t.ID

				list = append(list, pterm.LeveledListItem{
					Level: 2,
					Text:  taskLine(t, active),
				})
			}
		}
	}

	return list
}

// treeAction prints every domain, section and task.
func (e *env) treeAction(_ *cli.Context) error {
	s := e.planner.State()

	if len(s.Domains) == 0 {
		e.info(noDomainsMsg)
		return nil
	}

	str, err := pterm.DefaultTree.
		WithRoot(putils.TreeFromLeveledList(treeList(s))).
		Srender()
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(e.out, str)

	return err
}

// historyAction prints the logged sessions, newest first.
func (e *env) historyAction(ctx *cli.Context) error {
	var since time.Time

	if v := ctx.String("since"); v != "" {
		t, err := timeutil.FromStr(v, e.now())
		if err != nil {
			return errInvalidSince.Fmt(v).Wrap(err)
		}

		since = t
	}

	entries := stats.History(e.planner.State(), since)

	if ctx.Bool("json") {
		b, err := json.MarshalIndent(entries, "", "  ")
		if err != nil {
			return err
		}

		_, err = fmt.Fprintln(e.out, string(b))

		return err
	}

	return stats.PrintHistory(e.out, entries, e.catalog, e.now())
}

// printPreferences prints the stored preferences in the active language.
func (e *env) printPreferences() error {
	p := e.planner.State().Preferences
	mins := e.catalog.T(i18n.SettingsMinutes)

	rows := [][]string{
		{e.catalog.T(i18n.SettingsTitle), ""},
		{e.catalog.T(i18n.SettingsLanguage), string(p.Language)},
		{e.catalog.T(i18n.SettingsWork), fmt.Sprintf("%d %s", p.WorkDuration, mins)},
		{e.catalog.T(i18n.SettingsShort), fmt.Sprintf("%d %s", p.ShortBreakDuration, mins)},
		{e.catalog.T(i18n.SettingsLong), fmt.Sprintf("%d %s", p.LongBreakDuration, mins)},
		{e.catalog.T(i18n.SettingsAutoStartBreaks), strconv.FormatBool(p.AutoStartBreaks)},
	}

	return ui.PrintTable(rows, e.out)
}

func (e *env) prefsShowAction(_ *cli.Context) error {
	return e.printPreferences()
}
