// Package state holds the focusplan entity tree, preferences and session
// history as an immutable value. Every mutation returns a new State and
// leaves the receiver untouched, so a State can be shared freely as a
// consistent snapshot.
package state

import (
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/ayoisaiah/focusplan/internal/models"
	"github.com/ayoisaiah/focusplan/internal/timeutil"
)

// newID generates entity and session log identifiers.
var newID = uuid.NewString

// State is the complete persisted application state.
type State struct {
	ActiveTaskID  *string             `json:"activeTaskId"  yaml:"activeTaskId"  toml:"activeTaskId,omitempty"`
	Domains       []models.Domain     `json:"domains"       yaml:"domains"       toml:"domains"`
	History       []models.SessionLog `json:"history"       yaml:"history"       toml:"history"`
	Preferences   models.Preferences  `json:"preferences"   yaml:"preferences"   toml:"preferences"`
	SessionStreak int                 `json:"sessionStreak" yaml:"sessionStreak" toml:"sessionStreak"`
}

// PreferencesPatch describes a partial preferences update. Nil fields are
// left unchanged.
type PreferencesPatch struct {
	WorkDuration       *int
	ShortBreakDuration *int
	LongBreakDuration  *int
	AutoStartBreaks    *bool
	Language           *models.Language
}

// New returns an empty state with the given preferences.
func New(prefs models.Preferences) State {
	return State{
		Domains:     []models.Domain{},
		History:     []models.SessionLog{},
		Preferences: prefs,
	}
}

// Default returns an empty state with default preferences.
func Default() State {
	return New(models.DefaultPreferences())
}

// AddDomain appends a new domain with no sections.
func (s State) AddDomain(name, color string) State {
	d := models.Domain{
		ID:       newID(),
		Name:     name,
		Color:    color,
		Sections: []models.Section{},
	}

	s.Domains = append(slices.Clone(s.Domains), d)

	return s
}

// DeleteDomain removes a domain together with its sections and tasks.
func (s State) DeleteDomain(id string) State {
	s.Domains = deleteByID(s.Domains, id, func(d models.Domain) string {
		return d.ID
	})

	return s
}

// AddSection appends a section to the matching domain.
func (s State) AddSection(domainID, name string) State {
	s.Domains = updateDomain(s.Domains, domainID, func(d models.Domain) models.Domain {
		d.Sections = append(slices.Clone(d.Sections), models.Section{
			ID:    newID(),
			Name:  name,
			Tasks: []models.Task{},
		})

		return d
	})

	return s
}

// DeleteSection removes a section and its tasks.
func (s State) DeleteSection(domainID, sectionID string) State {
	s.Domains = updateDomain(s.Domains, domainID, func(d models.Domain) models.Domain {
		d.Sections = deleteByID(d.Sections, sectionID, func(sec models.Section) string {
			return sec.ID
		})

		return d
	})

	return s
}

// AddTask appends an incomplete task to the section at domainID/sectionID.
func (s State) AddTask(domainID, sectionID, title string, estimate int) State {
	s.Domains = updateSection(s.Domains, domainID, sectionID, func(sec models.Section) models.Section {
		sec.Tasks = append(slices.Clone(sec.Tasks), models.Task{
			ID:                 newID(),
			Title:              title,
			Completed:          false,
			EstimatedPomodoros: estimate,
		})

		return sec
	})

	return s
}

// DeleteTask removes a task. The active task pointer is left as is even if
// it referenced the deleted task.
func (s State) DeleteTask(domainID, sectionID, taskID string) State {
	s.Domains = updateSection(s.Domains, domainID, sectionID, func(sec models.Section) models.Section {
		sec.Tasks = deleteByID(sec.Tasks, taskID, func(t models.Task) string {
			return t.ID
		})

		return sec
	})

	return s
}

// ToggleTask flips the completion flag of a task.
func (s State) ToggleTask(domainID, sectionID, taskID string) State {
	s.Domains = updateSection(s.Domains, domainID, sectionID, func(sec models.Section) models.Section {
		i := slices.IndexFunc(sec.Tasks, func(t models.Task) bool {
			return t.ID == taskID
		})
		if i < 0 {
			return sec
		}

		sec.Tasks = slices.Clone(sec.Tasks)
		sec.Tasks[i].Completed = !sec.Tasks[i].Completed

		return sec
	})

	return s
}

// SetActiveTask replaces the active task pointer. A nil id clears it.
func (s State) SetActiveTask(taskID *string) State {
	s.ActiveTaskID = clonePtr(taskID)

	return s
}

// UpdatePreferences merges the non-nil fields of p into the preferences.
func (s State) UpdatePreferences(p PreferencesPatch) State {
	if p.WorkDuration != nil {
		s.Preferences.WorkDuration = *p.WorkDuration
	}

	if p.ShortBreakDuration != nil {
		s.Preferences.ShortBreakDuration = *p.ShortBreakDuration
	}

	if p.LongBreakDuration != nil {
		s.Preferences.LongBreakDuration = *p.LongBreakDuration
	}

	if p.AutoStartBreaks != nil {
		s.Preferences.AutoStartBreaks = *p.AutoStartBreaks
	}

	if p.Language != nil {
		s.Preferences.Language = *p.Language
	}

	return s
}

// LogSession records a completed focus session against the active task and
// increments the streak. The owning domain is resolved now and stored with
// the entry; a dangling active task yields a nil domain.
func (s State) LogSession(durationMinutes int, now time.Time) State {
	var domainID *string

	if s.ActiveTaskID != nil {
		if ref, ok := s.FindTask(*s.ActiveTaskID); ok {
			id := ref.DomainID
			domainID = &id
		}
	}

	entry := models.SessionLog{
		ID:              newID(),
		TaskID:          clonePtr(s.ActiveTaskID),
		DomainID:        domainID,
		Date:            now,
		DurationMinutes: durationMinutes,
	}

	s.History = append(slices.Clone(s.History), entry)
	s.SessionStreak++

	return s
}

// ResetSessionStreak sets the streak back to zero.
func (s State) ResetSessionStreak() State {
	s.SessionStreak = 0

	return s
}

// DeleteSessionLog removes a single history entry.
func (s State) DeleteSessionLog(id string) State {
	s.History = deleteByID(s.History, id, func(l models.SessionLog) string {
		return l.ID
	})

	return s
}

// DailySessionCount returns the number of sessions logged on the calendar
// day of now, in now's location.
func (s State) DailySessionCount(now time.Time) int {
	var count int

	for i := range s.History {
		if timeutil.SameDay(s.History[i].Date, now) {
			count++
		}
	}

	return count
}

// Normalise repairs a state restored from storage: nil collections become
// empty, missing estimates get the default and invalid preferences fall back
// to fallback.
func (s State) Normalise(fallback models.Preferences) State {
	if s.Domains == nil {
		s.Domains = []models.Domain{}
	}

	if s.History == nil {
		s.History = []models.SessionLog{}
	}

	if s.SessionStreak < 0 {
		s.SessionStreak = 0
	}

	s.Domains = slices.Clone(s.Domains)

	for i := range s.Domains {
		d := &s.Domains[i]

		if d.Sections == nil {
			d.Sections = []models.Section{}
		}

		d.Sections = slices.Clone(d.Sections)

		for j := range d.Sections {
			sec := &d.Sections[j]

			if sec.Tasks == nil {
				sec.Tasks = []models.Task{}
			}

			sec.Tasks = slices.Clone(sec.Tasks)

			for k := range sec.Tasks {
				if sec.Tasks[k].EstimatedPomodoros <= 0 {
					sec.Tasks[k].EstimatedPomodoros = models.DefaultEstimate
				}
			}
		}
	}

	p := &s.Preferences

	if p.WorkDuration <= 0 {
		p.WorkDuration = fallback.WorkDuration
	}

	if p.ShortBreakDuration <= 0 {
		p.ShortBreakDuration = fallback.ShortBreakDuration
	}

	if p.LongBreakDuration <= 0 {
		p.LongBreakDuration = fallback.LongBreakDuration
	}

	if !p.Language.Valid() {
		p.Language = fallback.Language
	}

	return s
}

func updateDomain(
	domains []models.Domain,
	id string,
	fn func(models.Domain) models.Domain,
) []models.Domain {
	i := slices.IndexFunc(domains, func(d models.Domain) bool {
		return d.ID == id
	})
	if i < 0 {
		return domains
	}

	out := slices.Clone(domains)
	out[i] = fn(out[i])

	return out
}

func updateSection(
	domains []models.Domain,
	domainID, sectionID string,
	fn func(models.Section) models.Section,
) []models.Domain {
	return updateDomain(domains, domainID, func(d models.Domain) models.Domain {
		i := slices.IndexFunc(d.Sections, func(sec models.Section) bool {
			return sec.ID == sectionID
		})
		if i < 0 {
			return d
		}

		d.Sections = slices.Clone(d.Sections)
		d.Sections[i] = fn(d.Sections[i])

		return d
	})
}

// deleteByID returns a copy of items without the element whose id matches.
// The input slice is returned unchanged when nothing matches.
func deleteByID[T any](items []T, id string, idOf func(T) string) []T {
	i := slices.IndexFunc(items, func(item T) bool {
		return idOf(item) == id
	})
	if i < 0 {
		return items
	}

	return slices.Delete(slices.Clone(items), i, i+1)
}

func clonePtr(s *string) *string {
	if s == nil {
		return nil
	}

	v := *s

	return &v
}
