// Package planner owns the live application state. Every mutation is
// applied to the current state snapshot and written back to the blob store
// before the call returns.
package planner

import (
	"log/slog"
	"slices"
	"time"

	"github.com/ayoisaiah/focusplan/internal/models"
	"github.com/ayoisaiah/focusplan/state"
	"github.com/ayoisaiah/focusplan/store"
)

// Localizer is told about the active language on load and on every change.
type Localizer interface {
	SetLanguage(lang models.Language)
}

// Planner is the single owner of the application state. It is not safe for
// concurrent use.
type Planner struct {
	db        store.DB
	localizer Localizer
	logger    *slog.Logger
	now       func() time.Time
	current   state.State
}

// Option configures a Planner.
type Option func(*Planner)

// WithLocalizer registers the collaborator that follows language changes.
func WithLocalizer(l Localizer) Option {
	return func(p *Planner) {
		p.localizer = l
	}
}

// WithLogger replaces the default slog logger.
func WithLogger(l *slog.Logger) Option {
	return func(p *Planner) {
		p.logger = l
	}
}

// WithClock replaces time.Now as the source of session timestamps.
func WithClock(now func() time.Time) Option {
	return func(p *Planner) {
		p.now = now
	}
}

// Open loads the persisted state from db, falling back to a fresh state
// seeded with defaults when nothing usable is stored.
func Open(db store.DB, defaults models.Preferences, opts ...Option) *Planner {
	p := &Planner{
		db:     db,
		logger: slog.Default(),
		now:    time.Now,
	}

	for _, opt := range opts {
		opt(p)
	}

	s, err := store.LoadState(db, defaults)
	if err != nil {
		p.logger.Error(
			"loading persisted state",
			slog.Any("error", err),
		)
	}

	p.current = s

	if p.localizer != nil {
		p.localizer.SetLanguage(s.Preferences.Language)
	}

	return p
}

// State returns the current snapshot.
func (p *Planner) State() state.State {
	return p.current
}

func (p *Planner) apply(op string, next state.State) {
	p.current = next
	p.persist(op)
}

func (p *Planner) persist(op string) {
	err := store.SaveState(p.db, p.current)
	if err != nil {
		p.logger.Error(
			"persisting state",
			slog.String("op", op),
			slog.Any("error", err),
		)
	}
}

func (p *Planner) AddDomain(name, color string) {
	p.apply("add_domain", p.current.AddDomain(name, color))
}

func (p *Planner) DeleteDomain(id string) {
	p.apply("delete_domain", p.current.DeleteDomain(id))
}

func (p *Planner) AddSection(domainID, name string) {
	p.apply("add_section", p.current.AddSection(domainID, name))
}

func (p *Planner) DeleteSection(domainID, sectionID string) {
	p.apply("delete_section", p.current.DeleteSection(domainID, sectionID))
}

func (p *Planner) AddTask(domainID, sectionID, title string, estimate int) {
	p.apply("add_task", p.current.AddTask(domainID, sectionID, title, estimate))
}

func (p *Planner) DeleteTask(domainID, sectionID, taskID string) {
	p.apply("delete_task", p.current.DeleteTask(domainID, sectionID, taskID))
}

func (p *Planner) ToggleTask(domainID, sectionID, taskID string) {
	p.apply("toggle_task", p.current.ToggleTask(domainID, sectionID, taskID))
}

func (p *Planner) SetActiveTask(taskID *string) {
	p.apply("set_active_task", p.current.SetActiveTask(taskID))
}

// ClearActiveTask unsets the active task if it is one of deleted. An
// active task that was already dangling is left alone. It reports whether
// anything changed.
func (p *Planner) ClearActiveTask(deleted ...string) bool {
	active := p.current.ActiveTaskID
	if active == nil || !slices.Contains(deleted, *active) {
		return false
	}

	p.apply("clear_active_task", p.current.SetActiveTask(nil))

	return true
}

// UpdatePreferences merges patch into the preferences and notifies the
// localizer when the language changed.
func (p *Planner) UpdatePreferences(patch state.PreferencesPatch) {
	before := p.current.Preferences.Language

	p.apply("update_preferences", p.current.UpdatePreferences(patch))

	after := p.current.Preferences.Language
	if after != before && p.localizer != nil {
		p.localizer.SetLanguage(after)
	}
}

// LogSession records a completed focus interval against the active task.
func (p *Planner) LogSession(durationMinutes int) {
	p.apply("log_session", p.current.LogSession(durationMinutes, p.now()))
}

func (p *Planner) ResetSessionStreak() {
	p.apply("reset_streak", p.current.ResetSessionStreak())
}

func (p *Planner) DeleteSessionLog(id string) {
	p.apply("delete_session_log", p.current.DeleteSessionLog(id))
}

// DailySessionCount counts the sessions logged today.
func (p *Planner) DailySessionCount() int {
	return p.current.DailySessionCount(p.now())
}
