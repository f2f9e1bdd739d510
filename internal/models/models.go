// Package models defines the entities tracked by focusplan
package models

import "time"

// DefaultEstimate is the pomodoro estimate given to a task when none is
// specified.
const DefaultEstimate = 1

// Language is a supported interface language.
type Language string

const (
	English Language = "en"
	Spanish Language = "es"
)

// Valid reports whether l is a supported language.
func (l Language) Valid() bool {
	return l == English || l == Spanish
}

// Task is a single actionable item owned by a Section.
type Task struct {
	ID                 string `json:"id"                 yaml:"id"                 toml:"id"`
	Title              string `json:"title"              yaml:"title"              toml:"title"`
	Completed          bool   `json:"completed"          yaml:"completed"          toml:"completed"`
	EstimatedPomodoros int    `json:"estimatedPomodoros" yaml:"estimatedPomodoros" toml:"estimatedPomodoros"`
}

// Section groups tasks within a Domain. Task order is insertion order.
type Section struct {
	ID    string `json:"id"    yaml:"id"    toml:"id"`
	Name  string `json:"name"  yaml:"name"  toml:"name"`
	Tasks []Task `json:"tasks" yaml:"tasks" toml:"tasks"`
}

// Domain is a top-level area that owns sections.
type Domain struct {
	ID       string    `json:"id"       yaml:"id"       toml:"id"`
	Name     string    `json:"name"     yaml:"name"     toml:"name"`
	Color    string    `json:"color"    yaml:"color"    toml:"color"`
	Sections []Section `json:"sections" yaml:"sections" toml:"sections"`
}

// Preferences holds the user's timer and language settings. Durations are
// in minutes.
type Preferences struct {
	Language           Language `json:"language"           yaml:"language"           toml:"language"`
	WorkDuration       int      `json:"workDuration"       yaml:"workDuration"       toml:"workDuration"`
	ShortBreakDuration int      `json:"shortBreakDuration" yaml:"shortBreakDuration" toml:"shortBreakDuration"`
	LongBreakDuration  int      `json:"longBreakDuration"  yaml:"longBreakDuration"  toml:"longBreakDuration"`
	AutoStartBreaks    bool     `json:"autoStartBreaks"    yaml:"autoStartBreaks"    toml:"autoStartBreaks"`
}

// SessionLog records one completed focus interval. TaskID and DomainID are
// weak references: they may point at entities that no longer exist.
type SessionLog struct {
	Date            time.Time `json:"date"            yaml:"date"            toml:"date"`
	TaskID          *string   `json:"taskId"          yaml:"taskId"          toml:"taskId,omitempty"`
	DomainID        *string   `json:"domainId"        yaml:"domainId"        toml:"domainId,omitempty"`
	ID              string    `json:"id"              yaml:"id"              toml:"id"`
	DurationMinutes int       `json:"durationMinutes" yaml:"durationMinutes" toml:"durationMinutes"`
}

// DefaultPreferences returns the preferences of a fresh installation.
func DefaultPreferences() Preferences {
	return Preferences{
		WorkDuration:       25,
		ShortBreakDuration: 5,
		LongBreakDuration:  15,
		AutoStartBreaks:    false,
		Language:           English,
	}
}
