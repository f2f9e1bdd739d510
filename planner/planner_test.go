package planner

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayoisaiah/focusplan/internal/models"
	"github.com/ayoisaiah/focusplan/internal/testutil"
	"github.com/ayoisaiah/focusplan/state"
	"github.com/ayoisaiah/focusplan/store"
)

type recordingLocalizer struct {
	calls []models.Language
}

func (r *recordingLocalizer) SetLanguage(lang models.Language) {
	r.calls = append(r.calls, lang)
}

var fixedNow = time.Date(2024, 5, 6, 10, 0, 0, 0, time.Local)

func newPlanner(t *testing.T, db *testutil.MemDB, opts ...Option) *Planner {
	t.Helper()

	opts = append([]Option{
		WithClock(func() time.Time { return fixedNow }),
		WithLogger(slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))),
	}, opts...)

	return Open(db, models.DefaultPreferences(), opts...)
}

// buildTree adds Work/Launch/Write spec and returns the three ids.
func buildTree(p *Planner) (domainID, sectionID, taskID string) {
	p.AddDomain("Work", "blue")
	domainID = p.State().Domains[0].ID

	p.AddSection(domainID, "Launch")
	sectionID = p.State().Domains[0].Sections[0].ID

	p.AddTask(domainID, sectionID, "Write spec", 2)
	taskID = p.State().Domains[0].Sections[0].Tasks[0].ID

	return domainID, sectionID, taskID
}

func TestOpenWithoutStoredState(t *testing.T) {
	loc := &recordingLocalizer{}

	p := newPlanner(t, testutil.NewMemDB(), WithLocalizer(loc))

	assert.Equal(t, state.Default(), p.State())
	assert.Equal(t, []models.Language{models.English}, loc.calls)
}

func TestOpenRehydratesLanguage(t *testing.T) {
	db := testutil.NewMemDB()

	s := state.Default()
	s.Preferences.Language = models.Spanish
	require.NoError(t, store.SaveState(db, s))

	loc := &recordingLocalizer{}
	p := newPlanner(t, db, WithLocalizer(loc))

	assert.Equal(t, models.Spanish, p.State().Preferences.Language)
	assert.Equal(t, []models.Language{models.Spanish}, loc.calls)
}

func TestOpenMalformedBlobFallsBack(t *testing.T) {
	db := testutil.NewMemDB()
	require.NoError(t, db.Put(store.StateKey, []byte("not json")))

	var logs bytes.Buffer

	p := Open(
		db,
		models.DefaultPreferences(),
		WithLogger(slog.New(slog.NewTextHandler(&logs, nil))),
	)

	assert.Equal(t, state.Default(), p.State())
	assert.Contains(t, logs.String(), "loading persisted state")
}

func TestEveryMutationPersists(t *testing.T) {
	db := testutil.NewMemDB()
	p := newPlanner(t, db)

	domainID, sectionID, taskID := buildTree(p)
	assert.Equal(t, 3, db.Puts)

	p.ToggleTask(domainID, sectionID, taskID)
	p.SetActiveTask(&taskID)
	p.LogSession(25)
	p.ResetSessionStreak()
	assert.Equal(t, 7, db.Puts)

	reopened := newPlanner(t, db)

	if diff := cmp.Diff(p.State(), reopened.State()); diff != "" {
		t.Fatalf("reopened state mismatch (-want +got):\n%s", diff)
	}
}

func TestPersistedBlobShape(t *testing.T) {
	db := testutil.NewMemDB()
	p := newPlanner(t, db)
	buildTree(p)

	blob, err := db.Get(store.StateKey)
	require.NoError(t, err)

	var env struct {
		State struct {
			Domains []struct {
				Name     string `json:"name"`
				Sections []struct {
					Tasks []struct {
						Title              string `json:"title"`
						EstimatedPomodoros int    `json:"estimatedPomodoros"`
					} `json:"tasks"`
				} `json:"sections"`
			} `json:"domains"`
		} `json:"state"`
		Version int `json:"version"`
	}

	require.NoError(t, json.Unmarshal(blob, &env))
	assert.Equal(t, 1, env.Version)
	assert.Equal(t, "Work", env.State.Domains[0].Name)
	assert.Equal(t, "Write spec", env.State.Domains[0].Sections[0].Tasks[0].Title)
	assert.Equal(t, 2, env.State.Domains[0].Sections[0].Tasks[0].EstimatedPomodoros)
}

func TestPersistFailureIsSwallowed(t *testing.T) {
	db := testutil.NewMemDB()

	var logs bytes.Buffer

	p := Open(
		db,
		models.DefaultPreferences(),
		WithLogger(slog.New(slog.NewTextHandler(&logs, nil))),
	)

	db.FailWrites = true

	p.AddDomain("Work", "blue")

	assert.Len(t, p.State().Domains, 1)
	assert.Contains(t, logs.String(), "persisting state")
	assert.Contains(t, logs.String(), "op=add_domain")
}

func TestLogSessionUsesClockAndActiveTask(t *testing.T) {
	p := newPlanner(t, testutil.NewMemDB())
	domainID, _, taskID := buildTree(p)

	p.SetActiveTask(&taskID)

	for range 4 {
		p.LogSession(25)
	}

	s := p.State()
	require.Len(t, s.History, 4)
	assert.Equal(t, 4, s.SessionStreak)
	assert.Equal(t, 4, p.DailySessionCount())

	entry := s.History[3]
	assert.True(t, entry.Date.Equal(fixedNow))
	assert.Equal(t, taskID, *entry.TaskID)
	assert.Equal(t, domainID, *entry.DomainID)
	assert.Equal(t, 25, entry.DurationMinutes)

	p.DeleteSessionLog(entry.ID)
	assert.Len(t, p.State().History, 3)
}

func TestUpdatePreferencesNotifiesLocalizerOnChange(t *testing.T) {
	loc := &recordingLocalizer{}
	p := newPlanner(t, testutil.NewMemDB(), WithLocalizer(loc))

	work := 50
	p.UpdatePreferences(state.PreferencesPatch{WorkDuration: &work})
	assert.Len(t, loc.calls, 1)

	es := models.Spanish
	p.UpdatePreferences(state.PreferencesPatch{Language: &es})
	p.UpdatePreferences(state.PreferencesPatch{Language: &es})

	assert.Equal(t, []models.Language{models.English, models.Spanish}, loc.calls)
	assert.Equal(t, 50, p.State().Preferences.WorkDuration)
}

func TestClearActiveTask(t *testing.T) {
	p := newPlanner(t, testutil.NewMemDB())
	domainID, sectionID, taskID := buildTree(p)

	assert.False(t, p.ClearActiveTask(taskID))

	p.SetActiveTask(&taskID)
	assert.False(t, p.ClearActiveTask("other"))

	p.DeleteTask(domainID, sectionID, taskID)
	require.NotNil(t, p.State().ActiveTaskID)

	assert.True(t, p.ClearActiveTask("other", taskID))
	assert.Nil(t, p.State().ActiveTaskID)
}

func TestClearActiveTaskKeepsUnrelatedDanglingPointer(t *testing.T) {
	p := newPlanner(t, testutil.NewMemDB())
	_, _, taskID := buildTree(p)

	stale := "gone"
	p.SetActiveTask(&stale)

	assert.False(t, p.ClearActiveTask(taskID))
	require.NotNil(t, p.State().ActiveTaskID)
	assert.Equal(t, stale, *p.State().ActiveTaskID)
}

func TestDeleteCascadesThroughPlanner(t *testing.T) {
	p := newPlanner(t, testutil.NewMemDB())
	domainID, sectionID, _ := buildTree(p)

	p.DeleteSection(domainID, sectionID)
	assert.Empty(t, p.State().Domains[0].Sections)

	p.DeleteDomain(domainID)
	assert.Empty(t, p.State().Domains)
}
