package store

import (
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayoisaiah/focusplan/internal/models"
	"github.com/ayoisaiah/focusplan/state"
)

func openBolt(t *testing.T) DB {
	t.Helper()

	db, err := Open(DriverBolt, filepath.Join(t.TempDir(), "data", "focusplan.db"))
	require.NoError(t, err)

	t.Cleanup(func() { _ = db.Close() })

	return db
}

func openSQLite(t *testing.T) DB {
	t.Helper()

	db, err := Open(DriverSQLite, filepath.Join(t.TempDir(), "focusplan.sqlite"))
	if err != nil && strings.Contains(err.Error(), "CGO_ENABLED=0") {
		t.Skip("sqlite driver requires cgo")
	}

	require.NoError(t, err)

	t.Cleanup(func() { _ = db.Close() })

	return db
}

func testBlobRoundTrip(t *testing.T, db DB) {
	t.Helper()

	v, err := db.Get("missing")
	require.NoError(t, err)
	assert.Nil(t, v)

	require.NoError(t, db.Put("k", []byte("one")))
	require.NoError(t, db.Put("k", []byte("two")))

	v, err = db.Get("k")
	require.NoError(t, err)
	assert.Equal(t, []byte("two"), v)

	require.NoError(t, db.Delete("k"))
	require.NoError(t, db.Delete("k"))

	v, err = db.Get("k")
	require.NoError(t, err)
	assert.Nil(t, v)
}

func TestBoltBlobs(t *testing.T) {
	testBlobRoundTrip(t, openBolt(t))
}

func TestSQLiteBlobs(t *testing.T) {
	testBlobRoundTrip(t, openSQLite(t))
}

func TestOpenUnknownDriver(t *testing.T) {
	_, err := Open("redis", filepath.Join(t.TempDir(), "x"))
	assert.ErrorContains(t, err, "unknown storage driver: redis")
}

func TestBoltSecondInstanceIsLocked(t *testing.T) {
	path := filepath.Join(t.TempDir(), "focusplan.db")

	db, err := Open(DriverBolt, path)
	require.NoError(t, err)

	defer db.Close()

	_, err = Open(DriverBolt, path)
	assert.ErrorIs(t, err, errFocusplanRunning)
}

func sampleState() state.State {
	taskID := "t1"
	domainID := "d1"

	return state.State{
		ActiveTaskID: &taskID,
		Domains: []models.Domain{
			{
				ID:    "d1",
				Name:  "Work",
				Color: "#6366f1",
				Sections: []models.Section{
					{
						ID:   "s1",
						Name: "Launch",
						Tasks: []models.Task{
							{ID: "t1", Title: "Write docs", EstimatedPomodoros: 3},
						},
					},
				},
			},
		},
		History: []models.SessionLog{
			{
				ID:              "h1",
				TaskID:          &taskID,
				DomainID:        &domainID,
				Date:            time.Date(2024, 5, 6, 9, 30, 0, 0, time.UTC),
				DurationMinutes: 25,
			},
		},
		Preferences:   models.DefaultPreferences(),
		SessionStreak: 3,
	}
}

func TestStateRoundTrip(t *testing.T) {
	for name, open := range map[string]func(*testing.T) DB{
		"bolt":   openBolt,
		"sqlite": openSQLite,
	} {
		t.Run(name, func(t *testing.T) {
			db := open(t)
			want := sampleState()

			require.NoError(t, SaveState(db, want))

			got, err := LoadState(db, models.DefaultPreferences())
			require.NoError(t, err)

			if diff := cmp.Diff(want, got); diff != "" {
				t.Fatalf("LoadState() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSaveStateEnvelope(t *testing.T) {
	db := openBolt(t)

	require.NoError(t, SaveState(db, state.Default()))

	blob, err := db.Get(StateKey)
	require.NoError(t, err)

	var env struct {
		State   map[string]any `json:"state"`
		Version int            `json:"version"`
	}

	require.NoError(t, json.Unmarshal(blob, &env))
	assert.Equal(t, 1, env.Version)
	assert.Contains(t, env.State, "domains")
	assert.Contains(t, env.State, "sessionStreak")
}

func TestLoadStateMissing(t *testing.T) {
	prefs := models.DefaultPreferences()
	prefs.WorkDuration = 50

	got, err := LoadState(openBolt(t), prefs)
	require.NoError(t, err)

	if diff := cmp.Diff(state.New(prefs), got); diff != "" {
		t.Fatalf("LoadState() mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadStateMalformed(t *testing.T) {
	cases := map[string]string{
		"not json":        "{{{",
		"wrong types":     `{"state":{"domains":"nope"},"version":1}`,
		"future version":  `{"state":{},"version":9}`,
		"bad version":     `{"state":{},"version":"one"}`,
		"array top level": `[1,2,3]`,
	}

	for name, blob := range cases {
		t.Run(name, func(t *testing.T) {
			db := openBolt(t)
			require.NoError(t, db.Put(StateKey, []byte(blob)))

			got, err := LoadState(db, models.DefaultPreferences())
			assert.Error(t, err)

			if diff := cmp.Diff(state.Default(), got); diff != "" {
				t.Fatalf("fallback state mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestLoadStateVersionZero(t *testing.T) {
	// shape written by the browser build before estimates and languages
	// were tracked
	blob := `{
		"state": {
			"domains": [{"id":"d1","name":"Work","color":"#f00","sections":[
				{"id":"s1","name":"Inbox","tasks":[{"id":"t1","title":"Plan","completed":true}]}
			]}],
			"activeTaskId": null,
			"preferences": {"workDuration":30,"shortBreakDuration":5,"longBreakDuration":20,"autoStartBreaks":true},
			"history": [],
			"sessionStreak": 2
		},
		"version": 0
	}`

	db := openBolt(t)
	require.NoError(t, db.Put(StateKey, []byte(blob)))

	got, err := LoadState(db, models.DefaultPreferences())
	require.NoError(t, err)

	task := got.Domains[0].Sections[0].Tasks[0]
	assert.Equal(t, 1, task.EstimatedPomodoros)
	assert.True(t, task.Completed)
	assert.Equal(t, models.English, got.Preferences.Language)
	assert.Equal(t, 30, got.Preferences.WorkDuration)
	assert.Equal(t, 2, got.SessionStreak)
	assert.Nil(t, got.ActiveTaskID)
}

func TestLoadStateBareObject(t *testing.T) {
	db := openBolt(t)
	require.NoError(t, db.Put(StateKey, []byte(`{"domains":[],"sessionStreak":5}`)))

	got, err := LoadState(db, models.DefaultPreferences())
	require.NoError(t, err)

	assert.Equal(t, 5, got.SessionStreak)
	assert.Equal(t, models.DefaultPreferences(), got.Preferences)
	assert.NotNil(t, got.History)
}

func TestLoadStateVersionZeroNulls(t *testing.T) {
	t.Run("null preferences", func(t *testing.T) {
		db := openBolt(t)
		require.NoError(t, db.Put(StateKey, []byte(
			`{"state":{"domains":[],"preferences":null},"version":0}`,
		)))

		var (
			got state.State
			err error
		)

		assert.NotPanics(t, func() {
			got, err = LoadState(db, models.DefaultPreferences())
		})
		require.NoError(t, err)

		if diff := cmp.Diff(state.Default(), got); diff != "" {
			t.Fatalf("LoadState() mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("null task", func(t *testing.T) {
		db := openBolt(t)
		require.NoError(t, db.Put(StateKey, []byte(
			`{"state":{"domains":[{"id":"d","sections":[{"id":"s","tasks":[null,{"id":"t1","title":"Plan"}]}]}]},"version":0}`,
		)))

		var (
			got state.State
			err error
		)

		assert.NotPanics(t, func() {
			got, err = LoadState(db, models.DefaultPreferences())
		})
		require.NoError(t, err)

		tasks := got.Domains[0].Sections[0].Tasks
		require.Len(t, tasks, 1)
		assert.Equal(t, "t1", tasks[0].ID)
		assert.Equal(t, 1, tasks[0].EstimatedPomodoros)
		assert.Equal(t, models.DefaultPreferences(), got.Preferences)
	})
}
