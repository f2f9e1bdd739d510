package export

import (
	"bytes"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/ayoisaiah/focusplan/internal/models"
	"github.com/ayoisaiah/focusplan/internal/testutil"
	"github.com/ayoisaiah/focusplan/state"
)

func ptr[T any](v T) *T {
	return &v
}

func sampleState() state.State {
	s := state.Default()
	s.ActiveTaskID = ptr("t1")
	s.SessionStreak = 2
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
						{ID: "t1", Title: "Write spec", EstimatedPomodoros: 2},
						{ID: "t2", Title: "Review", Completed: true, EstimatedPomodoros: 1},
					},
				},
			},
		},
	}
	s.History = []models.SessionLog{
		{
			ID:              "h1",
			Date:            time.Date(2024, 5, 8, 9, 0, 0, 0, time.UTC),
			DurationMinutes: 25,
			TaskID:          ptr("t1"),
			DomainID:        ptr("d1"),
		},
		{
			ID:              "h2",
			Date:            time.Date(2024, 5, 8, 10, 30, 0, 0, time.UTC),
			DurationMinutes: 25,
		},
	}

	return s
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, Write(&buf, sampleState(), JSON))

	testutil.CompareGoldenFile(t, "state_json", buf.Bytes())
}

func TestWriteYAML(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, Write(&buf, sampleState(), YAML))

	out := buf.String()

	assert.Contains(t, out, "activeTaskId: t1\n")
	assert.Contains(t, out, "      - id: s1\n")

	var got state.State

	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))

	if diff := cmp.Diff(sampleState(), got, cmpopts.EquateEmpty()); diff != "" {
		t.Fatalf("yaml export mismatch (-want +got):\n%s", diff)
	}
}

func TestWriteTOML(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, Write(&buf, sampleState(), TOML))

	out := buf.String()

	assert.Contains(t, out, "[[domains]]")
	assert.Contains(t, out, "[[history]]")

	var got state.State

	require.NoError(t, toml.Unmarshal(buf.Bytes(), &got))

	if diff := cmp.Diff(sampleState(), got, cmpopts.EquateEmpty()); diff != "" {
		t.Fatalf("toml export mismatch (-want +got):\n%s", diff)
	}
}

func TestParseFormat(t *testing.T) {
	cases := map[string]Format{
		"":     JSON,
		"json": JSON,
		"YAML": YAML,
		"yml":  YAML,
		"toml": TOML,
	}

	for name, want := range cases {
		got, err := ParseFormat(name)
		require.NoError(t, err, name)
		assert.Equal(t, want, got, name)
	}

	_, err := ParseFormat("xml")
	assert.ErrorContains(t, err, `unknown export format "xml"`)
}
