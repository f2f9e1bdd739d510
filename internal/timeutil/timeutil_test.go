package timeutil_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayoisaiah/focusplan/internal/timeutil"
)

func TestMinsToHours(t *testing.T) {
	cases := []struct {
		mins int
		want float64
	}{
		{0, 0},
		{30, 0.5},
		{50, 0.8},
		{100, 1.7},
		{125, 2.1},
	}

	for _, tc := range cases {
		assert.InDelta(t, tc.want, timeutil.MinsToHours(tc.mins), 0.0001)
	}
}

func TestFormatClock(t *testing.T) {
	assert.Equal(t, "25:00", timeutil.FormatClock(1500))
	assert.Equal(t, "00:59", timeutil.FormatClock(59))
	assert.Equal(t, "00:00", timeutil.FormatClock(-3))
}

func TestSameDay(t *testing.T) {
	loc := time.Local
	now := time.Date(2024, 3, 10, 12, 0, 0, 0, loc)

	assert.True(t, timeutil.SameDay(time.Date(2024, 3, 10, 0, 0, 0, 0, loc), now))
	assert.True(t, timeutil.SameDay(time.Date(2024, 3, 10, 23, 59, 59, 0, loc), now))
	assert.False(t, timeutil.SameDay(time.Date(2024, 3, 9, 23, 59, 59, 0, loc), now))
	assert.False(t, timeutil.SameDay(time.Date(2023, 3, 10, 12, 0, 0, 0, loc), now))
}

func TestFromStr(t *testing.T) {
	now := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)

	got, err := timeutil.FromStr("2 days ago", now)
	require.NoError(t, err)

	assert.True(t, timeutil.SameDay(got, time.Date(2024, 3, 8, 0, 0, 0, 0, got.Location())))
}
