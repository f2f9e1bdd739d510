// Package timeutil provides utility functions and types for working with
// time-related operations.
package timeutil

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/markusmobius/go-dateparser"
)

const (
	minutesInAnHour  = 60
	secondsInAMinute = 60
)

const DaysInWeek = 7

// Round rounds a time value in seconds, minutes, or hours to the nearest integer.
func Round(t float64) int {
	return int(math.Round(t))
}

// MinsToHours expresses a minutes value in hours rounded to one decimal
// place.
func MinsToHours(mins int) float64 {
	return math.Round(float64(mins)/minutesInAnHour*10) / 10
}

// MinsToHoursAndMins expresses a minutes value in hours and mins.
func MinsToHoursAndMins(val int) (hrs, mins int) {
	hrs = val / minutesInAnHour
	mins = val % minutesInAnHour

	return
}

// SecsToMinsAndSecs splits a seconds value into minutes and seconds.
func SecsToMinsAndSecs(val int) (mins, secs int) {
	if val < 0 {
		val = 0
	}

	return val / secondsInAMinute, val % secondsInAMinute
}

// FormatClock renders a seconds value as MM:SS.
func FormatClock(secs int) string {
	m, s := SecsToMinsAndSecs(secs)

	return fmt.Sprintf("%02d:%02d", m, s)
}

// RoundToStart resets the given time to the start of the day.
func RoundToStart(t time.Time) time.Time {
	return time.Date(
		t.Year(),
		t.Month(),
		t.Day(),
		0,
		0,
		0,
		0,
		t.Location(),
	)
}

// SameDay reports whether a and b fall on the same calendar day in the
// location of b.
func SameDay(a, b time.Time) bool {
	a = a.In(b.Location())

	return a.Year() == b.Year() && a.YearDay() == b.YearDay()
}

// FromStr parses a natural language date such as "2 days ago" or
// "yesterday 3pm" relative to now.
func FromStr(s string, now time.Time) (time.Time, error) {
	cfg := &dateparser.Configuration{
		CurrentTime: now,
	}

	d, err := dateparser.Parse(cfg, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, err
	}

	return d.Time, nil
}
