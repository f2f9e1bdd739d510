package i18n

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/ayoisaiah/focusplan/internal/models"
)

func TestTranslate(t *testing.T) {
	c := New()

	assert.Equal(t, models.English, c.Language())
	assert.Equal(t, "Focus", c.T(TimerFocus))
	assert.Equal(t, "No active task", c.T(TimerNoTask))

	c.SetLanguage(models.Spanish)

	assert.Equal(t, models.Spanish, c.Language())
	assert.Equal(t, "Enfoque", c.T(TimerFocus))
	assert.Equal(t, "Sin tarea activa", c.T(TimerNoTask))
	assert.Equal(t, "Mié", c.Weekday(time.Wednesday))
}

func TestUnsupportedLanguageFallsBack(t *testing.T) {
	c := New()
	c.SetLanguage(models.Spanish)
	c.SetLanguage("fr")

	assert.Equal(t, models.English, c.Language())
	assert.Equal(t, "Short Break", c.T(TimerShortBreak))
}

func TestUnknownKeyIsReturned(t *testing.T) {
	assert.Equal(t, "no.such.key", New().T("no.such.key"))
}

func TestSessionCountPlural(t *testing.T) {
	c := New()

	assert.Equal(t, "1 session", c.T(StatsSessionCount, 1))
	assert.Equal(t, "3 sessions", c.T(StatsSessionCount, 3))

	c.SetLanguage(models.Spanish)

	assert.Equal(t, "1 sesión", c.T(StatsSessionCount, 1))
	assert.Equal(t, "0 sesiones", c.T(StatsSessionCount, 0))
}

func TestEveryKeyTranslated(t *testing.T) {
	en, es := messages[models.English], messages[models.Spanish]

	assert.Len(t, es, len(en))

	for key := range en {
		assert.Contains(t, es, key)
	}
}

func TestWeekStart(t *testing.T) {
	assert.Equal(t, time.Monday, WeekStart(models.English))
	assert.Equal(t, time.Monday, WeekStart(models.Spanish))
}
