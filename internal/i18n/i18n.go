// Package i18n provides the English and Spanish interface strings
package i18n

import (
	"sync"
	"time"

	"golang.org/x/text/feature/plural"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"

	"github.com/ayoisaiah/focusplan/internal/models"
)

var tags = map[models.Language]language.Tag{
	models.English: language.English,
	models.Spanish: language.Spanish,
}

var weekdays = map[models.Language][7]string{
	models.English: {"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"},
	models.Spanish: {"Dom", "Lun", "Mar", "Mié", "Jue", "Vie", "Sáb"},
}

// Catalog translates message keys into the active language. It is safe for
// concurrent use.
type Catalog struct {
	printer *message.Printer
	cat     catalog.Catalog
	lang    models.Language
	mu      sync.RWMutex
}

// New returns a catalog set to English.
func New() *Catalog {
	c := &Catalog{
		cat: build(),
	}

	c.SetLanguage(models.English)

	return c
}

// SetLanguage switches the active language. Unsupported languages fall
// back to English.
func (c *Catalog) SetLanguage(lang models.Language) {
	if !lang.Valid() {
		lang = models.English
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.lang = lang
	c.printer = message.NewPrinter(tags[lang], message.Catalog(c.cat))
}

// Language reports the active language.
func (c *Catalog) Language() models.Language {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.lang
}

// T returns the translation of key, formatted with args. Unknown keys are
// returned as is.
func (c *Catalog) T(key string, args ...any) string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.printer.Sprintf(key, args...)
}

// Weekday returns the abbreviated name of d.
func (c *Catalog) Weekday(d time.Weekday) string {
	return weekdays[c.Language()][d]
}

// WeekStart is the first day of the week shown in weekly breakdowns. Both
// supported languages start on Monday.
func WeekStart(_ models.Language) time.Weekday {
	return time.Monday
}

func build() catalog.Catalog {
	b := catalog.NewBuilder(catalog.Fallback(language.English))

	for lang, table := range messages {
		tag := tags[lang]

		for key, msg := range table {
			// keys and messages are static, so errors cannot occur
			_ = b.SetString(tag, key, msg)
		}
	}

	_ = b.Set(language.English, StatsSessionCount, plural.Selectf(1, "%d",
		"=1", "%d session",
		"other", "%d sessions",
	))

	_ = b.Set(language.Spanish, StatsSessionCount, plural.Selectf(1, "%d",
		"=1", "%d sesión",
		"other", "%d sesiones",
	))

	return b
}
