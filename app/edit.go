package app

import (
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/focusplan/internal/apperr"
	"github.com/ayoisaiah/focusplan/internal/models"
	"github.com/ayoisaiah/focusplan/state"
)

const (
	minPrefMinutes = 1
	maxPrefMinutes = 720
)

var errInvalidPreference = &apperr.Error{
	Message: "--%s must be between %d and %d minutes",
}

// durationPatch reads an optional duration flag.
func durationPatch(ctx *cli.Context, name string) (*int, error) {
	if !ctx.IsSet(name) {
		return nil, nil
	}

	v := ctx.Int(name)
	if v < minPrefMinutes || v > maxPrefMinutes {
		return nil, errInvalidPreference.Fmt(name, minPrefMinutes, maxPrefMinutes)
	}

	return &v, nil
}

// preferencesPatch builds a patch from the flags that were set.
func preferencesPatch(ctx *cli.Context) (state.PreferencesPatch, error) {
	var (
		patch state.PreferencesPatch
		err   error
	)

	patch.WorkDuration, err = durationPatch(ctx, "work")
	if err != nil {
		return patch, err
	}

	patch.ShortBreakDuration, err = durationPatch(ctx, "short-break")
	if err != nil {
		return patch, err
	}

	patch.LongBreakDuration, err = durationPatch(ctx, "long-break")
	if err != nil {
		return patch, err
	}

	if ctx.IsSet("auto-start-breaks") {
		v := ctx.Bool("auto-start-breaks")
		patch.AutoStartBreaks = &v
	}

	if ctx.IsSet("language") {
		lang := models.Language(strings.ToLower(strings.TrimSpace(ctx.String("language"))))
		if !lang.Valid() {
			return patch, errInvalidLanguage.Fmt(ctx.String("language"))
		}

		patch.Language = &lang
	}

	if patch == (state.PreferencesPatch{}) {
		return patch, errNothingToUpdate
	}

	return patch, nil
}

// prefsSetAction updates the stored preferences and prints the result.
func (e *env) prefsSetAction(ctx *cli.Context) error {
	patch, err := preferencesPatch(ctx)
	if err != nil {
		return err
	}

	e.planner.UpdatePreferences(patch)

	e.success("preferences updated")

	return e.printPreferences()
}
