package app

import "github.com/ayoisaiah/focusplan/internal/apperr"

var (
	errNameRequired = &apperr.Error{
		Message: "a %s name is required",
	}

	errIDRequired = &apperr.Error{
		Message: "a %s id is required",
	}

	errInvalidColor = &apperr.Error{
		Message: "unknown colour %q: use a palette name or a hex value such as #3B82F6",
	}

	errInvalidEstimate = &apperr.Error{
		Message: "the estimate must be at least one pomodoro",
	}

	errInvalidMinutes = &apperr.Error{
		Message: "%q is not a valid number of minutes: expected a whole number between %d and %d",
	}

	errInvalidSince = &apperr.Error{
		Message: "unable to parse --since value %q",
	}

	errInvalidLanguage = &apperr.Error{
		Message: "unsupported language %q: use en or es",
	}

	errInvalidSort = &apperr.Error{
		Message: "unknown sort order %q: use created or name",
	}

	errNoDomains = &apperr.Error{
		Message: "there are no domains yet: add one with 'focusplan domain add NAME'",
	}

	errNoSections = &apperr.Error{
		Message: "domain %q has no sections: add one with 'focusplan section add --domain %s NAME'",
	}

	errNothingToUpdate = &apperr.Error{
		Message: "no preference flags were provided",
	}

	errUnexpectedArgs = &apperr.Error{
		Message: "unknown command %q: run 'focusplan help' for usage",
	}

	errCreateExport = &apperr.Error{
		Message: "creating export file",
	}
)
