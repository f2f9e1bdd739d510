package state

import "github.com/ayoisaiah/focusplan/internal/apperr"

var (
	errEmptyID = &apperr.Error{
		Message: "an id is required",
	}

	errIDNotFound = &apperr.Error{
		Message: "no item matches id %q",
	}

	errAmbiguousID = &apperr.Error{
		Message: "id %q is ambiguous: it matches %d items",
	}
)
