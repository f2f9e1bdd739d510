package store

import "github.com/ayoisaiah/focusplan/internal/apperr"

var (
	errFocusplanRunning = &apperr.Error{
		Message: "is focusplan already running? Only one instance can write at a time",
	}

	errUnknownDriver = &apperr.Error{
		Message: "unknown storage driver: %s",
	}

	errMalformedState = &apperr.Error{
		Message: "stored state is malformed, starting from defaults",
	}

	errUnsupportedVersion = &apperr.Error{
		Message: "stored state version %d is newer than this build supports",
	}
)
