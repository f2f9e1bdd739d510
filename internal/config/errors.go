package config

import "github.com/ayoisaiah/focusplan/internal/apperr"

var (
	errConfigOption = &apperr.Error{
		Message: "config option error",
	}

	errConfigValidation = &apperr.Error{
		Message: "config validation error",
	}

	errReadConfig = &apperr.Error{
		Message: "reading config file failed",
	}

	errWriteConfig = &apperr.Error{
		Message: "writing default config failed",
	}

	errInvalidDuration = &apperr.Error{
		Message: "%s duration must be between %d and %d minutes",
	}

	errInvalidLongBreakInterval = &apperr.Error{
		Message: "long break interval must be between %d and %d sessions",
	}

	errInvalidLanguage = &apperr.Error{
		Message: "unsupported language %q: use en or es",
	}

	errInvalidDriver = &apperr.Error{
		Message: "unsupported storage driver %q: use bolt or sqlite",
	}

	errInvalidLogLevel = &apperr.Error{
		Message: "unsupported log level %q: use debug, info, warn or error",
	}
)
