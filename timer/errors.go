package timer

import "github.com/ayoisaiah/focusplan/internal/apperr"

var errInvalidSessionCmd = &apperr.Error{
	Message: "unable to parse session_cmd option",
}
