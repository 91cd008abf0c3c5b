package registration

import "errors"

var (
	// ErrUnknownField is returned when live validation names a field the form does not have.
	ErrUnknownField = errors.New("registration: unknown field")
)
