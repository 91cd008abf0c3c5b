package validator

import "errors"

// ErrValidationFailed matches any non-empty ValidationErrors via errors.Is.
var ErrValidationFailed = errors.New("validation failed")
