package validator

import (
	"fmt"
	"strconv"
)

// IntStringBetween validates raw input that must parse as a base-10 integer
// within [min, max]. Empty, fractional or overflowing input fails.
func IntStringBetween(field, raw string, min, max int) Rule {
	return Rule{
		Check: func() bool {
			n, err := strconv.Atoi(raw)
			if err != nil {
				return false
			}
			return n >= min && n <= max
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must be a whole number between %d and %d", min, max),
			TranslationKey: "validation.int_between",
			TranslationValues: map[string]any{
				"field": field,
				"min":   min,
				"max":   max,
			},
		},
	}
}
