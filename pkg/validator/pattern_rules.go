package validator

import (
	"fmt"
	"regexp"
)

var asciiAlphaRegex = regexp.MustCompile(`^[A-Za-z]+$`)

// MatchesPattern validates value against a precompiled expression.
// An empty value never matches unless the expression accepts it.
func MatchesPattern(field, value string, re *regexp.Regexp, description string) Rule {
	return Rule{
		Check: func() bool {
			return re.MatchString(value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must match %s pattern", description),
			TranslationKey: "validation.regex_pattern",
			TranslationValues: map[string]any{
				"field":       field,
				"pattern":     re.String(),
				"description": description,
			},
		},
	}
}

// ASCIIAlpha validates that a non-empty string holds only the letters A-Z and a-z.
func ASCIIAlpha(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return asciiAlphaRegex.MatchString(value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must contain only letters",
			TranslationKey: "validation.alpha",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}
