package validator

// InSet validates membership through a lookup function, for option sets that
// are loaded at runtime and too large to copy into the rule.
// The lookup is called lazily, at check time.
func InSet(field, value string, contains func(string) bool) Rule {
	return Rule{
		Check: func() bool {
			if contains == nil {
				return false
			}
			return contains(value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must be one of the available options",
			TranslationKey: "validation.in_set",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}
