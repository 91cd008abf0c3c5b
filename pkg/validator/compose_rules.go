package validator

// All folds several rules for one field into a single rule that passes only
// when every member passes. Members are checked in order and evaluation stops
// at the first failure, so a field never reports more than one error.
// The combined rule reports the first member's error; pair it with
// WithMessage when the field needs one fixed message.
func All(field string, rules ...Rule) Rule {
	var first ValidationError
	if len(rules) > 0 {
		first = rules[0].Error
	}
	first.Field = field

	return Rule{
		Check: func() bool {
			for _, rule := range rules {
				if !rule.Check() {
					return false
				}
			}
			return true
		},
		Error: first,
	}
}

// Pass is a rule that always succeeds. Useful for fields without constraints
// that still need an entry in a rule table.
func Pass(field string) Rule {
	return Rule{
		Check: func() bool { return true },
		Error: ValidationError{Field: field},
	}
}
