package registration

import (
	"fmt"

	"github.com/dmitrymomot/regform/pkg/validator"
	"github.com/dmitrymomot/regform/svc/countries"
)

// Validate checks every field of values. It returns nil or a
// validator.ValidationErrors holding exactly one error per failing field, in
// field order. lookup answers country membership; a nil lookup rejects every
// country.
func Validate(values FormValues, lookup countries.Lookup) error {
	rules := make([]validator.Rule, 0, len(fieldRules))
	for _, fr := range fieldRules {
		rules = append(rules, fr.build(values, lookup))
	}
	return validator.Apply(rules...)
}

// ValidateField checks a single field against the current snapshot, the way
// live validation does after each change.
func ValidateField(field string, values FormValues, lookup countries.Lookup) error {
	build, ok := rulesByField[field]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownField, field)
	}
	return validator.Apply(build(values, lookup))
}

// DependentFields returns field plus the fields whose rules read it and must
// be re-checked when it changes.
func DependentFields(field string) []string {
	if field == FieldPassword {
		return []string{FieldPassword, FieldPasswordConfirm}
	}
	return []string{field}
}
