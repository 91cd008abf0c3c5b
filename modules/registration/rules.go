package registration

import (
	"regexp"

	"github.com/dmitrymomot/regform/pkg/validator"
	"github.com/dmitrymomot/regform/svc/countries"
)

const (
	minAge         = 18
	maxAge         = 99
	minNameLength  = 2
	minPasswordLen = 8
)

const (
	// Every character a browser treats as whitespace, wider than RE2's \s.
	whitespaceClass = `\t\n\v\f\r \p{Zs}\x{2028}\x{2029}\x{FEFF}`
	// Any character except a line terminator.
	lineClass = `[^\n\r\x{2028}\x{2029}]`
)

var (
	emailPattern = regexp.MustCompile(
		`^[^@` + whitespaceClass + `]+@[^@` + whitespaceClass + `]+\.[^@` + whitespaceClass + `]+$`,
	)
	// A run of at least two digits followed, anywhere later, by a run of at
	// least three special characters. Specials before digits do not match,
	// and neither does a value holding a line terminator.
	passwordPattern = regexp.MustCompile(
		`^` + lineClass + `*\d{2,}` + lineClass + `*[!@#$%^&*]{3,}` + lineClass + `*$`,
	)
)

// Fixed messages, one per field.
const (
	MsgFirstName       = "First name must be at least 2 characters long and must not contain digits or special characters."
	MsgLastName        = "Last name must be at least 2 characters long and must not contain digits or special characters."
	MsgEmail           = "Enter a valid email address."
	MsgPassword        = "Password must be at least 8 characters long and contain at least 2 digits and 3 special characters."
	MsgPasswordConfirm = "Passwords must match."
	MsgAge             = "Age must be between 18 and 99."
	MsgBirthDate       = "Birth date must match the given age."
	MsgCountry         = "Select a country."
	MsgAcceptedTerms   = "You must accept the terms and conditions."
)

// ruleFunc builds the rule for one field from the whole form snapshot, so
// cross-field rules always see current values.
type ruleFunc func(v FormValues, lookup countries.Lookup) validator.Rule

type fieldRule struct {
	field string
	build ruleFunc
}

// fieldRules is evaluated in order; it also fixes the order of reported errors.
var fieldRules = []fieldRule{
	{FieldFirstName, func(v FormValues, _ countries.Lookup) validator.Rule {
		return nameRule(FieldFirstName, v.FirstName).WithMessage("registration.first_name", MsgFirstName)
	}},
	{FieldLastName, func(v FormValues, _ countries.Lookup) validator.Rule {
		return nameRule(FieldLastName, v.LastName).WithMessage("registration.last_name", MsgLastName)
	}},
	{FieldEmail, func(v FormValues, _ countries.Lookup) validator.Rule {
		return validator.All(FieldEmail,
			validator.NotEmpty(FieldEmail, v.Email),
			validator.MatchesPattern(FieldEmail, v.Email, emailPattern, "email"),
		).WithMessage("registration.email", MsgEmail)
	}},
	{FieldPassword, func(v FormValues, _ countries.Lookup) validator.Rule {
		return validator.All(FieldPassword,
			validator.NotEmpty(FieldPassword, v.Password),
			validator.MinUTF16Len(FieldPassword, v.Password, minPasswordLen),
			validator.MatchesPattern(FieldPassword, v.Password, passwordPattern, "password"),
		).WithMessage("registration.password", MsgPassword)
	}},
	{FieldPasswordConfirm, func(v FormValues, _ countries.Lookup) validator.Rule {
		return validator.EqualTo(FieldPasswordConfirm, v.PasswordConfirm, v.Password, FieldPassword).
			WithMessage("registration.password_confirm", MsgPasswordConfirm)
	}},
	{FieldAge, func(v FormValues, _ countries.Lookup) validator.Rule {
		return validator.IntStringBetween(FieldAge, v.Age, minAge, maxAge).
			WithMessage("registration.age", MsgAge)
	}},
	{FieldBirthDate, func(v FormValues, _ countries.Lookup) validator.Rule {
		return validator.RequiredString(FieldBirthDate, v.BirthDate).
			WithMessage("registration.birth_date", MsgBirthDate)
	}},
	{FieldCountry, func(v FormValues, lookup countries.Lookup) validator.Rule {
		var contains func(string) bool
		if lookup != nil {
			contains = lookup.Contains
		}
		return validator.All(FieldCountry,
			validator.NotEmpty(FieldCountry, v.Country),
			validator.InSet(FieldCountry, v.Country, contains),
		).WithMessage("registration.country", MsgCountry)
	}},
	{FieldGender, func(FormValues, countries.Lookup) validator.Rule {
		return validator.Pass(FieldGender)
	}},
	{FieldAcceptedTerms, func(v FormValues, _ countries.Lookup) validator.Rule {
		return validator.Accepted(FieldAcceptedTerms, v.AcceptedTerms).
			WithMessage("registration.accepted_terms", MsgAcceptedTerms)
	}},
}

func nameRule(field, value string) validator.Rule {
	return validator.All(field,
		validator.NotEmpty(field, value),
		validator.MinLenString(field, value, minNameLength),
		validator.ASCIIAlpha(field, value),
	)
}

var rulesByField = func() map[string]ruleFunc {
	m := make(map[string]ruleFunc, len(fieldRules))
	for _, fr := range fieldRules {
		m[fr.field] = fr.build
	}
	return m
}()

// Fields lists every field key in validation order.
func Fields() []string {
	out := make([]string, 0, len(fieldRules))
	for _, fr := range fieldRules {
		out = append(out, fr.field)
	}
	return out
}

// KnownField reports whether field has a rule.
func KnownField(field string) bool {
	_, ok := rulesByField[field]
	return ok
}
