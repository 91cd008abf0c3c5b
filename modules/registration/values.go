package registration

import "log/slog"

// Field keys shared by form inputs, Datastar signals and validation errors.
const (
	FieldFirstName       = "firstName"
	FieldLastName        = "lastName"
	FieldEmail           = "email"
	FieldPassword        = "password"
	FieldPasswordConfirm = "passwordConfirm"
	FieldAge             = "age"
	FieldBirthDate       = "birthDate"
	FieldCountry         = "country"
	FieldGender          = "gender"
	FieldAcceptedTerms   = "acceptedTerms"
)

// Genders offered by the form. Any value, including none, is accepted.
var Genders = []string{"male", "female", "other"}

// FormValues is one snapshot of the form. Text fields hold the raw input so
// that empty and malformed values stay distinguishable; Age is parsed only
// by its rule.
type FormValues struct {
	FirstName       string `form:"firstName" json:"firstName"`
	LastName        string `form:"lastName" json:"lastName"`
	Email           string `form:"email" json:"email"`
	Password        string `form:"password" json:"password"`
	PasswordConfirm string `form:"passwordConfirm" json:"passwordConfirm"`
	Age             string `form:"age" json:"age"`
	BirthDate       string `form:"birthDate" json:"birthDate"`
	Country         string `form:"country" json:"country"`
	Gender          string `form:"gender" json:"gender"`
	AcceptedTerms   bool   `form:"acceptedTerms" json:"acceptedTerms"`
}

// Value returns the raw input of a text field by key.
func (v FormValues) Value(field string) (string, bool) {
	switch field {
	case FieldFirstName:
		return v.FirstName, true
	case FieldLastName:
		return v.LastName, true
	case FieldEmail:
		return v.Email, true
	case FieldPassword:
		return v.Password, true
	case FieldPasswordConfirm:
		return v.PasswordConfirm, true
	case FieldAge:
		return v.Age, true
	case FieldBirthDate:
		return v.BirthDate, true
	case FieldCountry:
		return v.Country, true
	case FieldGender:
		return v.Gender, true
	}
	return "", false
}

// LogValue keeps passwords out of logs.
func (v FormValues) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String(FieldFirstName, v.FirstName),
		slog.String(FieldLastName, v.LastName),
		slog.String(FieldEmail, v.Email),
		slog.String(FieldPassword, redact(v.Password)),
		slog.String(FieldPasswordConfirm, redact(v.PasswordConfirm)),
		slog.String(FieldAge, v.Age),
		slog.String(FieldBirthDate, v.BirthDate),
		slog.String(FieldCountry, v.Country),
		slog.String(FieldGender, v.Gender),
		slog.Bool(FieldAcceptedTerms, v.AcceptedTerms),
	)
}

func redact(s string) string {
	if s == "" {
		return ""
	}
	return "[REDACTED]"
}
