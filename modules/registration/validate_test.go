package registration_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/regform/modules/registration"
	"github.com/dmitrymomot/regform/pkg/validator"
)

type lookup map[string]bool

func (l lookup) Contains(name string) bool { return l[name] }

var catalog = lookup{"Poland": true, "Japan": true}

func validValues() registration.FormValues {
	return registration.FormValues{
		FirstName:       "Anna",
		LastName:        "Nowak",
		Email:           "a@b.co",
		Password:        "ab12!@#cd",
		PasswordConfirm: "ab12!@#cd",
		Age:             "25",
		BirthDate:       "2000-01-01",
		Country:         "Poland",
		AcceptedTerms:   true,
	}
}

// fieldMessage validates a single field and returns its message, or "" when valid.
func fieldMessage(t *testing.T, field string, v registration.FormValues) string {
	t.Helper()
	err := registration.ValidateField(field, v, catalog)
	if err == nil {
		return ""
	}
	verrs := validator.ExtractValidationErrors(err)
	require.Len(t, verrs, 1)
	assert.Equal(t, field, verrs[0].Field)
	return verrs[0].Message
}

func TestValidateNames(t *testing.T) {
	t.Parallel()

	cases := map[string]bool{
		"Jo":    true,
		"Anna":  true,
		"ANNA":  true,
		"J":     false,
		"":      false,
		"Jo3":   false,
		"Ann-e": false,
		"Anna ": false,
		"Zoë":   false,
	}
	for name, valid := range cases {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			v := validValues()
			v.FirstName, v.LastName = name, name

			first := fieldMessage(t, registration.FieldFirstName, v)
			last := fieldMessage(t, registration.FieldLastName, v)
			if valid {
				assert.Empty(t, first)
				assert.Empty(t, last)
				return
			}
			assert.Equal(t, registration.MsgFirstName, first)
			assert.Equal(t, registration.MsgLastName, last)
		})
	}
}

func TestValidateEmail(t *testing.T) {
	t.Parallel()

	cases := map[string]bool{
		"a@b.co":          true,
		"john.doe@ex.org": true,
		"a@b.c.d":         true,
		"":                false,
		"ab.co":           false,
		"a@b":             false,
		"a b@c.d":         false,
		"a@@b.co":         false,
		"@b.co":           false,
		"a\u00a0b@c.co":   false,
		"a\vb@c.co":       false,
		"a@b.c\u3000o":    false,
		"a\u2028b@c.co":   false,
		"a@b\ufeff.co":    false,
		"a@b.co\n":        false,
		"ż@b.co":          true,
	}
	for email, valid := range cases {
		t.Run(email, func(t *testing.T) {
			t.Parallel()
			v := validValues()
			v.Email = email

			msg := fieldMessage(t, registration.FieldEmail, v)
			if valid {
				assert.Empty(t, msg)
			} else {
				assert.Equal(t, registration.MsgEmail, msg)
			}
		})
	}
}

func TestValidatePassword(t *testing.T) {
	t.Parallel()

	cases := map[string]bool{
		"ab12!@#cd": true,
		"12!@#abc":  true,
		"x99y$%^&z": true,
		"abcd1234":  false,
		"abcdefgh":  false,
		"1!2@3#4$":  false,
		"ab!@#12cd": false, // specials before digits
		"a1!@#b2cd": false, // digits not consecutive
		"12!@#":     false, // too short
		"":          false,

		// Line terminators anywhere reject the value; other whitespace does not.
		"ab12\r!@#cd":     false,
		"ab12!@#cd\nxx":   false,
		"\nab12!@#cd":     false,
		"ab12\u2028!@#cd": false,
		"ab12!@#cd\u2029": false,
		"ab12\t!@#cd":     true,
		"ab12 !@#cd":      true,

		// Length is measured in UTF-16 code units.
		"12!@#😀😀": true,
		"12!@#😀":  false,
	}
	for pw, valid := range cases {
		t.Run(pw, func(t *testing.T) {
			t.Parallel()
			v := validValues()
			v.Password, v.PasswordConfirm = pw, pw

			msg := fieldMessage(t, registration.FieldPassword, v)
			if valid {
				assert.Empty(t, msg)
			} else {
				assert.Equal(t, registration.MsgPassword, msg)
			}
		})
	}
}

func TestValidatePasswordConfirm(t *testing.T) {
	t.Parallel()

	v := validValues()
	assert.Empty(t, fieldMessage(t, registration.FieldPasswordConfirm, v))

	v.PasswordConfirm = "ab12!@#cD"
	assert.Equal(t, registration.MsgPasswordConfirm, fieldMessage(t, registration.FieldPasswordConfirm, v))

	// Changing the password re-evaluates the confirmation against the new value.
	v = validValues()
	v.Password = "zz99!!!!zz"
	assert.Equal(t, registration.MsgPasswordConfirm, fieldMessage(t, registration.FieldPasswordConfirm, v))
	v.PasswordConfirm = "zz99!!!!zz"
	assert.Empty(t, fieldMessage(t, registration.FieldPasswordConfirm, v))

	v.Password, v.PasswordConfirm = "", ""
	assert.Empty(t, fieldMessage(t, registration.FieldPasswordConfirm, v))
}

func TestValidateAge(t *testing.T) {
	t.Parallel()

	cases := map[string]bool{
		"18":   true,
		"25":   true,
		"99":   true,
		"17":   false,
		"100":  false,
		"":     false,
		"abc":  false,
		"25.5": false,
		" 25":  false,
		"-20":  false,
	}
	for age, valid := range cases {
		t.Run(age, func(t *testing.T) {
			t.Parallel()
			v := validValues()
			v.Age = age

			msg := fieldMessage(t, registration.FieldAge, v)
			if valid {
				assert.Empty(t, msg)
			} else {
				assert.Equal(t, registration.MsgAge, msg)
			}
		})
	}
}

func TestValidateBirthDate(t *testing.T) {
	t.Parallel()

	v := validValues()
	v.BirthDate = ""
	assert.Equal(t, registration.MsgBirthDate, fieldMessage(t, registration.FieldBirthDate, v))

	v.BirthDate = "   "
	assert.Equal(t, registration.MsgBirthDate, fieldMessage(t, registration.FieldBirthDate, v))

	// No consistency check against age.
	v.BirthDate = "1950-01-01"
	v.Age = "18"
	assert.Empty(t, fieldMessage(t, registration.FieldBirthDate, v))
}

func TestValidateCountry(t *testing.T) {
	t.Parallel()

	v := validValues()
	assert.Empty(t, fieldMessage(t, registration.FieldCountry, v))

	v.Country = ""
	assert.Equal(t, registration.MsgCountry, fieldMessage(t, registration.FieldCountry, v))

	v.Country = "Atlantis"
	assert.Equal(t, registration.MsgCountry, fieldMessage(t, registration.FieldCountry, v))

	// An empty or missing catalog accepts nothing.
	v = validValues()
	err := registration.ValidateField(registration.FieldCountry, v, lookup{})
	assert.ErrorIs(t, err, validator.ErrValidationFailed)
	err = registration.ValidateField(registration.FieldCountry, v, nil)
	assert.ErrorIs(t, err, validator.ErrValidationFailed)
}

func TestValidateGenderAndTerms(t *testing.T) {
	t.Parallel()

	v := validValues()
	for _, g := range []string{"", "male", "female", "other", "anything"} {
		v.Gender = g
		assert.Empty(t, fieldMessage(t, registration.FieldGender, v))
	}

	v.AcceptedTerms = false
	assert.Equal(t, registration.MsgAcceptedTerms, fieldMessage(t, registration.FieldAcceptedTerms, v))
}

func TestValidate(t *testing.T) {
	t.Parallel()

	t.Run("valid snapshot", func(t *testing.T) {
		t.Parallel()
		assert.NoError(t, registration.Validate(validValues(), catalog))
	})

	t.Run("only the short password fails", func(t *testing.T) {
		t.Parallel()
		v := validValues()
		v.Password, v.PasswordConfirm = "short", "short"

		err := registration.Validate(v, catalog)
		verrs := validator.ExtractValidationErrors(err)
		require.Len(t, verrs, 1)
		assert.Equal(t, registration.FieldPassword, verrs[0].Field)
		assert.Equal(t, registration.MsgPassword, verrs[0].Message)
	})

	t.Run("empty form reports one error per required field in order", func(t *testing.T) {
		t.Parallel()
		err := registration.Validate(registration.FormValues{}, catalog)
		verrs := validator.ExtractValidationErrors(err)

		// passwordConfirm matches the empty password and gender is optional.
		assert.Equal(t, []string{
			registration.FieldFirstName,
			registration.FieldLastName,
			registration.FieldEmail,
			registration.FieldPassword,
			registration.FieldAge,
			registration.FieldBirthDate,
			registration.FieldCountry,
			registration.FieldAcceptedTerms,
		}, verrs.Fields())
		assert.Len(t, verrs, 8)
		assert.True(t, strings.HasPrefix(err.Error(), "validation failed: firstName: "))
	})
}

func TestValidateFieldUnknown(t *testing.T) {
	t.Parallel()

	err := registration.ValidateField("nickname", validValues(), catalog)
	assert.ErrorIs(t, err, registration.ErrUnknownField)
	assert.False(t, registration.KnownField("nickname"))
	assert.True(t, registration.KnownField(registration.FieldGender))
	assert.Len(t, registration.Fields(), 10)
}

func TestDependentFields(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{"password", "passwordConfirm"}, registration.DependentFields(registration.FieldPassword))
	assert.Equal(t, []string{"email"}, registration.DependentFields(registration.FieldEmail))
}
