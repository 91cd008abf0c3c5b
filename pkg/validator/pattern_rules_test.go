package validator_test

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/regform/pkg/validator"
)

func TestMatchesPattern(t *testing.T) {
	t.Parallel()

	re := regexp.MustCompile(`^\d{3}$`)

	t.Run("passes on match", func(t *testing.T) {
		t.Parallel()
		rule := validator.MatchesPattern("code", "123", re, "three digits")
		assert.True(t, rule.Check())
		assert.Equal(t, "must match three digits pattern", rule.Error.Message)
		assert.Equal(t, `^\d{3}$`, rule.Error.TranslationValues["pattern"])
	})

	t.Run("fails on mismatch and empty input", func(t *testing.T) {
		t.Parallel()
		assert.False(t, validator.MatchesPattern("code", "12a", re, "three digits").Check())
		assert.False(t, validator.MatchesPattern("code", "", re, "three digits").Check())
	})
}

func TestASCIIAlpha(t *testing.T) {
	t.Parallel()

	tests := []struct {
		value string
		want  bool
	}{
		{"Anna", true},
		{"nowak", true},
		{"ANNA", true},
		{"", false},
		{"Ann4", false},
		{"Anna-Maria", false},
		{"Anna Maria", false},
		{"Łucja", false},
		{"Zoë", false},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, validator.ASCIIAlpha("name", tt.value).Check())
		})
	}
}
