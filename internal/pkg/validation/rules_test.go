package validation

import (
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsEmail(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"user@example.com", true},
		{"  User@Example.COM ", true},
		{"admin@localhost", true},
		{"", false},
		{"@example.com", false},
		{"user@", false},
		{"user", false},
		{"a@b@c", false},
		{"a b@c.d", false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, IsEmail(tt.in))
		})
	}
}

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "user@example.com", NormalizeEmail("  USER@Example.com\t"))
}

func TestIsPassword(t *testing.T) {
	assert.False(t, IsPassword("short"))
	assert.True(t, IsPassword("12345678"))
	assert.True(t, IsPassword(strings.Repeat("a", 72)))
	assert.False(t, IsPassword(strings.Repeat("a", 73)))
}

type sample struct {
	Email    string  `validate:"lmsemail"`
	Password string  `validate:"password"`
	Gender   string  `validate:"gender"`
	Mode     *string `validate:"omitempty,mode"`
}

func TestRegisterRules(t *testing.T) {
	v := validator.New()
	require.NoError(t, RegisterRules(v))

	mode := "Hybrid"
	ok := sample{Email: "a@b.c", Password: "password1", Gender: "Female", Mode: &mode}
	assert.NoError(t, v.Struct(ok))

	bad := "bus"
	err := v.Struct(sample{Email: "nope", Password: "x", Gender: "robot", Mode: &bad})
	require.Error(t, err)

	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	tags := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		tags = append(tags, fe.Tag())
	}
	assert.ElementsMatch(t, []string{TagEmail, TagPassword, TagGender, TagMode}, tags)
}

func TestRegisterRulesReportsJSONNames(t *testing.T) {
	v := validator.New()
	require.NoError(t, RegisterRules(v))

	type payload struct {
		FirstName string `json:"firstName" validate:"required"`
	}
	err := v.Struct(payload{})

	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Equal(t, "firstName", verrs[0].Field())
}
