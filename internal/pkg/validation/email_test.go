package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidEmail(t *testing.T) {
	testCases := []struct {
		name  string
		email string
		want  bool
	}{
		{name: "Valid simple address", email: "test@example.com", want: true},
		{name: "Valid with plus tag", email: "user+tag@example.com", want: true},
		{name: "Valid with dots and dashes", email: "first.last@sub-domain.example.co", want: true},
		{name: "Valid with underscore", email: "user_name@example.org", want: true},
		{name: "Empty string", email: "", want: false},
		{name: "Missing at sign", email: "invalid-email", want: false},
		{name: "Missing domain", email: "user@", want: false},
		{name: "Missing local part", email: "@example.com", want: false},
		{name: "Missing TLD", email: "user@example", want: false},
		{name: "Single letter TLD", email: "user@example.c", want: false},
		{name: "Numeric TLD", email: "user@example.123", want: false},
		{name: "Whitespace in local part", email: "us er@example.com", want: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, IsValidEmail(tc.email))
		})
	}
}

func TestIsValidEmail_Deterministic(t *testing.T) {
	// The check is pure: re-checking an accepted address must accept it
	// again.
	accepted := []string{"test@example.com", "a@b.co", "x+y@z.io"}
	for _, email := range accepted {
		first := IsValidEmail(email)
		second := IsValidEmail(email)
		assert.True(t, first)
		assert.Equal(t, first, second)
	}
}
