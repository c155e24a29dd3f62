package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidatePhone(t *testing.T) {
	valid := []string{
		"+15550001111",
		"+44 20 7946 0958",
		"555-000-1111",
		"(555) 000 1111",
	}
	for _, number := range valid {
		assert.True(t, ValidatePhone(number), "expected %q to be valid", number)
	}

	invalid := []string{
		"",
		"abc",
		"+0123",
		"+1234567890123456", // too long
	}
	for _, number := range invalid {
		assert.False(t, ValidatePhone(number), "expected %q to be invalid", number)
	}
}
