package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateEmail(t *testing.T) {
	assert.True(t, ValidateEmail("user@example.com"))
	assert.True(t, ValidateEmail("first.last+tag@sub.example.co"))
	assert.False(t, ValidateEmail("not-an-email"))
	assert.False(t, ValidateEmail("user@"))
	assert.False(t, ValidateEmail("@example.com"))
}

func TestValidateName(t *testing.T) {
	assert.True(t, ValidateName("bob"))
	assert.False(t, ValidateName("ab"))
}

func TestValidatePassword(t *testing.T) {
	assert.True(t, ValidatePassword("12345"))
	assert.False(t, ValidatePassword("1234"))
}
