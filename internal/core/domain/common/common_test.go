package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewEmailStripsWhitespaceOnly(t *testing.T) {
	tests := []struct {
		raw      string
		expected Email
	}{
		{"test@test.test", Email("test@test.test")},
		{"  test@test.test ", Email("test@test.test")},
		{"Test@Test.test", Email("Test@Test.test")},
	}
	for _, test := range tests {
		assert.Equal(t, test.expected, NewEmail(test.raw))
	}
}

func TestOptionalString(t *testing.T) {
	present := NewOptional("value", true)
	absent := NewOptional("value", false)

	assert.Equal(t, "[value]", present.String())
	assert.Equal(t, "[-]", absent.String())
}
