package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatKES(t *testing.T) {
	assert.Equal(t, "0", FormatKES(0))
	assert.Equal(t, "950", FormatKES(950))
	assert.Equal(t, "3,000", FormatKES(3000))
	assert.Equal(t, "5,003,000", FormatKES(5003000))
	assert.Equal(t, "-2,500,000", FormatKES(-2500000))
}
