package helpers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatFloat(t *testing.T) {
	assert.Equal(t, 950.0, FormatFloat(950.0001, 2))
	assert.Equal(t, 123.46, FormatFloat(123.456, 2))
	assert.Equal(t, 0.3, FormatFloat(0.1+0.2, 2))
	assert.Equal(t, -9350.0, FormatFloat(-9350.0, 2))
	assert.Equal(t, 7950.0, FormatFloat(950.0+7000.0, 2))
}
