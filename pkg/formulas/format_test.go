package formulas

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		input    float64
		expected string
	}{
		{0, "0"},
		{12500, "12,500"},
		{159.99, "159.99"},
		{1234567.5, "1,234,567.5"},
		{-3000, "-3,000"},
		{2857.142857, "2,857.14"},
		{math.NaN(), "0"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, FormatAmount(tt.input))
	}
}

func TestFormatRand(t *testing.T) {
	assert.Equal(t, "R20,000", FormatRand(20000))
	assert.Equal(t, "-R1,500.5", FormatRand(-1500.5))
}
