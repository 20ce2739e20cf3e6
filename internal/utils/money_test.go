package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatMoney(t *testing.T) {
	assert.Equal(t, "₹50,000.00", FormatMoney(50000, "INR"))
	assert.Equal(t, "$1,234.50", FormatMoney(1234.5, "USD"))
	assert.Equal(t, "₹0.99", FormatMoney(0.99, ""))
}

func TestFormatWhole(t *testing.T) {
	tests := []struct {
		amount   float64
		code     string
		expected string
	}{
		{12000000, "INR", "₹12,000,000"},
		{2499.6, "INR", "₹2,500"},
		{0, "INR", "₹0"},
		{950, "USD", "$950"},
		{700, "unknown", "₹700"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, FormatWhole(tt.amount, tt.code))
	}
}

func TestFormatLakh(t *testing.T) {
	assert.Equal(t, "₹15L", FormatLakh(1500000, "INR"))
	assert.Equal(t, "₹120L", FormatLakh(12000000, "INR"))
	assert.Equal(t, "₹1L", FormatLakh(120000, ""))
	assert.Equal(t, "$1,500,000", FormatLakh(1500000, "USD"))
}
