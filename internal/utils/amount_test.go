package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0.00"},
		{100, "100.00"},
		{99.999, "100.00"},
		{12.305, "12.31"},
		{-3.5, "-3.50"},
		{0.1 + 0.2, "0.30"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatAmount(tt.in))
	}
}

func TestFormatWithCurrency(t *testing.T) {
	assert.Equal(t, "20.00 EUR", FormatWithCurrency(20, "EUR"))
}

func TestParseAmount(t *testing.T) {
	got, err := ParseAmount("150.5")
	require.NoError(t, err)
	assert.Equal(t, 150.5, got)

	_, err = ParseAmount("150.5.0")
	assert.Error(t, err)
}
