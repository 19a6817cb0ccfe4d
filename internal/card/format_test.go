package card

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"classic visa", "4111111111111111", "4111 1111 1111 1111"},
		{"already formatted", "4111 1111 1111 1111", "4111 1111 1111 1111"},
		{"partial group", "411111", "4111 11"},
		{"single digit", "4", "4"},
		{"empty", "", ""},
		{"strips letters and symbols", "4111-abcd-1111x", "4111 1111"},
		{"exact group boundary keeps no trailing space", "41111111", "4111 1111"},
		{"24 digit virtual pan", "123456789012345678901234", "1234 5678 9012 3456 7890 1234"},
		{"truncated past 24 digits", "1234567890123456789012349999", "1234 5678 9012 3456 7890 1234"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatNumber(tt.input)
			assert.Equal(t, tt.want, got)
			// Formatting must be idempotent.
			assert.Equal(t, got, FormatNumber(got))
		})
	}
}

func TestFormatNumber_PreservesDigitOrder(t *testing.T) {
	in := "9876 5432 10 ab 9988"
	got := FormatNumber(in)
	assert.Equal(t, "98765432109988", strings.ReplaceAll(got, " ", ""))
	assert.NotContains(t, got, "  ")
	assert.False(t, strings.HasSuffix(got, " "))
}

func TestFormatExpiry(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"full expiry", "1225", "12/25"},
		{"already formatted", "12/25", "12/25"},
		{"single digit stays raw", "1", "1"},
		{"two digits get the slash", "12", "12/"},
		{"three digits", "122", "12/2"},
		{"truncates past four digits", "122534", "12/25"},
		{"strips non digits", "12-25", "12/25"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatExpiry(tt.input)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, got, FormatExpiry(got))
		})
	}
}

func TestClampCVV(t *testing.T) {
	assert.Equal(t, "123", ClampCVV("123"))
	assert.Equal(t, "1234", ClampCVV("12345"))
	// No digit filtering on CVV, by observed behavior.
	assert.Equal(t, "12ab", ClampCVV("12abcd"))
	assert.Equal(t, "", ClampCVV(""))
}
