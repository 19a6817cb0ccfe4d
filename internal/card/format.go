// Package card holds the input masks applied to card fields before they
// are echoed back to the client and submitted to the backend. All
// transforms are pure and idempotent on already-formatted input.
package card

import "strings"

const (
	// MaxNumberDigits caps the card number; long virtual-card PANs are allowed.
	MaxNumberDigits = 24
	maxExpiryDigits = 4
	maxCVVLen       = 4
)

// FormatNumber strips non-digits, truncates to MaxNumberDigits and groups
// the digits in runs of four separated by single spaces.
func FormatNumber(s string) string {
	digits := digitsOnly(s)
	if len(digits) > MaxNumberDigits {
		digits = digits[:MaxNumberDigits]
	}
	var b strings.Builder
	b.Grow(len(digits) + len(digits)/4)
	for i := 0; i < len(digits); i++ {
		if i > 0 && i%4 == 0 {
			b.WriteByte(' ')
		}
		b.WriteByte(digits[i])
	}
	return b.String()
}

// FormatExpiry strips non-digits, truncates to four digits and renders
// MM/YY once at least two digits are present. Shorter input is returned
// unformatted so the user can still edit the month.
func FormatExpiry(s string) string {
	digits := digitsOnly(s)
	if len(digits) > maxExpiryDigits {
		digits = digits[:maxExpiryDigits]
	}
	if len(digits) >= 2 {
		return digits[:2] + "/" + digits[2:]
	}
	return digits
}

// ClampCVV truncates the value to four characters. It deliberately does
// not filter non-digits: the observed behavior accepts any characters,
// and changing that is pending product clarification.
func ClampCVV(s string) string {
	runes := []rune(s)
	if len(runes) > maxCVVLen {
		runes = runes[:maxCVVLen]
	}
	return string(runes)
}

func digitsOnly(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
