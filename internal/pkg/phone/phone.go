// Package phone normalizes phone numbers to E.164-ish form.
// Issuance and verification must run input through the same normalization,
// since the normalized number is the storage key.
package phone

import "strings"

// Normalize strips non-digits and applies a US-centric country-code heuristic:
// 11 digits starting with 1 keep the leading 1, bare 10-digit numbers get a 1
// prefix, anything else is returned with a plain + prefix.
func Normalize(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	digits := b.String()

	switch {
	case len(digits) == 11 && strings.HasPrefix(digits, "1"):
		return "+" + digits
	case len(digits) == 10 && !strings.HasPrefix(digits, "1"):
		return "+1" + digits
	default:
		return "+" + digits
	}
}
