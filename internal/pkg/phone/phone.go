// Package phone holds presentation and input helpers for client phone numbers.
// Validation itself lives in the lead domain.
package phone

import (
	"strings"

	"github.com/nyaruka/phonenumbers"
)

const (
	DefaultRegion = "IN"
	maxDigits     = 10
)

// ShapeInput mirrors what the contact form does while typing: drop every
// non-digit and keep at most ten digits.
func ShapeInput(raw string) string {
	var b strings.Builder
	b.Grow(maxDigits)
	for _, r := range raw {
		if r < '0' || r > '9' {
			continue
		}
		b.WriteRune(r)
		if b.Len() == maxDigits {
			break
		}
	}
	return b.String()
}

// E164 formats a national number as E.164. Anything that does not parse as a
// valid number for DefaultRegion is returned unchanged.
func E164(national string) string {
	num, err := phonenumbers.Parse(national, DefaultRegion)
	if err != nil {
		return national
	}
	if !phonenumbers.IsValidNumber(num) {
		return national
	}
	return phonenumbers.Format(num, phonenumbers.E164)
}
