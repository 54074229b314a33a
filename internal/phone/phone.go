// Package phone turns raw phone input into the 10 digit canonical form used
// for validation and persistence, and into a progressive display format.
package phone

import (
	"fmt"
	"strings"
)

const maxDigits = 10

// Digits strips every non-digit rune from raw and keeps at most the first
// ten digits.
func Digits(raw string) string {
	var b strings.Builder
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

// Format renders the display string for raw as it is typed, one call per
// edit: "(809", "(809) - 285", "(809) - 285 - 1725". Applying Format to its
// own output returns the same string, so re-formatting an already formatted
// value is harmless.
func Format(raw string) string {
	d := Digits(raw)
	switch {
	case d == "":
		return ""
	case len(d) <= 3:
		return "(" + d
	case len(d) <= 6:
		return fmt.Sprintf("(%s) - %s", d[:3], d[3:])
	default:
		return fmt.Sprintf("(%s) - %s - %s", d[:3], d[3:6], d[6:])
	}
}
