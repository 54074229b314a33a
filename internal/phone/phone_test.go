package phone_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"coopcredit/internal/phone"
)

func TestDigits(t *testing.T) {
	cases := []struct {
		raw  string
		want string
	}{
		{"", ""},
		{"abc", ""},
		{"8092851725", "8092851725"},
		{"809-285-1725", "8092851725"},
		{"(809) - 285 - 1725", "8092851725"},
		{"+1 809 285 1725 9999", "1809285172"},
		{"80928517259999", "8092851725"},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, phone.Digits(tc.raw), "raw %q", tc.raw)
	}
}

func TestFormatProgressive(t *testing.T) {
	cases := []struct {
		raw  string
		want string
	}{
		{"", ""},
		{"x-y", ""},
		{"8", "(8"},
		{"809", "(809"},
		{"8092", "(809) - 2"},
		{"809285", "(809) - 285"},
		{"8092851", "(809) - 285 - 1"},
		{"8092851725", "(809) - 285 - 1725"},
		{"809-285-1725", "(809) - 285 - 1725"},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, phone.Format(tc.raw), "raw %q", tc.raw)
	}
}

func TestFormatIdempotent(t *testing.T) {
	inputs := []string{"", "8", "809", "8092", "809285", "8092851", "8092851725", "call me: 809.285.1725!"}

	for _, raw := range inputs {
		once := phone.Format(raw)
		assert.Equal(t, once, phone.Format(once), "raw %q", raw)
	}
}

func TestFormatOutputAlphabet(t *testing.T) {
	inputs := []string{"abc123def456ghi789jkl0xx", "++(809)2851725##", "80928517259999999"}

	for _, raw := range inputs {
		out := phone.Format(raw)

		digits := 0
		for _, r := range out {
			if r >= '0' && r <= '9' {
				digits++
				continue
			}
			assert.True(t, strings.ContainsRune("() -", r), "unexpected rune %q in %q", r, out)
		}
		assert.LessOrEqual(t, digits, 10, "raw %q", raw)
	}
}
