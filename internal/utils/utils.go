package utils

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

func CapitalizeFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

// ValidateNumber checks that a user supplied number is within [lo, hi].
func ValidateNumber(value, lo, hi float64) error {
	if value < lo || value > hi {
		return fmt.Errorf("value %g out of range [%g, %g]", value, lo, hi)
	}
	return nil
}

// Pluralize appends an "s" to word unless n is exactly one.
func Pluralize(n int, word string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, word)
	}
	return fmt.Sprintf("%d %s", n, strings.TrimSpace(word)+"s")
}
