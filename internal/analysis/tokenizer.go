// Package analysis implements the deterministic text-metrics pipeline:
// tokenization, the per-document metric record and the readability
// estimate. Every function here is a pure function of its input.
package analysis

import (
	"strings"
	"unicode"
)

// Tokenize splits raw text into normalized lowercase word tokens.
// A word is a maximal run of Unicode letters and digits; every other rune
// acts as a separator, so Cyrillic and other non-ASCII alphabets work the
// same as Latin. This definition of a word is authoritative for all
// downstream metrics.
func Tokenize(text string) []string {
	if text == "" {
		return nil
	}
	f := func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	}
	return strings.FieldsFunc(strings.ToLower(text), f)
}
