package shared

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Fold lowercases s with Unicode case folding and removes combining marks, so
// "Clérigo" and "CLERIGO" fold to the same string.
func Fold(s string) string {
	// transformers carry state, build a fresh chain per call
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	stripped, _, err := transform.String(t, strings.TrimSpace(s))
	if err != nil {
		stripped = strings.TrimSpace(s)
	}

	return cases.Fold().String(stripped)
}

// NormalizeKey folds s and drops every rune that is not a letter or digit.
// It is the single key function used by all name lookups.
func NormalizeKey(s string) string {
	folded := Fold(s)

	var b strings.Builder
	b.Grow(len(folded))
	for _, r := range folded {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}

	return b.String()
}

// FoldEqual reports whether a and b name the same thing after normalization.
func FoldEqual(a, b string) bool {
	return NormalizeKey(a) == NormalizeKey(b)
}
