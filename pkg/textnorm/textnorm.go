// Package textnorm normalizes short chat messages for keyword matching.
package textnorm

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Normalize lower-cases s, strips diacritics and collapses everything that is
// not a letter or digit into single spaces.
func Normalize(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, s)
	if err != nil {
		folded = s
	}

	var b strings.Builder
	b.Grow(len(folded))
	space := true
	for _, r := range strings.ToLower(folded) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			space = false
			continue
		}
		if !space {
			b.WriteByte(' ')
			space = true
		}
	}
	return strings.TrimSpace(b.String())
}

// Tokens splits normalized text into words.
func Tokens(s string) []string {
	return strings.Fields(Normalize(s))
}

// ContainsPhrase reports whether phrase occurs in text on word boundaries,
// after both are normalized. Text in scripts without spaces (Han) matches on
// plain substring.
func ContainsPhrase(text, phrase string) bool {
	t := Normalize(text)
	p := Normalize(phrase)
	if p == "" {
		return false
	}
	if HasHan(p) {
		return strings.Contains(t, p)
	}
	return strings.Contains(" "+t+" ", " "+p+" ")
}

// HasHan reports whether s contains Han characters.
func HasHan(s string) bool {
	for _, r := range s {
		if unicode.Is(unicode.Han, r) {
			return true
		}
	}
	return false
}
