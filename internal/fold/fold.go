// Package fold normalizes free text into the ASCII subset used in
// email local parts and domains.
package fold

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Lower strips diacritics and lowercases s, so "Université" becomes
// "universite".
func Lower(s string) string {
	// transformers carry state; build them per call
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		out = s
	}
	return cases.Lower(language.Und).String(out)
}

// Alnum deletes every byte that is not a lowercase ASCII letter, a digit
// or whitespace. Callers fold first.
func Alnum(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case unicode.IsSpace(r):
			b.WriteByte(' ')
		}
	}
	return b.String()
}

// Token folds s into a single [a-z0-9]+ run, dropping whitespace.
func Token(s string) string {
	return strings.Join(strings.Fields(Alnum(Lower(s))), "")
}
