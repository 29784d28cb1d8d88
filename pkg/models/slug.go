package models

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	deaccent        = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	nonAlphanumeric = regexp.MustCompile(`[^A-Z0-9 ]+`)
	whitespace      = regexp.MustCompile(`\s+`)
)

// Fold uppercases a label and strips diacritics so that accented and
// unaccented spellings ("CUSTOS VARIÁVEIS" / "CUSTOS VARIAVEIS") hit the
// same patterns. Punctuation is preserved: classification rules rely on
// literal characters such as "/" and "-".
func Fold(label string) string {
	out, _, err := transform.String(deaccent, label)
	if err != nil {
		out = label
	}
	return strings.ToUpper(strings.TrimSpace(out))
}

// Slug normalizes a row label into the key used for the line-item map:
// accent-free, lowercase, single dashes between words.
func Slug(label string) string {
	s := Fold(label)
	s = nonAlphanumeric.ReplaceAllString(s, " ")
	s = whitespace.ReplaceAllString(s, " ")
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, " ", "-")
	return strings.ToLower(s)
}
