package lexicon

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

var punctuation = strings.NewReplacer(
	"\u2019", "'",
	"\u2018", "'",
	"\u00a0", " ",
	"\u202f", " ",
)

// Fold trims text, composes accents (NFC) and unifies apostrophes and spaces.
// Casing is preserved.
func Fold(text string) string {
	return punctuation.Replace(norm.NFC.String(strings.TrimSpace(text)))
}

// Normalize folds text and lower-cases it with French casing rules.
// Every keyword comparison in the package runs on normalized text.
func Normalize(text string) string {
	// Casers are stateful, one per call
	return cases.Lower(language.French).String(Fold(text))
}

// Title capitalises each word, e.g. "nice" -> "Nice"
func Title(text string) string {
	return cases.Title(language.French).String(text)
}

// words splits normalized text into letter/digit runs
func words(text string) []string {
	return strings.FieldsFunc(text, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}
