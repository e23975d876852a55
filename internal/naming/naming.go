// Package naming provides shared string case conversion utilities.
package naming

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// SplitWords breaks s into words. Any rune that is not a letter or digit
// separates words, as do lower-to-upper transitions ("userId" -> "user",
// "Id") and the end of an acronym ("HTTPServer" -> "HTTP", "Server").
func SplitWords(s string) []string {
	runes := []rune(s)
	var words []string
	var cur strings.Builder

	flush := func() {
		if cur.Len() > 0 {
			words = append(words, cur.String())
			cur.Reset()
		}
	}

	for i, r := range runes {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			flush()
			continue
		}
		if cur.Len() > 0 && unicode.IsUpper(r) {
			prev := runes[i-1]
			switch {
			case unicode.IsLower(prev) || unicode.IsDigit(prev):
				flush()
			case unicode.IsUpper(prev) && i+1 < len(runes) && unicode.IsLower(runes[i+1]):
				flush()
			}
		}
		cur.WriteRune(r)
	}
	flush()
	return words
}

// ToCamelCase lower-cases the first word of s and title-cases the rest. A
// later word that starts with a digit is lower-cased and prefixed with an
// underscore so that it stays visibly separate from the word before it.
// Example: "get_/items/{id}" -> "getItemsId"
// Example: "get_/v1_2/items" -> "getV1_2Items"
func ToCamelCase(s string) string {
	title := cases.Title(language.Und)
	lower := cases.Lower(language.Und)

	var b strings.Builder
	for i, w := range SplitWords(s) {
		switch {
		case i == 0:
			b.WriteString(lower.String(w))
		case startsWithDigit(w):
			b.WriteByte('_')
			b.WriteString(lower.String(w))
		default:
			b.WriteString(title.String(w))
		}
	}
	return b.String()
}

func startsWithDigit(s string) bool {
	for _, r := range s {
		return unicode.IsDigit(r)
	}
	return false
}
