package features

import (
	"strings"
	"unicode"
)

// Normalize lowercases text and splits it into tokens made of letters, digits
// and underscores. Any other character separates tokens.
func Normalize(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), isSeparator)
}

func isSeparator(r rune) bool {
	return !(unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_')
}
