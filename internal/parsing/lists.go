package parsing

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	listSeparatorRe = regexp.MustCompile(`[\n,;•\-]`)
	upperCaser      = cases.Upper(language.Spanish)
	lowerCaser      = cases.Lower(language.Spanish)
)

// ParseList splits a skills or courses section into items. Newlines, commas,
// semicolons, bullets and hyphens separate items; items of two characters or
// fewer are dropped and the rest are capitalized.
func ParseList(text string) []string {
	items := []string{}
	if strings.TrimSpace(text) == "" {
		return items
	}

	for _, part := range listSeparatorRe.Split(text, -1) {
		item := strings.TrimSpace(part)
		if utf8.RuneCountInString(item) > 2 {
			items = append(items, Capitalize(item))
		}
	}
	return items
}

// Capitalize upper-cases the first letter of s and lower-cases the rest
func Capitalize(s string) string {
	if s == "" {
		return s
	}
	_, size := utf8.DecodeRuneInString(s)
	return upperCaser.String(s[:size]) + lowerCaser.String(s[size:])
}
