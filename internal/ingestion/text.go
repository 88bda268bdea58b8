// Package ingestion turns resume files into cleaned text ready for structuring.
package ingestion

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	// disallowedRe matches anything that is not a letter, digit, underscore,
	// whitespace or one of - @ . / ,
	disallowedRe    = regexp.MustCompile(`[^\p{L}\p{N}_\s\-@./,]`)
	horizontalRunRe = regexp.MustCompile(`[ \t]+`)
	nonWordRe       = regexp.MustCompile(`[^a-z0-9_\s]`)
	whitespaceRunRe = regexp.MustCompile(`\s+`)
)

// CleanText normalizes raw extracted text while keeping Spanish accents and
// line structure: NFC composition, stray symbols replaced by spaces, runs of
// spaces collapsed, every line trimmed and consecutive blank lines folded
// into one.
func CleanText(content string) string {
	if content == "" {
		return ""
	}

	content = norm.NFC.String(content)
	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")
	content = disallowedRe.ReplaceAllString(content, " ")
	content = horizontalRunRe.ReplaceAllString(content, " ")

	lines := strings.Split(content, "\n")
	cleaned := make([]string, 0, len(lines))
	previousBlank := false
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			if previousBlank {
				continue
			}
			previousBlank = true
		} else {
			previousBlank = false
		}
		cleaned = append(cleaned, line)
	}

	return strings.TrimSpace(strings.Join(cleaned, "\n"))
}

// asciiFold decomposes text and drops everything outside ASCII, which removes
// accents along with any symbol that has no ASCII decomposition.
var asciiFold = transform.Chain(norm.NFKD, runes.Remove(runes.Predicate(func(r rune) bool {
	return r > unicode.MaxASCII
})))

// NormalizeForComparison returns an aggressive matching key: accents folded,
// lower case, punctuation turned into spaces and whitespace collapsed. It is
// meant for vocabulary lookups only, never for output.
func NormalizeForComparison(s string) string {
	folded, _, err := transform.String(asciiFold, s)
	if err != nil {
		folded = s
	}
	folded = strings.ToLower(folded)
	folded = nonWordRe.ReplaceAllString(folded, " ")
	folded = whitespaceRunRe.ReplaceAllString(folded, " ")
	return strings.TrimSpace(folded)
}
