// Package formal parses the Colombian government "Formato Único de Hoja de
// Vida" into the same StructuredResume shape produced for free-form resumes.
package formal

import (
	"regexp"
	"strings"
)

// formMarkers are phrases printed on every copy of the form
var formMarkers = []*regexp.Regexp{
	regexp.MustCompile(`formato\s+[úu]nico`),
	regexp.MustCompile(`hoja\s+de\s+vida\s+persona\s+natural`),
	regexp.MustCompile(`leyes?\s+190\s+de\s+1995`),
	regexp.MustCompile(`489\s+y\s+443\s+de\s+1998`),
	regexp.MustCompile(`1\s+datos\s+personales`),
	regexp.MustCompile(`entidad\s+receptora`),
	regexp.MustCompile(`primer\s+apellido\s+segundo\s+apellido`),
	regexp.MustCompile(`libreta\s+militar`),
}

// minMarkers is low because extracted forms are often fragmented
const minMarkers = 2

// IsFormalForm reports whether raw text looks like the government form: at
// least two of the distinctive markers must be present.
func IsFormalForm(raw string) bool {
	lower := strings.ToLower(raw)
	found := 0
	for _, m := range formMarkers {
		if m.MatchString(lower) {
			found++
			if found >= minMarkers {
				return true
			}
		}
	}
	return false
}
