// Package parsing extracts education entries, skill and course lists, the
// detected-skill vocabulary and contact data from resume text.
package parsing

import (
	"regexp"
	"strings"

	"github.com/analistabackend-glitch/Herramienta-HV/internal/types"
)

// InstitutionKeywords mark a line naming a school
var InstitutionKeywords = []string{
	"universidad", "corporacion", "corporación", "instituto", "colegio",
	"sena", "escuela", "politecnico",
}

// DegreeKeywords mark a line naming a degree or diploma
var DegreeKeywords = []string{
	"contador", "administrador", "ingeniero", "licenciado", "tecnico",
	"tecnólogo", "diplomado", "especialista", "magister",
}

var educationYearRe = regexp.MustCompile(`\b(19|20)\d{2}\b`)

// ParseEducation reads an education section in one pass. A year on a line
// that is not an institution line starts a new entry; degree and institution
// lines fill the current entry's title and institution when still unset.
func ParseEducation(text string) []types.EducationEntry {
	entries := []types.EducationEntry{}
	if strings.TrimSpace(text) == "" {
		return entries
	}

	var current types.EducationEntry
	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}

		lower := strings.ToLower(line)
		year := educationYearRe.FindString(line)
		institution := containsAny(lower, InstitutionKeywords)
		degree := containsAny(lower, DegreeKeywords)

		switch {
		case year != "" && !institution:
			if !current.IsEmpty() {
				entries = append(entries, current)
			}
			current = types.EducationEntry{Year: year}
			if degree {
				current.Title = line
			}
		case degree && current.Title == "":
			current.Title = line
		case institution && current.Institution == "":
			current.Institution = line
		}
	}

	if !current.IsEmpty() {
		entries = append(entries, current)
	}
	return entries
}

func containsAny(s string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(s, k) {
			return true
		}
	}
	return false
}
