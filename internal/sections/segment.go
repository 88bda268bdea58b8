// Package sections splits a cleaned free-form resume into named sections.
//
// Segmentation is a header-driven state machine: every line belongs to the
// section of the most recent header seen, or to profile before the first one.
package sections

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/analistabackend-glitch/Herramienta-HV/internal/textmatch"
	"github.com/analistabackend-glitch/Herramienta-HV/internal/types"
)

// maxHeaderLen is the longest line still considered a header
const maxHeaderLen = 80

// sectionContact is recognized as a header but is not an output section, so
// its header line stays in the current section like any other line.
const sectionContact types.Section = "contact"

type matcher interface {
	MatchString(s string) bool
}

// HeaderRule maps one header pattern to a section
type HeaderRule struct {
	Section types.Section
	pattern matcher
}

// headerRules is checked in order and the first match wins
var headerRules = []HeaderRule{
	{types.SectionProfile, textmatch.MustCompile(`(perfil|resumen|sobre\s*m[ií]|acerca\s*de)`)},
	{types.SectionExperience, textmatch.MustCompile(`(experiencias?\s*(laboral(es)?|profesional(es)?)?|` +
		`experencias?\s*(laboral(es)?|profesional(es)?)?|trayectoria|historial\s*laboral)`)},
	{types.SectionEducation, textmatch.MustCompile(`(educaci[oó]n|formaci[oó]n|estudios|t[íi]tulos?|acad[eé]mica)`)},
	{types.SectionSkills, textmatch.MustCompile(`(habilidades|competencias|destrezas|conocimientos|skills)`)},
	{types.SectionCourses, regexp.MustCompile(`^(cursos?|certificaciones?|diplomados?|capacitaciones?)[\s:]*$`)},
	{types.SectionReferences, textmatch.MustCompile(`(referencias?|referencia\s*personal)`)},
	{sectionContact, textmatch.MustCompile(`(contacto|datos\s*personales?|informaci[oó]n\s*personal)`)},
}

// DetectHeader returns the section a header line opens. ok is false for
// blank lines, lines longer than 80 characters and lines matching no rule.
func DetectHeader(line string) (section types.Section, ok bool) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || utf8.RuneCountInString(trimmed) > maxHeaderLen {
		return "", false
	}

	lower := strings.ToLower(trimmed)
	for _, rule := range headerRules {
		if rule.pattern.MatchString(lower) {
			return rule.Section, true
		}
	}
	return "", false
}

func isOutputSection(s types.Section) bool {
	for _, k := range types.AllSections {
		if k == s {
			return true
		}
	}
	return false
}

// Segment assigns every line of cleaned text to a section. Header lines are
// dropped, and blank lines are skipped until a section has content.
func Segment(cleaned string) types.SectionMap {
	current := types.SectionProfile
	acc := make(map[types.Section][]string, len(types.AllSections))

	for _, line := range strings.Split(cleaned, "\n") {
		if s, ok := DetectHeader(line); ok && isOutputSection(s) {
			current = s
			continue
		}
		if strings.TrimSpace(line) == "" && len(acc[current]) == 0 {
			continue
		}
		acc[current] = append(acc[current], line)
	}

	out := types.NewSectionMap()
	for s, lines := range acc {
		out[s] = strings.TrimSpace(strings.Join(lines, "\n"))
	}
	return out
}
