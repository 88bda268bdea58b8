package formal

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/analistabackend-glitch/Herramienta-HV/internal/dates"
	"github.com/analistabackend-glitch/Herramienta-HV/internal/types"
)

type modality struct {
	code string
	name string
}

// modalities is checked in order; the first code found on a line wins
var modalities = []modality{
	{"POSTGRADO", "Postgrado"},
	{"PREGRADO", "Pregrado"},
	{"TECNICA", "Técnica"},
	{"TC", "Técnica"},
	{"TL", "Tecnológica"},
	{"ES", "Especialización"},
	{"MG", "Maestría"},
	{"DOC", "Doctorado"},
}

// modalityWords are full modality names a row may start with instead of a
// code. The whole row is kept as the title.
var modalityWords = []modality{
	{"ESPECIALIZACION", "Especialización"},
	{"ESPECIALIZACIÓN", "Especialización"},
	{"MAESTRIA", "Maestría"},
	{"MAESTRÍA", "Maestría"},
	{"DOCTORADO", "Doctorado"},
	{"TECNOLOGO", "Tecnológica"},
	{"TECNÓLOGO", "Tecnológica"},
	{"TECNOLOGIA", "Tecnológica"},
	{"TECNOLOGÍA", "Tecnológica"},
}

var (
	// modalityPrefixRe strips the code, semester count and graduated mark
	modalityPrefixRe = regexp.MustCompile(`(?i)^(POSTGRADO|PREGRADO|TECNICA|TC|TL|ES|MG|DOC)(?:[\s\d]|$)\s*\d*\s*X?\s*`)

	formInstitutionKeywords = []string{
		"universidad", "corporacion", "politecnico", "institución",
		"escuela", "colegio", "sena", "unad", "esap",
	}
)

const minProgramNameLen = 4

// ParseEducation reads the academic-education lines in order. Rows carrying
// a modality code become entries; a line naming an institution fills the
// latest entry so far that still lacks one.
func ParseEducation(lines []string) []types.EducationEntry {
	entries := []types.EducationEntry{}

	for _, line := range lines {
		if m, ok := lineModalityWord(line); ok {
			title, _, _ := strings.Cut(strings.TrimSpace(line), "  ")
			entries = append(entries, types.EducationEntry{
				Modality: m.name,
				Title:    strings.TrimSpace(title),
				Year:     dates.FirstYear(line),
			})
			continue
		}
		if m, ok := lineModality(line); ok {
			rest := strings.TrimSpace(modalityPrefixRe.ReplaceAllString(strings.TrimSpace(line), ""))
			if utf8.RuneCountInString(rest) > minProgramNameLen {
				title, _, _ := strings.Cut(rest, "  ")
				entries = append(entries, types.EducationEntry{
					Modality: m.name,
					Title:    strings.TrimSpace(title),
					Year:     dates.FirstYear(line),
				})
			}
			continue
		}

		if !containsAny(strings.ToLower(line), formInstitutionKeywords) {
			continue
		}
		for i := len(entries) - 1; i >= 0; i-- {
			if entries[i].Institution == "" {
				entries[i].Institution = strings.TrimSpace(line)
				break
			}
		}
	}

	return entries
}

// lineModality finds the modality code a line starts with or carries as a
// separate word.
func lineModality(line string) (modality, bool) {
	upper := strings.ToUpper(strings.TrimSpace(line))
	for _, m := range modalities {
		if startsWithWord(upper, m.code) || strings.Contains(upper, " "+m.code+" ") {
			return m, true
		}
	}
	return modality{}, false
}

// lineModalityWord finds the full modality name a line starts with, for rows
// that carry no code.
func lineModalityWord(line string) (modality, bool) {
	upper := strings.ToUpper(strings.TrimSpace(line))
	if _, ok := lineModality(line); ok {
		return modality{}, false
	}
	for _, m := range modalityWords {
		if startsWithWord(upper, m.code) {
			return m, true
		}
	}
	return modality{}, false
}

func startsWithWord(s, word string) bool {
	if !strings.HasPrefix(s, word) {
		return false
	}
	if len(s) == len(word) {
		return true
	}
	next := s[len(word)]
	return next == ' ' || next == '\t' || (next >= '0' && next <= '9')
}

func containsAny(s string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(s, k) {
			return true
		}
	}
	return false
}
