package formal

import (
	"regexp"
	"strings"

	"github.com/analistabackend-glitch/Herramienta-HV/internal/parsing"
	"github.com/analistabackend-glitch/Herramienta-HV/internal/types"
)

// FormSection is one of the six numbered parts of the form
type FormSection string

const (
	PersonalDataSection FormSection = "datos_personales"
	AcademicEducation   FormSection = "formacion_academica"
	WorkTraining        FormSection = "educacion_trabajo"
	TeachingExperience  FormSection = "experiencia_docente"
	WorkExperience      FormSection = "experiencia_laboral"
	OtherData           FormSection = "otros_datos"
)

type sectionHeader struct {
	section FormSection
	pattern *regexp.Regexp
}

// sectionHeaders are matched at the start of the lower-cased line, in order
var sectionHeaders = []sectionHeader{
	{PersonalDataSection, regexp.MustCompile(`^1\s+datos\s+personales`)},
	{AcademicEducation, regexp.MustCompile(`^2\s+formaci[oó]n\s+acad[eé]mica`)},
	{WorkTraining, regexp.MustCompile(`^3\s+educaci[oó]n\s+para\s+el\s+trabajo`)},
	{TeachingExperience, regexp.MustCompile(`^4\s+experiencia\s+docente`)},
	{WorkExperience, regexp.MustCompile(`^5\s+experiencia\s+laboral`)},
	{OtherData, regexp.MustCompile(`^6\s+otros\s+datos`)},
}

// SplitSections assigns every non-empty trimmed line to a numbered section.
// Lines before the first header belong to personal data; header lines
// themselves are dropped.
func SplitSections(raw string) map[FormSection][]string {
	out := make(map[FormSection][]string, len(sectionHeaders))
	for _, h := range sectionHeaders {
		out[h.section] = []string{}
	}

	current := PersonalDataSection
	for _, l := range strings.Split(raw, "\n") {
		line := strings.TrimSpace(l)
		if section, ok := matchSectionHeader(line); ok {
			current = section
			continue
		}
		if line != "" {
			out[current] = append(out[current], line)
		}
	}
	return out
}

func matchSectionHeader(line string) (FormSection, bool) {
	lower := strings.ToLower(line)
	for _, h := range sectionHeaders {
		if h.pattern.MatchString(lower) {
			return h.section, true
		}
	}
	return "", false
}

// Parse structures a government-form resume. It never fails; missing parts
// come out empty. The form has no free-text profile, skills list, courses or
// references, so those stay empty.
func Parse(raw string) *types.StructuredResume {
	resume := types.NewStructuredResume(types.FormatFormalForm)
	if strings.TrimSpace(raw) == "" {
		return resume
	}

	sections := SplitSections(raw)

	personal := ParsePersonalData(sections[PersonalDataSection])
	resume.Contact = types.Contact{Email: personal.Email, Phone: personal.Phone}
	resume.Education = ParseEducation(sections[AcademicEducation])
	resume.Experience = ParseExperience(sections[WorkExperience])
	resume.DetectedSkills = parsing.DetectSkills(raw)
	resume.ComputeTotals()

	return resume
}
