package formal

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/analistabackend-glitch/Herramienta-HV/internal/parsing"
	"github.com/analistabackend-glitch/Herramienta-HV/internal/textmatch"
)

// PersonalData is what the first section of the form yields
type PersonalData struct {
	Email    string
	Phone    string // ten digits
	IDNumber string // cédula
	RawName  string
}

var (
	formPhoneRe = regexp.MustCompile(`\b3\d{9}\b`)
	idNumberRe  = regexp.MustCompile(`\b1\d{8,9}\b`)
	spaceRe     = regexp.MustCompile(`\s`)
	nameLabels  = []string{"NOMBRES", "PRIMER APELLIDO", "SEGUNDO APELLIDO"}
)

const (
	maxLabelLineLen = 60
	maxValueLen     = 80
	valueLookahead  = 3
)

// ParsePersonalData reads contact and identity fields from the personal-data lines
func ParsePersonalData(lines []string) PersonalData {
	text := strings.Join(lines, "\n")

	var p PersonalData
	p.Email = parsing.EmailRe.FindString(text)
	p.Phone = formPhoneRe.FindString(spaceRe.ReplaceAllString(text, ""))
	p.IDNumber = idNumberRe.FindString(text)
	p.RawName = labelValue(lines, nameLabels)
	return p
}

// labelValue returns the value printed under the first label found. The value
// is the first of the next three lines that is not upper-case and not too long.
func labelValue(lines []string, labels []string) string {
	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		if utf8.RuneCountInString(trimmed) >= maxLabelLineLen {
			continue
		}
		upper := strings.ToUpper(trimmed)
		for _, label := range labels {
			if !strings.Contains(upper, label) {
				continue
			}
			for j := i + 1; j < min(i+1+valueLookahead, len(lines)); j++ {
				value := strings.TrimSpace(lines[j])
				if value != "" && !textmatch.IsUpper(value) && utf8.RuneCountInString(value) < maxValueLen {
					return value
				}
			}
		}
	}
	return ""
}
