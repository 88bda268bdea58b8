package formal

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/analistabackend-glitch/Herramienta-HV/internal/dates"
	"github.com/analistabackend-glitch/Herramienta-HV/internal/textmatch"
	"github.com/analistabackend-glitch/Herramienta-HV/internal/types"
)

// Field labels of the work-experience block, matched as substrings of the
// upper-cased line.
var (
	entityLabels   = []string{"ENTIDAD O EMPRESA", "NOMBRE DE LA ENTIDAD", "EMPRESA", "RAZÓN SOCIAL", "ENTIDAD"}
	positionLabels = []string{"CARGO O EMPLEO DESEMPEÑADO", "CARGO", "EMPLEO DESEMPEÑADO", "DENOMINACIÓN DEL CARGO"}
	startLabels    = []string{"FECHA DE INICIO", "FECHA INICIO", "DESDE"}
	endLabels      = []string{"FECHA DE RETIRO", "FECHA RETIRO", "HASTA", "FECHA DE TERMINACIÓN"}

	// fallbackExcluded keeps form labels from being read as company names
	fallbackExcluded = []string{"CARGO", "ENTIDAD", "FECHA", "ÁREA", "TIPO", "EXPERIENCIA", "FORMACIÓN", "DATOS"}
)

var (
	formMonthRe   = regexp.MustCompile(`\b(0?[1-9]|1[0-2])\b`)
	formOngoingRe = regexp.MustCompile(`(actual|vigente|presente)`)
)

const (
	defaultStartMonth = "01"
	defaultEndMonth   = "12"

	minFallbackCompanyLen = 5
	maxFallbackCompanyLen = 80
)

// ParseExperience reads the work-experience lines of the form. Each entity
// label starts a record and the line after a label is its value. When no
// label yields a record, short upper-case lines are taken as companies.
func ParseExperience(lines []string) []types.EmploymentRecord {
	records := []types.EmploymentRecord{}
	var cur types.EmploymentRecord

	for i := 0; i < len(lines); i++ {
		upper := strings.ToUpper(strings.TrimSpace(lines[i]))
		hasNext := i+1 < len(lines)

		switch {
		case containsAny(upper, entityLabels):
			if cur.HasIdentity() {
				records = append(records, finishRecord(cur))
			}
			cur = types.EmploymentRecord{}
			if hasNext {
				cur.Company = strings.TrimSpace(lines[i+1])
				i++
			}

		case containsAny(upper, positionLabels):
			if hasNext {
				cur.Title = strings.TrimSpace(lines[i+1])
				i++
			}

		case containsAny(upper, startLabels):
			if d, ok := labelDate(lines, i, defaultStartMonth); ok {
				cur.Start = d
			}

		case containsAny(upper, endLabels):
			if d, ok := labelDate(lines, i, defaultEndMonth); ok {
				cur.End = d
			} else if stillHeld(lines, i) {
				cur.End = types.Ongoing
			}
		}
	}

	if cur.HasIdentity() {
		records = append(records, finishRecord(cur))
	}

	if len(records) == 0 {
		return fallbackExperience(lines)
	}
	return records
}

// labelDate reads a month and year from the label line, or from the next line
// when the label line has no year. A missing month takes defaultMonth.
func labelDate(lines []string, i int, defaultMonth string) (string, bool) {
	line := lines[i]
	year := dates.FirstYear(line)
	month := formMonthRe.FindString(line)
	if year == "" && i+1 < len(lines) {
		year = dates.FirstYear(lines[i+1])
		month = formMonthRe.FindString(lines[i+1])
	}
	if year == "" {
		return "", false
	}
	switch len(month) {
	case 0:
		month = defaultMonth
	case 1:
		month = "0" + month
	}
	return fmt.Sprintf("%s-%s", year, month), true
}

// stillHeld reports whether an end-date label, or the value under it, says
// the job is current.
func stillHeld(lines []string, i int) bool {
	if formOngoingRe.MatchString(strings.ToLower(lines[i])) {
		return true
	}
	return i+1 < len(lines) && formOngoingRe.MatchString(strings.ToLower(lines[i+1]))
}

// fallbackExperience handles forms whose labels did not survive extraction
func fallbackExperience(lines []string) []types.EmploymentRecord {
	records := []types.EmploymentRecord{}
	var cur *types.EmploymentRecord

	for _, l := range lines {
		line := strings.TrimSpace(l)
		if line == "" {
			continue
		}
		res := dates.Resolve(line)

		if isFallbackCompany(line) {
			if cur != nil {
				records = append(records, finishRecord(*cur))
			}
			cur = &types.EmploymentRecord{Company: line, Start: res.Start()}
			if len(res.Dates) > 1 {
				cur.End = res.Dates[1]
			}
			continue
		}

		if cur != nil && len(res.Dates) > 0 && cur.Start == "" {
			cur.Start = res.Start()
			if len(res.Dates) > 1 {
				cur.End = res.Dates[1]
			}
		}
	}

	if cur != nil {
		records = append(records, finishRecord(*cur))
	}
	return records
}

func isFallbackCompany(line string) bool {
	n := utf8.RuneCountInString(line)
	if !textmatch.IsUpper(line) || n <= minFallbackCompanyLen || n >= maxFallbackCompanyLen {
		return false
	}
	return !containsAny(line, fallbackExcluded)
}

func finishRecord(rec types.EmploymentRecord) types.EmploymentRecord {
	rec.DurationMonths = dates.DurationMonths(rec.Start, rec.End)
	if rec.Responsibilities == nil {
		rec.Responsibilities = []string{}
	}
	return rec
}
