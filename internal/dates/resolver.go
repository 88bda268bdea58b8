// Package dates extracts canonical dates from resume lines and computes job durations.
//
// A canonical date is "YYYY-MM" or "YYYY". Resolution tries an ordered list of
// patterns and stops at the first one that yields anything; earlier, more
// specific patterns always win over later, broader ones.
package dates

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/analistabackend-glitch/Herramienta-HV/internal/textmatch"
	"github.com/analistabackend-glitch/Herramienta-HV/internal/types"
)

// Month is a Spanish month name and its two-digit number
type Month struct {
	Name   string
	Number string
}

// MonthsByLength lists the Spanish month names longest first, so that a longer
// name is always tried before any shorter one. Ties keep calendar order.
var MonthsByLength = []Month{
	{"septiembre", "09"},
	{"noviembre", "11"},
	{"diciembre", "12"},
	{"febrero", "02"},
	{"octubre", "10"},
	{"agosto", "08"},
	{"enero", "01"},
	{"marzo", "03"},
	{"abril", "04"},
	{"junio", "06"},
	{"julio", "07"},
	{"mayo", "05"},
}

// OngoingMarkers are the lower-case phrases that mark a job as still held
var OngoingMarkers = []string{"actual", "presente", "la fecha", "vigente", "hoy"}

// Resolution is the outcome of resolving one line
type Resolution struct {
	Dates   []string // canonical tokens in resolution order
	Ongoing bool
}

// Start returns the first date or ""
func (r Resolution) Start() string {
	if len(r.Dates) > 0 {
		return r.Dates[0]
	}
	return ""
}

// End returns the second date, "ongoing" when the line carries an ongoing
// marker and no second date, or "".
func (r Resolution) End() string {
	if len(r.Dates) > 1 {
		return r.Dates[1]
	}
	if r.Ongoing {
		return types.Ongoing
	}
	return ""
}

var (
	dayMonthYearRe = regexp.MustCompile(`\b(\d{2})/(\d{2})/(\d{4})\b`)
	yearRangeRe    = regexp.MustCompile(`\b(20\d{2}|19\d{2})\s*[-–]\s*(20\d{2}|19\d{2})\b`)
	monthYearRe    = regexp.MustCompile(`\b(\d{2})\s*[-/]\s*(\d{4})\b`)
	bareYearRe     = regexp.MustCompile(`\b(20\d{2}|19\d{2})\b`)
	yearMonthRe    = regexp.MustCompile(`^\d{4}-\d{2}`)
	ongoingRe      = textmatch.MustCompile(`(actual|presente|la\s+fecha|vigente|hoy)`)
	monthNameRes   = compileMonthNames()
)

func compileMonthNames() []*textmatch.WordPattern {
	out := make([]*textmatch.WordPattern, len(MonthsByLength))
	for i, m := range MonthsByLength {
		out[i] = textmatch.MustCompile(m.Name + `\s+(\d{4})\b`)
	}
	return out
}

type resolveStep func(line, lower string) []string

// resolveSteps is the fixed priority order. Reordering changes results.
var resolveSteps = []resolveStep{
	resolveDayMonthYear,
	resolveYearRange,
	resolveMonthYear,
	resolveMonthName,
	resolveBareYears,
}

// Resolve extracts canonical dates and the ongoing flag from a single line.
// When exactly two year-month tokens come out in descending order they are
// swapped, so start never sorts after end.
func Resolve(line string) Resolution {
	lower := strings.ToLower(line)

	var found []string
	for _, step := range resolveSteps {
		if found = step(line, lower); len(found) > 0 {
			break
		}
	}

	if len(found) == 2 && IsYearMonth(found[0]) && IsYearMonth(found[1]) && found[0] > found[1] {
		found[0], found[1] = found[1], found[0]
	}

	return Resolution{
		Dates:   found,
		Ongoing: ongoingRe.MatchString(lower),
	}
}

func resolveDayMonthYear(line, _ string) []string {
	var out []string
	for _, m := range dayMonthYearRe.FindAllStringSubmatch(line, -1) {
		out = append(out, fmt.Sprintf("%s-%s", m[3], m[2]))
	}
	return out
}

func resolveYearRange(line, _ string) []string {
	m := yearRangeRe.FindStringSubmatch(line)
	if m == nil {
		return nil
	}
	return []string{m[1], m[2]}
}

func resolveMonthYear(line, _ string) []string {
	var out []string
	for _, m := range monthYearRe.FindAllStringSubmatch(line, -1) {
		out = append(out, fmt.Sprintf("%s-%s", m[2], m[1]))
	}
	return out
}

// resolveMonthName emits matches grouped by month name in MonthsByLength order,
// not in order of appearance; the two-date swap in Resolve restores chronology.
func resolveMonthName(_, lower string) []string {
	var out []string
	for i, re := range monthNameRes {
		for _, m := range re.FindAllStringSubmatch(lower) {
			out = append(out, fmt.Sprintf("%s-%s", m[1], MonthsByLength[i].Number))
		}
	}
	return out
}

func resolveBareYears(line, _ string) []string {
	return Years(line)
}

// Years returns every 19xx/20xx year in line, deduplicated in first-seen order
func Years(line string) []string {
	var out []string
	seen := make(map[string]struct{})
	for _, y := range bareYearRe.FindAllString(line, -1) {
		if _, ok := seen[y]; ok {
			continue
		}
		seen[y] = struct{}{}
		out = append(out, y)
	}
	return out
}

// FirstYear returns the first 19xx/20xx year in line or ""
func FirstYear(line string) string {
	return bareYearRe.FindString(line)
}

// IsYearMonth reports whether s starts with a YYYY-MM token
func IsYearMonth(s string) bool {
	return yearMonthRe.MatchString(s)
}
