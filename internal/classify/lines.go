package classify

import (
	"context"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/analistabackend-glitch/Herramienta-HV/internal/enrich"
	"github.com/analistabackend-glitch/Herramienta-HV/internal/textmatch"
)

var (
	// dateTokensRe removes date tokens, month names, ongoing markers and separators
	dateTokensRe = regexp.MustCompile(`(\d{2}[-/]\d{4}|\b(20|19)\d{2}\b|` +
		`\b(enero|febrero|marzo|abril|mayo|junio|julio|agosto|septiembre|octubre|noviembre|diciembre)\b|` +
		`\b(actual|presente|la\s+fecha|vigente|hoy)\b|` +
		`[–—\-/\s])`)

	// residualDatesRe removes dates and month names but keeps the text around them
	residualDatesRe = regexp.MustCompile(`(?i)(\d{2}\s*[-/]\s*\d{4}|\b(20|19)\d{2}\b\s*[–—\-]?\s*\b(20|19)\d{2}\b|\b(20|19)\d{2}\b|` +
		`\b(enero|febrero|marzo|abril|mayo|junio|julio|agosto|septiembre|octubre|noviembre|diciembre)\b)`)

	firstPersonRe = textmatch.MustCompile(firstPersonVerbs)
	properCaseRe  = regexp.MustCompile(`^[A-ZÁÉÍÓÚÑ][A-ZÁÉÍÓÚÑa-záéíóúñ\s&.,]+$`)
	dashSplitRe   = regexp.MustCompile(`\s+[-–]\s+`)
)

// IsDateOnly reports whether line is made almost entirely of dates: at most
// five characters remain once date tokens, month names, ongoing markers and
// separators are removed.
func IsDateOnly(line string) bool {
	rest := dateTokensRe.ReplaceAllString(strings.ToLower(line), "")
	return utf8.RuneCountInString(strings.TrimSpace(rest)) <= maxDateOnlyResidue
}

// ResidualText returns line with every date and month token removed and
// surrounding separators trimmed.
func ResidualText(line string) string {
	return strings.Trim(residualDatesRe.ReplaceAllString(line, ""), " –—-/,")
}

// IsTitleLike reports whether line looks like a job title
func IsTitleLike(line string) bool {
	if utf8.RuneCountInString(line) > maxTitleLen || IsDateOnly(line) {
		return false
	}
	lower := strings.ToLower(strings.TrimSpace(line))
	if firstPersonRe.MatchString(lower) {
		return false
	}

	words := strings.Fields(lower)
	lead := strings.Join(words[:min(4, len(words))], " ")
	for _, k := range TitleKeywords {
		if strings.Contains(lead, k) || (strings.Contains(lower, k) && len(words) <= 5) {
			return true
		}
	}
	return false
}

// IsCompanyLike reports whether line looks like an organization name
func IsCompanyLike(line string) bool {
	lower := strings.ToLower(line)
	for _, k := range OrganizationKeywords {
		if strings.Contains(lower, k) {
			return true
		}
	}

	n := utf8.RuneCountInString(line)
	if textmatch.IsUpper(line) && n > 3 && n < maxCompanyLen {
		return true
	}
	return properCaseRe.MatchString(strings.TrimSpace(line)) && n < maxCompanyLen
}

// SplitCompanyTitle recognizes "Company - Title" lines. Both sides must be at
// most 60 characters. When the enricher recognizes exactly one side as an
// organization that side is the company; otherwise the left side is.
func SplitCompanyTitle(ctx context.Context, line string, e enrich.Enricher) (company, title string, ok bool) {
	parts := dashSplitRe.Split(line, 2)
	if len(parts) != 2 {
		return "", "", false
	}
	left, right := strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1])
	if utf8.RuneCountInString(left) > maxDashPartLen || utf8.RuneCountInString(right) > maxDashPartLen {
		return "", "", false
	}
	if left == "" || right == "" {
		return "", "", false
	}

	e = enrich.OrNoop(e)
	leftOrg := e.ClassifyOrganization(ctx, left) == enrich.Yes
	rightOrg := e.ClassifyOrganization(ctx, right) == enrich.Yes
	if rightOrg && !leftOrg {
		return right, left, true
	}
	return left, right, true
}
