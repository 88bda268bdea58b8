// Package experience reconstructs employment records from the free text of an
// experience section.
package experience

import (
	"context"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/analistabackend-glitch/Herramienta-HV/internal/classify"
	"github.com/analistabackend-glitch/Herramienta-HV/internal/dates"
	"github.com/analistabackend-glitch/Herramienta-HV/internal/enrich"
	"github.com/analistabackend-glitch/Herramienta-HV/internal/types"
)

const (
	// maxImplicitCompanyLen bounds a line taken as company for a record opened by dates alone
	maxImplicitCompanyLen = 70
	// minResponsibilityLen is the shortest kept responsibility, exclusive
	minResponsibilityLen = 8
	// minResidualLen is the shortest residual text, exclusive, that can name a company
	minResidualLen = 3
)

var enumeratorRe = regexp.MustCompile(`^\d+[.\-)]\s*`)

// scanner is the per-document state of the reconstruction. It is owned by a
// single Reconstruct call and never shared.
type scanner struct {
	ctx      context.Context
	enricher enrich.Enricher

	open     *types.EmploymentRecord
	previous string
	hasPrev  bool
	closed   []types.EmploymentRecord
}

// Reconstruct turns the text of an experience section into employment records
// in input order. Records with neither company nor title are dropped. The
// enricher, if any, is then asked once to fill missing companies.
func Reconstruct(ctx context.Context, sectionText string, e enrich.Enricher) []types.EmploymentRecord {
	if strings.TrimSpace(sectionText) == "" {
		return []types.EmploymentRecord{}
	}

	s := &scanner{ctx: ctx, enricher: enrich.OrNoop(e)}
	for _, raw := range strings.Split(sectionText, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		s.step(line)
		s.previous, s.hasPrev = line, true
	}
	s.close()

	records := make([]types.EmploymentRecord, 0, len(s.closed))
	for _, rec := range s.closed {
		if rec.HasIdentity() {
			records = append(records, rec)
		}
	}
	if len(records) == 0 {
		return records
	}

	enriched := s.enricher.EnrichMissingCompanies(ctx, cloneRecords(records), sectionText)
	return keepKnownCompanies(records, enriched)
}

// step classifies one non-empty line. The branches are mutually exclusive and
// checked in a fixed order.
func (s *scanner) step(line string) {
	res := dates.Resolve(line)
	dateOnly := classify.IsDateOnly(line)
	residual := classify.ResidualText(line)
	hasDates := len(res.Dates) > 0

	if !dateOnly && !hasDates {
		if company, title, ok := classify.SplitCompanyTitle(s.ctx, line, s.enricher); ok {
			s.openRecord(types.EmploymentRecord{Company: company, Title: title})
			return
		}
	}

	inlineDates := hasDates && !dateOnly && utf8.RuneCountInString(residual) > minResidualLen

	switch {
	case inlineDates && (classify.IsCompanyLike(residual) || classify.IsTitleLike(residual)):
		s.openRecord(types.EmploymentRecord{Company: residual, Start: res.Start(), End: res.End()})

	case dateOnly && hasDates && s.hasPrev:
		if s.open == nil {
			s.openRecord(types.EmploymentRecord{Start: res.Start(), End: res.End()})
			return
		}
		if s.open.Start == "" {
			s.open.Start = res.Start()
		}
		if s.open.End == "" {
			s.open.End = res.End()
		}
		if s.open.Title == "" && classify.IsTitleLike(s.previous) {
			s.open.Title = s.previous
		}

	case !dateOnly && classify.IsTitleLike(line):
		if s.open != nil && s.open.Title == "" {
			if s.open.Company == "" && s.hasPrev && !classify.IsDateOnly(s.previous) && !classify.IsTitleLike(s.previous) {
				s.open.Company = s.previous
			}
			s.open.Title = line
			return
		}
		s.openRecord(types.EmploymentRecord{Title: line})

	case s.open != nil && !dateOnly:
		s.fallback(line)
	}
}

// fallback handles a line that opened nothing: it fills a missing company or
// becomes a responsibility of the open record.
func (s *scanner) fallback(line string) {
	switch {
	case s.open.Company == "" && s.open.Title == "" && utf8.RuneCountInString(line) < maxImplicitCompanyLen:
		s.open.Company = line
	case s.open.Company == "" && s.open.Title != "" && classify.IsCompanyLike(line):
		s.open.Company = line
	default:
		resp := strings.Trim(enumeratorRe.ReplaceAllString(line, ""), "•-– ")
		if utf8.RuneCountInString(resp) > minResponsibilityLen {
			s.open.Responsibilities = append(s.open.Responsibilities, resp)
		}
	}
}

// openRecord closes the current record, if any, and starts rec
func (s *scanner) openRecord(rec types.EmploymentRecord) {
	s.close()
	rec.Responsibilities = []string{}
	s.open = &rec
}

// close pushes the open record and computes its duration
func (s *scanner) close() {
	if s.open == nil {
		return
	}
	rec := *s.open
	rec.DurationMonths = dates.DurationMonths(rec.Start, rec.End)
	if rec.Responsibilities == nil {
		rec.Responsibilities = []string{}
	}
	s.closed = append(s.closed, rec)
	s.open = nil
}

func cloneRecords(records []types.EmploymentRecord) []types.EmploymentRecord {
	out := make([]types.EmploymentRecord, len(records))
	copy(out, records)
	return out
}

// keepKnownCompanies accepts from enriched only companies for records that had
// none. Any other change, including a different record count, is ignored.
func keepKnownCompanies(original, enriched []types.EmploymentRecord) []types.EmploymentRecord {
	if len(enriched) != len(original) {
		return original
	}
	for i := range original {
		if original[i].Company == "" && enriched[i].Company != "" {
			original[i].Company = enriched[i].Company
		}
	}
	return original
}
