// Package enrich defines the optional organization-recognition capability used
// to refine reconstructed employment records.
//
// Enrichment is best effort: an Enricher that cannot answer returns Unknown or
// the records unchanged, and never fails the structuring of a document.
package enrich

import (
	"context"

	"github.com/analistabackend-glitch/Herramienta-HV/internal/types"
)

// Verdict is a three-valued answer to "is this line an organization?"
type Verdict int

const (
	// Unknown means the enricher has no information
	Unknown Verdict = iota
	// No means the line is not an organization
	No
	// Yes means the line names an organization
	Yes
)

func (v Verdict) String() string {
	switch v {
	case Yes:
		return "yes"
	case No:
		return "no"
	default:
		return "unknown"
	}
}

// Enricher recognizes organizations in resume text
type Enricher interface {
	// ClassifyOrganization reports whether line names an organization
	ClassifyOrganization(ctx context.Context, line string) Verdict
	// EnrichMissingCompanies fills empty Company fields from organization
	// mentions near each record's title in sectionText. It must not touch a
	// non-empty Company.
	EnrichMissingCompanies(ctx context.Context, records []types.EmploymentRecord, sectionText string) []types.EmploymentRecord
}

// Noop is the Enricher used when no model is available
type Noop struct{}

// ClassifyOrganization always answers Unknown
func (Noop) ClassifyOrganization(context.Context, string) Verdict { return Unknown }

// EnrichMissingCompanies returns records unchanged
func (Noop) EnrichMissingCompanies(_ context.Context, records []types.EmploymentRecord, _ string) []types.EmploymentRecord {
	return records
}

// OrNoop returns e, or Noop when e is nil
func OrNoop(e Enricher) Enricher {
	if e == nil {
		return Noop{}
	}
	return e
}
