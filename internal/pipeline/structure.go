// Package pipeline turns extracted resume text into StructuredResume records,
// one document at a time or a whole directory at once.
package pipeline

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/analistabackend-glitch/Herramienta-HV/internal/enrich"
	"github.com/analistabackend-glitch/Herramienta-HV/internal/experience"
	"github.com/analistabackend-glitch/Herramienta-HV/internal/formal"
	"github.com/analistabackend-glitch/Herramienta-HV/internal/ingestion"
	"github.com/analistabackend-glitch/Herramienta-HV/internal/parsing"
	"github.com/analistabackend-glitch/Herramienta-HV/internal/sections"
	"github.com/analistabackend-glitch/Herramienta-HV/internal/types"
)

// Structurer builds StructuredResume records. It holds no per-document state
// and is safe for concurrent use as long as its Enricher is.
type Structurer struct {
	// Enricher is consulted for organization names; nil means no enrichment
	Enricher enrich.Enricher
	// Verbose logs the section sizes of every free-form document
	Verbose bool
}

// NewStructurer creates a Structurer using e, which may be nil
func NewStructurer(e enrich.Enricher) *Structurer {
	return &Structurer{Enricher: e}
}

func (s *Structurer) enricher() enrich.Enricher {
	if s == nil {
		return enrich.Noop{}
	}
	return enrich.OrNoop(s.Enricher)
}

// Structure builds a free-form resume from its sections. raw is the full
// uncleaned text, used for contact data and skill detection.
func (s *Structurer) Structure(ctx context.Context, secs types.SectionMap, raw string) *types.StructuredResume {
	resume := types.NewStructuredResume(types.FormatFreeForm)

	resume.Contact = parsing.ParseContact(raw)
	resume.ProfileSummary = strings.TrimSpace(secs.Get(types.SectionProfile))
	resume.Experience = experience.Reconstruct(ctx, secs.Get(types.SectionExperience), s.enricher())
	resume.Education = parsing.ParseEducation(secs.Get(types.SectionEducation))
	resume.Skills = parsing.ParseList(secs.Get(types.SectionSkills))
	resume.Courses = parsing.ParseList(secs.Get(types.SectionCourses))
	resume.References = strings.TrimSpace(secs.Get(types.SectionReferences))
	resume.DetectedSkills = parsing.DetectSkills(raw)
	resume.ComputeTotals()

	return resume
}

// StructureFormalForm builds a resume from the text of a government form
func (s *Structurer) StructureFormalForm(raw string) *types.StructuredResume {
	return formal.Parse(raw)
}

// Process detects the format of raw text and structures it accordingly
func (s *Structurer) Process(ctx context.Context, raw string) *types.StructuredResume {
	return s.ProcessDocument(ctx, ingestion.NewDocument(raw))
}

// ProcessDocument structures an already extracted document. The formal form
// is detected on the raw text; free-form segmentation reads the cleaned text.
func (s *Structurer) ProcessDocument(ctx context.Context, doc *ingestion.Document) *types.StructuredResume {
	if doc.IsEmpty() {
		return types.NewStructuredResume(types.FormatFreeForm)
	}

	if formal.IsFormalForm(doc.Raw) {
		log.Printf("[PIPELINE] Formal form detected, using label parser")
		return s.StructureFormalForm(doc.Raw)
	}

	secs := sections.Segment(doc.Cleaned)
	if s != nil && s.Verbose {
		log.Printf("[PIPELINE] Sections: %s", sectionSizes(secs))
	}
	return s.Structure(ctx, secs, doc.Raw)
}

func sectionSizes(secs types.SectionMap) string {
	parts := make([]string, 0, len(types.AllSections))
	for _, key := range types.AllSections {
		parts = append(parts, fmt.Sprintf("%s=%d", key, len(secs.Get(key))))
	}
	return strings.Join(parts, " ")
}
