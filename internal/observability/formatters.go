// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/analistabackend-glitch/Herramienta-HV/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// truncate shortens s to n characters, ending with "..." when cut
func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	runes := []rune(s)
	return string(runes[:n-3]) + "..."
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, truncate(title, boxWidth-4))
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, truncate(line, boxWidth-4))
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintSections outputs the size of every section of a segmented document
func (p *Printer) PrintSections(sections types.SectionMap) {
	if sections == nil {
		return
	}

	var sb strings.Builder
	for _, key := range types.AllSections {
		text := sections.Get(key)
		lines := 0
		if text != "" {
			lines = strings.Count(text, "\n") + 1
		}
		sb.WriteString(fmt.Sprintf("%-12s %5d chars %4d lines\n", key, utf8.RuneCountInString(text), lines))
	}

	p.printBox("DETECTED SECTIONS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintResume outputs a human-readable summary of a structured resume
func (p *Printer) PrintResume(resume *types.StructuredResume) {
	if resume == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Format:     %s\n", resume.Format))
	if resume.Contact.Email != "" {
		sb.WriteString(fmt.Sprintf("Email:      %s\n", resume.Contact.Email))
	}
	if resume.Contact.Phone != "" {
		sb.WriteString(fmt.Sprintf("Phone:      %s\n", resume.Contact.Phone))
	}
	sb.WriteString(fmt.Sprintf("Jobs:       %d\n", resume.EmploymentCount))
	sb.WriteString(fmt.Sprintf("Experience: %.1f years\n", resume.TotalExperienceYears))
	sb.WriteString("\n")

	if len(resume.Experience) > 0 {
		sb.WriteString("Experience:\n")
		count := min(len(resume.Experience), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", describeRecord(resume.Experience[i])))
		}
		if len(resume.Experience) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(resume.Experience)-maxItemsToShow))
		}
		sb.WriteString("\n")
	}

	if len(resume.Education) > 0 {
		sb.WriteString("Education:\n")
		count := min(len(resume.Education), 3)
		for i := 0; i < count; i++ {
			e := resume.Education[i]
			sb.WriteString(fmt.Sprintf("  • %s\n", joinNonEmpty(" | ", e.Title, e.Institution, e.Year)))
		}
		if len(resume.Education) > 3 {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(resume.Education)-3))
		}
		sb.WriteString("\n")
	}

	skills := append(append([]string{}, resume.DetectedSkills.Technical...), resume.DetectedSkills.Soft...)
	if len(skills) > 0 {
		sb.WriteString(fmt.Sprintf("Skills: %s\n", strings.Join(skills, ", ")))
	}

	p.printBox("STRUCTURED RESUME", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintBatchSummary outputs the counts of a finished batch
func (p *Printer) PrintBatchSummary(batchID string, written, failed int, outputDir string) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Batch:   %s\n", batchID))
	sb.WriteString(fmt.Sprintf("Written: %d\n", written))
	sb.WriteString(fmt.Sprintf("Failed:  %d\n", failed))
	sb.WriteString(fmt.Sprintf("Output:  %s", outputDir))

	p.printBox("BATCH SUMMARY", sb.String())
}

func describeRecord(rec types.EmploymentRecord) string {
	head := joinNonEmpty(" @ ", rec.Title, rec.Company)
	span := joinNonEmpty(" → ", rec.Start, rec.End)
	if span != "" {
		head += " (" + span
		if rec.DurationMonths != nil {
			head += fmt.Sprintf(", %d m", *rec.DurationMonths)
		}
		head += ")"
	}
	return head
}

func joinNonEmpty(sep string, parts ...string) string {
	kept := make([]string, 0, len(parts))
	for _, part := range parts {
		if part != "" {
			kept = append(kept, part)
		}
	}
	return strings.Join(kept, sep)
}
