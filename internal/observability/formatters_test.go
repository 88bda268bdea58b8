package observability

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/analistabackend-glitch/Herramienta-HV/internal/types"
)

func TestPrintResume(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	months := 8
	resume := types.NewStructuredResume(types.FormatFreeForm)
	resume.Contact = types.Contact{Email: "ana@correo.com", Phone: "3105551234"}
	resume.Experience = []types.EmploymentRecord{
		{Company: "SULICOR SAS", Start: "2025-04", End: "2025-12", DurationMonths: &months},
		{Title: "Revisor Fiscal", Start: "2023", End: types.Ongoing},
	}
	resume.Education = []types.EducationEntry{{Title: "Contaduría Pública", Institution: "Universidad Nacional", Year: "2018"}}
	resume.DetectedSkills = types.SkillSet{Technical: []string{"EXCEL"}, Soft: []string{"Liderazgo"}}
	resume.ComputeTotals()

	p.PrintResume(resume)
	output := buf.String()

	assert.Contains(t, output, "STRUCTURED RESUME")
	assert.Contains(t, output, "ana@correo.com")
	assert.Contains(t, output, "SULICOR SAS (2025-04 → 2025-12, 8 m)")
	assert.Contains(t, output, "Revisor Fiscal (2023 → ongoing)")
	assert.Contains(t, output, "Contaduría Pública | Universidad Nacional | 2018")
	assert.Contains(t, output, "EXCEL, Liderazgo")
	assert.Contains(t, output, "0.7 years")
}

func TestPrintResume_Nil(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintResume(nil)
	assert.Empty(t, buf.String())
}

func TestPrintResume_TruncatesList(t *testing.T) {
	var buf bytes.Buffer
	resume := types.NewStructuredResume(types.FormatFreeForm)
	for i := 0; i < 7; i++ {
		resume.Experience = append(resume.Experience, types.EmploymentRecord{Company: "Empresa"})
	}
	resume.ComputeTotals()

	NewPrinter(&buf).PrintResume(resume)

	assert.Contains(t, buf.String(), "... and 2 more")
}

func TestPrintSections(t *testing.T) {
	var buf bytes.Buffer
	sections := types.NewSectionMap()
	sections[types.SectionExperience] = "SULICOR SAS\nAuxiliar contable"

	NewPrinter(&buf).PrintSections(sections)
	output := buf.String()

	assert.Contains(t, output, "DETECTED SECTIONS")
	assert.Contains(t, output, "experience      29 chars    2 lines")
	assert.Contains(t, output, "references       0 chars    0 lines")
}

func TestPrintBatchSummary(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintBatchSummary("b-1", 3, 1, "output")

	output := buf.String()
	assert.Contains(t, output, "BATCH SUMMARY")
	assert.Contains(t, output, "Written: 3")
	assert.Contains(t, output, "Failed:  1")
}

func TestPrintBox_TruncatesLongLinesByCharacter(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).printBox("T", strings.Repeat("ñ", 100))

	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		assert.Equal(t, boxWidth, len([]rune(line)))
	}
	assert.Contains(t, buf.String(), "...")
}
