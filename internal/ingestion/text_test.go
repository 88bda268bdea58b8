package ingestion

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanText_CollapsesHorizontalWhitespace(t *testing.T) {
	result := CleanText("Auditor   Especialista\t\tSULICOR SAS")
	assert.Equal(t, "Auditor Especialista SULICOR SAS", result)
}

func TestCleanText_ReplacesSymbols(t *testing.T) {
	result := CleanText("Excel ★ SAP | SQL 🚀")
	assert.Equal(t, "Excel SAP SQL", result)
}

func TestCleanText_KeepsAccentsAndContactCharacters(t *testing.T) {
	input := "Formación Académica\nana.pérez@correo.com, 310-555-1234 / Bogotá"
	result := CleanText(input)
	assert.Equal(t, input, result)
}

func TestCleanText_ComposesDecomposedAccents(t *testing.T) {
	result := CleanText("Administracio\u0301n")
	assert.Equal(t, "Administración", result)
}

func TestCleanText_FoldsBlankLines(t *testing.T) {
	result := CleanText("Línea 1\n\n\n\n   \nLínea 2")
	assert.Equal(t, "Línea 1\n\nLínea 2", result)
}

func TestCleanText_NormalizeLineEndings(t *testing.T) {
	result := CleanText("Línea 1\r\nLínea 2\rLínea 3")
	assert.Equal(t, "Línea 1\nLínea 2\nLínea 3", result)
}

func TestCleanText_TrimsLines(t *testing.T) {
	result := CleanText("   PERFIL   \n    Contador público  ")
	assert.Equal(t, "PERFIL\nContador público", result)
}

func TestCleanText_EmptyInput(t *testing.T) {
	assert.Empty(t, CleanText(""))
	assert.Empty(t, CleanText("   \n  \n  "))
}

func TestCleanText_DeterministicOutput(t *testing.T) {
	input := "Experiencia   laboral\n\n\nSULICOR   SAS  04-2025"
	assert.Equal(t, CleanText(input), CleanText(input))
	assert.Equal(t, CleanText(input), CleanText(CleanText(input)))
}

func TestNormalizeForComparison(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"accents and punctuation", "Gestión de Riesgos, Nómina!", "gestion de riesgos nomina"},
		{"hyphens become spaces", "Trabajo-en-Equipo", "trabajo en equipo"},
		{"enye folds to n", "Ñandú", "nandu"},
		{"whitespace collapses", "  Power\t\tBI \n Tableau ", "power bi tableau"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeForComparison(tt.input))
		})
	}
}
