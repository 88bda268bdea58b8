package parsing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectSkills(t *testing.T) {
	text := "Manejo de Excel, SAP y NIIF. Liderazgo y Trabajo en Equipo; Tesorería"

	got := DetectSkills(text)

	assert.Equal(t, []string{"NIIF", "EXCEL", "SAP", "TESORERIA"}, got.Technical)
	assert.Equal(t, []string{"Liderazgo", "Trabajo en equipo"}, got.Soft)
}

func TestDetectSkills_MatchesInsideWords(t *testing.T) {
	got := DetectSkills("Compañía")

	assert.Equal(t, []string{"NIA"}, got.Technical)
}

func TestDetectSkills_Empty(t *testing.T) {
	got := DetectSkills("")

	assert.NotNil(t, got.Technical)
	assert.NotNil(t, got.Soft)
	assert.Empty(t, got.Technical)
	assert.Empty(t, got.Soft)
}
