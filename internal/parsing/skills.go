package parsing

import (
	"strings"

	"github.com/analistabackend-glitch/Herramienta-HV/internal/ingestion"
	"github.com/analistabackend-glitch/Herramienta-HV/internal/types"
)

// TechnicalSkills is the accounting and audit vocabulary, in output order
var TechnicalSkills = []string{
	"niif", "ifrs", "nia", "nias", "excel", "sap", "siigo", "world office",
	"contaplus", "sql", "power bi", "tableau", "iso 14001", "iso 9001",
	"coso", "cobit", "auditoria", "contabilidad", "tributaria", "nomina",
	"presupuesto", "tesoreria", "cartera", "costos", "gestion de riesgos",
}

// SoftSkills is the interpersonal vocabulary, in output order
var SoftSkills = []string{
	"liderazgo", "comunicacion", "trabajo en equipo", "analitico", "etica",
	"proactividad", "organizacion", "resolucion de problemas", "adaptabilidad",
}

// DetectSkills looks up both vocabularies in the whole document. Matching is
// by substring on the accent-free, lower-case form of the text, so "nia" also
// fires inside longer words. Technical skills come out upper-cased, soft
// skills capitalized.
func DetectSkills(fullText string) types.SkillSet {
	normalized := ingestion.NormalizeForComparison(fullText)

	set := types.SkillSet{Technical: []string{}, Soft: []string{}}
	if normalized == "" {
		return set
	}
	for _, s := range TechnicalSkills {
		if strings.Contains(normalized, s) {
			set.Technical = append(set.Technical, upperCaser.String(s))
		}
	}
	for _, s := range SoftSkills {
		if strings.Contains(normalized, s) {
			set.Soft = append(set.Soft, Capitalize(s))
		}
	}
	return set
}
