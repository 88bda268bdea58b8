// Package classify provides the line predicates used to reconstruct employment
// records from unlabeled resume text.
package classify

// TitleKeywords are job-title words. A line is title-like when one of them
// appears within its first four words, or anywhere in a line of five words or fewer.
var TitleKeywords = []string{
	"auditor", "coordinador", "gerente", "director", "analista",
	"contador", "contadora", "jefe", "supervisor", "lider", "líder",
	"asistente", "profesional", "asesor", "revisor", "subgerente",
	"tesorero", "auxiliar", "practicante", "pasante", "ingeniero",
	"administrador", "ejecutivo", "consultor", "socio", "representante",
}

// OrganizationKeywords are legal-form suffixes and institution words matched
// as plain substrings of the lower-cased line.
var OrganizationKeywords = []string{
	"sas", "sa", "s.a.s", "ltda", "s.a", "e.s.e", "e.i.c.e",
	"epm", "grupo", "banco", "universidad", "corporacion",
	"fundacion", "ministerio", "alcaldia", "gobernacion",
}

// firstPersonVerbs are first-person past-tense stems that mark a sentence
// describing a responsibility rather than a job title.
const firstPersonVerbs = `(particip[eé]|realic[eé]|apoy[eé]|desarroll[eé]|elabor[eé]|ejecut[eé]|` +
	`gestion[eé]|coordin[eé]|supervis[eé]|implement[eé]|consolidé|me\s+desempeñ[eé])`

const (
	maxTitleLen        = 80
	maxCompanyLen      = 80
	maxDashPartLen     = 60
	maxDateOnlyResidue = 5
)
