package textmatch

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWordPattern_MatchesAccentedWordAtEndOfLine(t *testing.T) {
	p := MustCompile(`sobre\s*m[ií]`)

	assert.True(t, p.MatchString("sobre mí"))
	assert.True(t, p.MatchString("acerca de: sobre mí."))
	assert.False(t, p.MatchString("sobre mínimos"))
}

func TestWordPattern_RejectsMatchInsideWord(t *testing.T) {
	p := MustCompile(`actual`)

	assert.True(t, p.MatchString("2020 - actual"))
	assert.False(t, p.MatchString("actualmente trabajo aquí"))
	assert.False(t, p.MatchString("inactual"))
}

func TestWordPattern_AccentedTrailingLetter(t *testing.T) {
	p := MustCompile(`particip[eé]`)

	assert.True(t, p.MatchString(strings.ToLower("Participé en auditorías")))
	assert.False(t, p.MatchString("participéis"))
	assert.False(t, p.MatchString("Participé en auditorías"), "matching is case-sensitive")
}

func TestWordPattern_RetriesAfterUnboundedCandidate(t *testing.T) {
	p := MustCompile(`hoy`)

	// first candidate is inside "ahoya", second one is bounded
	assert.True(t, p.MatchString("ahoya y hoy"))
}

func TestWordPattern_FindAllStringSubmatch(t *testing.T) {
	p := MustCompile(`enero\s+(\d{4})`)

	got := p.FindAllStringSubmatch("enero 2020 y enero 2021, noenero 2022")

	assert.Equal(t, [][]string{
		{"enero 2020", "2020"},
		{"enero 2021", "2021"},
	}, got)
}

func TestWordPattern_ReplaceAllString(t *testing.T) {
	p := MustCompile(`presente`)

	assert.Equal(t, "2020 –  y representante", p.ReplaceAllString("2020 – presente y representante", ""))
	assert.Equal(t, "sin cambios", p.ReplaceAllString("sin cambios", ""))
}

func TestIsWordRune(t *testing.T) {
	assert.True(t, IsWordRune('ñ'))
	assert.True(t, IsWordRune('7'))
	assert.True(t, IsWordRune('_'))
	assert.False(t, IsWordRune('–'))
	assert.False(t, IsWordRune(' '))
}

func TestIsUpper(t *testing.T) {
	assert.True(t, IsUpper("SULICOR SAS"))
	assert.True(t, IsUpper("CONTRALORÍA 2020"))
	assert.False(t, IsUpper("Sulicor"))
	assert.False(t, IsUpper("2020 - 2021"))
	assert.False(t, IsUpper(""))
}

func TestWordPattern_DoesNotRetryShorterAlternative(t *testing.T) {
	p := MustCompile(`experiencia\s*(laboral)?`)

	assert.True(t, p.MatchString("experiencia laboral"))
	assert.True(t, p.MatchString("experiencia"))
	assert.False(t, p.MatchString("experiencia laboralmente"))
}
