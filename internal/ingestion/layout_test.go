package ingestion

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLayoutPage_TwoColumnsRightFirst(t *testing.T) {
	words := []word{
		{X: 40, Y: 700, S: "CONTACTO"},
		{X: 40, Y: 680, S: "ana@correo.com"},
		{X: 320, Y: 700, S: "EXPERIENCIA"},
		{X: 320, Y: 680, S: "SULICOR"},
		{X: 380, Y: 680, S: "SAS"},
	}

	got := layoutPage(words, 600)

	assert.Equal(t, "EXPERIENCIA\nSULICOR SAS\nCONTACTO\nana@correo.com", got)
}

func TestLayoutPage_SingleColumnKeepsLines(t *testing.T) {
	var words []word
	for i, s := range []string{"Auditor", "Especialista", "en", "SULICOR", "SAS", "desde", "2025"} {
		words = append(words, word{X: 40 + float64(i)*40, Y: 700, S: s})
	}
	words = append(words, word{X: 40, Y: 680, S: "Bogotá"})

	got := layoutPage(words, 600)

	assert.Equal(t, "Auditor Especialista en SULICOR SAS desde 2025\nBogotá", got)
}

func TestColumnThreshold(t *testing.T) {
	t.Run("no words", func(t *testing.T) {
		_, ok := columnThreshold(nil, 600)
		assert.False(t, ok)
	})

	t.Run("gap outside the central band", func(t *testing.T) {
		words := []word{{X: 10}, {X: 120}, {X: 130}}
		_, ok := columnThreshold(words, 600)
		assert.False(t, ok)
	})

	t.Run("wide central gap", func(t *testing.T) {
		words := []word{{X: 40}, {X: 320}}
		threshold, ok := columnThreshold(words, 600)
		assert.True(t, ok)
		assert.InDelta(t, 180, threshold, 0.001)
	})
}

func TestWordsToLines_OrdersTopToBottom(t *testing.T) {
	words := []word{
		{X: 100, Y: 500, S: "abajo"},
		{X: 100, Y: 700, S: "arriba"},
		{X: 40, Y: 700, S: "Muy"},
	}

	assert.Equal(t, "Muy arriba\nabajo", wordsToLines(words))
	assert.Empty(t, wordsToLines(nil))
}
