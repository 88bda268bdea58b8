package parsing

import (
	"testing"

	"github.com/analistabackend-glitch/Herramienta-HV/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestParseContact(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected types.Contact
	}{
		{
			name:     "email and spaced phone",
			text:     "Correo: ana.perez@correo.com.co\nTel 310 555 12 34",
			expected: types.Contact{Email: "ana.perez@correo.com.co", Phone: "3105551234"},
		},
		{
			name:     "dashed phone",
			text:     "Celular: 300-123-45-67",
			expected: types.Contact{Phone: "3001234567"},
		},
		{
			name:     "compact phone",
			text:     "3001234567",
			expected: types.Contact{Phone: "3001234567"},
		},
		{
			name:     "landline is ignored",
			text:     "Fijo 601 2345678",
			expected: types.Contact{},
		},
		{
			name:     "nothing",
			text:     "",
			expected: types.Contact{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseContact(tt.text))
		})
	}
}
