package escpos

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "empty string",
			input:    "",
			expected: "",
		},
		{
			name:     "plain ascii untouched",
			input:    "Ticket 2024/001 - 19.99",
			expected: "Ticket 2024/001 - 19.99",
		},
		{
			name:     "lowercase accents",
			input:    "camión días año",
			expected: "camion dias ano",
		},
		{
			name:     "uppercase accents",
			input:    "JOSÉ ÁLVAREZ ÑOÑO",
			expected: "JOSE ALVAREZ NONO",
		},
		{
			name:     "multi character replacements",
			input:    "Encyclopædia Þór",
			expected: "Encyclopaedia Thor",
		},
		{
			name:     "currency and ordinal",
			input:    "Total 12,50€ piso 3º",
			expected: "Total 12,50EUR piso 3.",
		},
		{
			name:     "html quote entity",
			input:    "tubo &quot;premium&quot;",
			expected: "tubo -premium-",
		},
		{
			name:     "acute accent character",
			input:    "it´s",
			expected: "it's",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Sanitize(tt.input))
		})
	}
}

func TestSanitizeIdempotent(t *testing.T) {
	inputs := []string{
		"camión 12,50€ JOSÉ æ þ &quot;x&quot; 3º",
		"ÿý ñÑ üÜ",
		"already plain ascii",
	}
	for _, in := range inputs {
		once := Sanitize(in)
		assert.Equal(t, once, Sanitize(once), "sanitizing twice must equal sanitizing once for %q", in)
	}
}
