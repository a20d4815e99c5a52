package telephony

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExtractExtension(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantBody string
		wantExt  string
	}{
		{"rfc3966 style", "+1-212-555-0100;ext=42", "+1-212-555-0100", "42"},
		{"ext dot", "212-555-0100 ext. 42", "212-555-0100", "42"},
		{"x style", "212-555-0100 x42", "212-555-0100", "42"},
		{"hash style", "212-555-0100#42", "212-555-0100", "42"},
		{"no extension", "212-555-0100", "212-555-0100", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body, ext := extractExtension(tt.input, nil)
			require.Equal(t, tt.wantBody, body)
			require.Equal(t, tt.wantExt, ext)
		})
	}
}

func TestStripTelURIScheme(t *testing.T) {
	require.Equal(t, "+1-212-555-0100;ext=42", stripTelURIScheme("tel:+1-212-555-0100;ext=42"))
	require.Equal(t, "+1-212-555-0100;ext=42", stripTelURIScheme("TEL:+1-212-555-0100;ext=42"))
	require.Equal(t, "+12125550100", stripTelURIScheme("+12125550100"))
}
