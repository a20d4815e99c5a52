package telephony

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalizeFoldsDigitsAndLetters(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"ascii digits with plus", "+1 (650) 253-0000", "+16502530000"},
		{"fullwidth digits", "＋１６５０２５３０００９", "+16502530009"},
		{"arabic-indic digits", "١٢٣٤٥", "12345"},
		{"extended arabic-indic digits", "۱۲۳۴۵", "12345"},
		{"keypad letters", "1-800-FLOWERS", "18003569377"},
		{"plus only preserved at position zero", "1+234", "1234"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, normalize(tt.input))
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{"+1 (650) 253-0000", "044 668 18 00", "1-800-FLOWERS", "＋１２３"}
	for _, in := range inputs {
		once := normalize(in)
		twice := normalize(once)
		require.Equal(t, once, twice, "normalize(normalize(%q)) should equal normalize(%q)", in, in)
	}
}

func TestNormalizeDigitsDropsLeadingPlus(t *testing.T) {
	require.Equal(t, "16502530000", NormalizeDigits("+1 (650) 253-0000"))
}

func TestExtractPossibleNumberTrimsJunkAndTruncates(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"leading junk trimmed", "Call me at +1 650 253 0000", "+1 650 253 0000"},
		{"truncates at semicolon", "+1 650 253 0000;ext=42", "+1 650 253 0000"},
		{"truncates at unmatched closing bracket", "+1 650 253 0000)", "+1 650 253 0000"},
		{"no digits at all", "hello there", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, extractPossibleNumber(tt.input))
		})
	}
}
