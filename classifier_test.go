package telephony

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNumberTypeClassification(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Type
	}{
		{"NANP shared fixed/mobile pattern", "+1 650 253 0000", FixedLineOrMobile},
		{"NANP fixed line only pattern", "+1 212 555 0100", FixedLine},
		{"NANP toll free", "+1 800 555 0100", TollFree},
		{"NANP premium rate", "+1 900 555 0100", PremiumRate},
		{"Swiss fixed line", "044 668 18 00", FixedLine},
		{"Swiss mobile", "079 668 18 00", Mobile},
		{"UK mobile", "+44 7400 123456", Mobile},
		{"French toll free", "0800 123456", TollFree},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			region := RegionID("")
			switch tt.name {
			case "Swiss fixed line", "Swiss mobile":
				region = "CH"
			case "French toll free":
				region = "FR"
			}
			n, err := Parse(region, tt.input)
			require.NoError(t, err)
			require.Equal(t, tt.want, NumberType(n))
		})
	}
}
