package telephony

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCountryCodeForRegion(t *testing.T) {
	cc, ok := CountryCodeForRegion("CH")
	require.True(t, ok)
	require.Equal(t, 41, cc)

	_, ok = CountryCodeForRegion("ZZ")
	require.False(t, ok)
}

func TestRegionCodeForNumberDisambiguatesSharedCallingCode(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  RegionID
	}{
		{"US NANP number", "+1 650 253 0000", "US"},
		{"CA NANP number", "+1 416 555 0000", "CA"},
		{"GB number", "+44 7400 123456", "GB"},
		{"Jersey number", "+44 1534 123456", "JE"},
		{"Russian number", "+7 495 123 45 67", "RU"},
		{"Kazakh number", "+7 7172 123456", "KZ"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, err := Parse("", tt.input)
			require.NoError(t, err)
			region, ok := RegionCodeForNumber(n)
			require.True(t, ok)
			require.Equal(t, tt.want, region)
		})
	}
}

func TestCallingCodeCoverageAcrossAllRegions(t *testing.T) {
	for _, region := range mustStore().AllRegions() {
		cc, ok := CountryCodeForRegion(RegionID(region.ID))
		require.True(t, ok)
		require.Equal(t, region.CountryCallingCode, cc)

		main, ok := mustStore().MainRegionForCode(cc)
		require.True(t, ok)
		found := false
		for _, candidate := range mustStore().ForCallingCode(cc) {
			if candidate.ID == main.ID {
				found = true
			}
		}
		require.True(t, found, "main region %s for cc %d must belong to cc's region set", main.ID, cc)
	}
}
