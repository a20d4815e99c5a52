package telephony

import (
	"github.com/malonaz/telephony/internal/metadata"
	"github.com/malonaz/telephony/internal/regexcache"
)

// CountryCodeForRegion returns the calling code registered for region, or
// (0, false) if region is unknown to the loaded metadata.
func CountryCodeForRegion(region RegionID) (int, bool) {
	meta, ok := mustStore().ForRegion(string(region))
	if !ok {
		return 0, false
	}
	return meta.CountryCallingCode, true
}

// RegionCodeForNumber disambiguates which region among those sharing n's
// calling code actually issued it, matching the national significant number
// against each candidate's leading_digits anchor in corpus order: the first
// candidate whose anchor matches wins, and the calling code's main region is
// returned when none matches (§9, calling-code ambiguity).
func RegionCodeForNumber(n *ParsedNumber) (RegionID, bool) {
	region := regionForNationalNumber(mustStore(), n.countryCode, nationalSignificantNumberString(n))
	if region == nil {
		return "", false
	}
	return RegionID(region.ID), true
}

// regionForNationalNumber picks the metadata region among those sharing cc
// whose leading_digits anchor matches nsn, falling back to the calling
// code's main region when there is a single candidate, no candidate
// declares leading_digits, or none of them match.
func regionForNationalNumber(store *metadata.Store, cc int, nsn string) *metadata.RegionMetadata {
	candidates := store.ForCallingCode(cc)
	if len(candidates) == 0 {
		return nil
	}
	if len(candidates) == 1 {
		return candidates[0]
	}
	for _, candidate := range candidates {
		if candidate.LeadingDigits == "" {
			continue
		}
		if regexcache.MatchesPrefix(candidate.LeadingDigits, nsn) {
			return candidate
		}
	}
	if main, ok := store.MainRegionForCode(cc); ok {
		return main
	}
	return candidates[0]
}
