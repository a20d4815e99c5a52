package telephony

import (
	"strconv"
	"strings"

	"github.com/malonaz/telephony/internal/metadata"
	"github.com/malonaz/telephony/internal/regexcache"
)

// minViableDigits and maxViableDigits bound a normalized candidate's digit
// count before country-code resolution is even attempted (§4.5 step 2).
const (
	minViableDigits = 2
	maxViableDigits = 17
)

// viableNumberPattern is the umbrella "looks like a phone number" regex a
// normalized candidate's digits must satisfy, per §4.5 step 2. It is
// deliberately permissive: viability is a cheap early filter, not the
// validity check performed later by IsValidNumber.
const viableNumberPattern = `^\+?[0-9]{2,17}$`

// Parse parses input against defaultRegion (which may be "" if input carries
// its own country code), producing a canonical ParsedNumber (§4.5).
func Parse(defaultRegion RegionID, input string) (*ParsedNumber, error) {
	store, err := store()
	if err != nil {
		return nil, err
	}

	var defaultMeta *metadata.RegionMetadata
	if defaultRegion != "" {
		defaultMeta, _ = store.ForRegion(string(defaultRegion))
	}

	stripped := stripTelURIScheme(input)
	body, extension := extractExtension(stripped, defaultMeta)

	possible := extractPossibleNumber(body)
	if possible == "" {
		return nil, newParseError(ErrNotANumber, "input contains no recognizable digits")
	}

	candidate := normalize(possible)
	if !regexcache.MatchesFully(viableNumberPattern, candidate) {
		return nil, newParseError(ErrNotANumber, "normalized input %q does not look like a phone number", candidate)
	}

	cc, nsn, source, err := resolveCountryCode(store, candidate, defaultMeta)
	if err != nil {
		return nil, err
	}

	var region *metadata.RegionMetadata
	if source == FromDefaultCountry {
		region = defaultMeta
	} else {
		region = regionForNationalNumber(store, cc, nsn)
	}

	carrierCode, hasCarrier := "", false
	if region != nil {
		var stripped2 string
		var ok bool
		stripped2, carrierCode, hasCarrier, ok = stripNationalPrefix(region, nsn)
		if ok {
			nsn = stripped2
		}
	}

	italianLeadingZero := false
	numberOfLeadingZeros := 1
	if region != nil && region.LeadingZeroPossible && len(nsn) > 1 && nsn[0] == '0' {
		italianLeadingZero = true
		numberOfLeadingZeros = 0
		for numberOfLeadingZeros < len(nsn)-1 && nsn[numberOfLeadingZeros] == '0' {
			numberOfLeadingZeros++
		}
		nsn = nsn[numberOfLeadingZeros:]
	}

	value, err := strconv.ParseUint(nsn, 10, 64)
	if err != nil {
		return nil, newParseError(ErrNotANumber, "national number %q is not decimal", nsn)
	}

	n := &ParsedNumber{
		countryCode:          cc,
		nationalNumber:       value,
		italianLeadingZero:   italianLeadingZero,
		numberOfLeadingZeros: numberOfLeadingZeros,
		extension:            extension,
		countryCodeSource:    source,
		preferredCarrierCode: carrierCode,
		hasPreferredCarrier:  hasCarrier,
	}

	total := totalDigitLength(n)
	if total < minViableDigits {
		return nil, newParseError(ErrTooShortNsn, "national number %q has only %d significant digit(s)", nsn, total)
	}
	if total > maxViableDigits {
		return nil, newParseError(ErrTooLong, "national number %q has %d digits, exceeds %d", nsn, total, maxViableDigits)
	}

	return n, nil
}

// stripNationalPrefix strips region's national prefix (and, if the parsing
// rule captures one, its preferred carrier code) from the front of nsn.
// The prefix-for-parsing rule takes precedence over the plain national
// prefix string when both are present (§4.5 step 4). ok is false when no
// prefix rule applies or the match would strip the number down to nothing.
//
// When the rule carries a transform template (NationalPrefixTransformRule),
// the matched prefix is substituted rather than truncated: everything the
// match consumed is replaced by the template's `$1`-style expansion of its
// capture groups, and everything after the match is left untouched. This is
// a different operation from plain truncation — the template can fold part
// of what it matched (e.g. an area code) back into the result instead of
// discarding it.
func stripNationalPrefix(region *metadata.RegionMetadata, nsn string) (remaining, carrierCode string, hasCarrier, ok bool) {
	if region.NationalPrefixForParsing != "" {
		pattern := "^(?:" + region.NationalPrefixForParsing + ")"
		re, err := regexcache.Get(pattern)
		if err != nil {
			return nsn, "", false, false
		}
		loc := re.FindStringSubmatchIndex(nsn)
		if loc == nil || loc[0] != 0 {
			return nsn, "", false, false
		}

		if region.NationalPrefixTransformRule != "" {
			if loc[1] == len(nsn) && region.CarrierCodeGroup == 0 {
				return nsn, "", false, false
			}
			transformed := re.ReplaceAllString(nsn, region.NationalPrefixTransformRule)
			if transformed == nsn {
				return nsn, "", false, false
			}
			if region.CarrierCodeGroup > 0 {
				gi := 2 * region.CarrierCodeGroup
				if gi+1 < len(loc) && loc[gi] >= 0 && loc[gi+1] >= 0 {
					carrierCode = nsn[loc[gi]:loc[gi+1]]
					hasCarrier = true
				}
			}
			return transformed, carrierCode, hasCarrier, true
		}

		if loc[1] == len(nsn) {
			return nsn, "", false, false
		}
		remaining = nsn[loc[1]:]
		if region.CarrierCodeGroup > 0 {
			gi := 2 * region.CarrierCodeGroup
			if gi+1 < len(loc) && loc[gi] >= 0 && loc[gi+1] >= 0 {
				carrierCode = nsn[loc[gi]:loc[gi+1]]
				hasCarrier = true
			}
		}
		return remaining, carrierCode, hasCarrier, true
	}

	if region.NationalPrefix != "" && strings.HasPrefix(nsn, region.NationalPrefix) {
		remaining = nsn[len(region.NationalPrefix):]
		if remaining == "" {
			return nsn, "", false, false
		}
		return remaining, "", false, true
	}

	return nsn, "", false, false
}
