package telephony

import (
	"strconv"

	"github.com/malonaz/telephony/internal/metadata"
	"github.com/malonaz/telephony/internal/regexcache"
)

// maxCallingCodeDigits bounds how many leading digits the resolver will try
// as a calling code: ITU calling codes are 1-3 digits.
const maxCallingCodeDigits = 3

// resolveCountryCode implements the Country-Code Resolver (§4.4). candidate
// is normalized (ASCII digits, optional leading '+'). defaultRegion may be
// nil. It returns the calling code, the remaining national significant
// number digits, and how the code was determined.
func resolveCountryCode(store *metadata.Store, candidate string, defaultRegion *metadata.RegionMetadata) (int, string, CountryCodeSource, error) {
	if len(candidate) > 0 && candidate[0] == '+' {
		cc, rest, err := consumeShortestCallingCode(store, candidate[1:])
		if err != nil {
			return 0, "", 0, err
		}
		return cc, rest, FromNumberWithPlusSign, nil
	}

	if defaultRegion != nil {
		if rest, ok := stripIddPrefix(defaultRegion, candidate); ok {
			cc, tail, err := consumeShortestCallingCode(store, rest)
			if err == nil {
				return cc, tail, FromNumberWithIdd, nil
			}
			if len(rest) <= minViableDigits {
				return 0, "", 0, newParseError(ErrTooShortAfterIdd, "too few digits remain after IDD prefix")
			}
			return 0, "", 0, err
		}

		trial, _, _, stripped := stripNationalPrefix(defaultRegion, candidate)
		if stripped && isPossibleNationalNumberFor(defaultRegion, trial) {
			return defaultRegion.CountryCallingCode, candidate, FromDefaultCountry, nil
		}
		if isPossibleNationalNumberFor(defaultRegion, candidate) {
			return defaultRegion.CountryCallingCode, candidate, FromDefaultCountry, nil
		}

		if cc, rest, err := consumeShortestCallingCode(store, candidate); err == nil {
			resolvedRegion := regionForNationalNumber(store, cc, rest)
			if isPossibleNationalNumberFor(resolvedRegion, rest) {
				return cc, rest, FromNumberWithoutPlusSign, nil
			}
		}
		return 0, "", 0, newParseError(ErrInvalidCountryCode, "no default-region or plus-prefixed calling code could be resolved")
	}

	return 0, "", 0, newParseError(ErrInvalidCountryCode, "no leading '+' and no default region supplied")
}

// consumeShortestCallingCode tries 1, 2, then 3 leading digits of digits
// against the store, returning the shortest recognized calling code.
func consumeShortestCallingCode(store *metadata.Store, digits string) (int, string, error) {
	for length := 1; length <= maxCallingCodeDigits && length <= len(digits); length++ {
		cc, err := strconv.Atoi(digits[:length])
		if err != nil {
			continue
		}
		if store.CallingCodeKnown(cc) {
			return cc, digits[length:], nil
		}
	}
	return 0, "", newParseError(ErrInvalidCountryCode, "no recognized calling code prefix in %q", digits)
}

// stripIddPrefix strips region's international dialing prefix from the
// front of candidate, if present, returning the remainder and true.
func stripIddPrefix(region *metadata.RegionMetadata, candidate string) (string, bool) {
	if region.InternationalPrefix == "" {
		return "", false
	}
	pattern := "^(?:" + region.InternationalPrefix + ")"
	re, err := regexcache.Get(pattern)
	if err != nil {
		return "", false
	}
	loc := re.FindStringIndex(candidate)
	if loc == nil || loc[0] != 0 {
		return "", false
	}
	return candidate[loc[1]:], true
}

// isPossibleNationalNumberFor reports whether digits, taken as a national
// number of region with no further stripping, has a length allowed by the
// region's general descriptor. This is a lightweight length-only check: the
// resolver only needs plausibility, not full validation, to break the
// default-region tie (§4.4 step 3).
func isPossibleNationalNumberFor(region *metadata.RegionMetadata, digits string) bool {
	if region == nil || region.GeneralDesc == nil {
		return false
	}
	return region.GeneralDesc.AllowsLength(len(digits)) || region.GeneralDesc.AllowsLocalOnlyLength(len(digits))
}
