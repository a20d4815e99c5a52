package telephony

import "github.com/malonaz/telephony/internal/regexcache"

// IsPossibleNumber reports whether n's national number length is one the
// region's general descriptor allows, without checking the pattern itself
// (§4.6, is_possible).
func IsPossibleNumber(n *ParsedNumber) PossibleResult {
	region := regionForNationalNumber(mustStore(), n.countryCode, nationalSignificantNumberString(n))
	if region == nil || region.GeneralDesc == nil {
		return InvalidCountryCodeResult
	}
	nsn := nationalSignificantNumberString(n)
	length := len(nsn)

	if region.GeneralDesc.AllowsLength(length) {
		return IsPossible
	}
	if region.GeneralDesc.AllowsLocalOnlyLength(length) {
		return IsPossibleLocalOnly
	}

	lengths := region.GeneralDesc.PossibleLengths
	if len(lengths) == 0 {
		return InvalidLength
	}
	min, max := lengths[0], lengths[0]
	for _, l := range lengths {
		if l < min {
			min = l
		}
		if l > max {
			max = l
		}
	}
	switch {
	case length < min:
		return TooShort
	case length > max:
		return TooLong
	default:
		return InvalidLength
	}
}

// IsValidNumber requires n to be possible, to match the region's general
// descriptor pattern in full, and to match at least one type descriptor's
// pattern with a length that descriptor allows (§4.6).
func IsValidNumber(n *ParsedNumber) bool {
	region := regionForNationalNumber(mustStore(), n.countryCode, nationalSignificantNumberString(n))
	if region == nil || region.GeneralDesc == nil {
		return false
	}
	if IsPossibleNumber(n) != IsPossible {
		return false
	}
	nsn := nationalSignificantNumberString(n)
	if !regexcache.MatchesFully(region.GeneralDesc.NationalNumberPattern, nsn) {
		return false
	}
	for _, td := range region.TypeDescriptors() {
		if !td.Desc.AllowsLength(len(nsn)) {
			continue
		}
		if regexcache.MatchesFully(td.Desc.NationalNumberPattern, nsn) {
			return true
		}
	}
	return false
}
