package telephony

import "github.com/malonaz/telephony/internal/regexcache"

// typeByDescriptorName maps a metadata type-descriptor name to its exported
// Type constant. RegionMetadata.TypeDescriptors already yields descriptors
// in the priority order typePriority defines, so classification just walks
// that list once.
var typeByDescriptorName = map[string]Type{
	"PREMIUM_RATE":    PremiumRate,
	"TOLL_FREE":       TollFree,
	"SHARED_COST":     SharedCost,
	"VOIP":            Voip,
	"PERSONAL_NUMBER": PersonalNumber,
	"PAGER":           Pager,
	"UAN":             Uan,
	"VOICEMAIL":       Voicemail,
	"FIXED_LINE":      FixedLine,
	"MOBILE":          Mobile,
}

// NumberType classifies n by the fixed priority order (§4.6): the first
// type descriptor (in typePriority order) whose pattern fully matches wins,
// except that a number matching both the fixed-line and mobile descriptors
// collapses to FixedLineOrMobile regardless of whether the two patterns
// happen to share the same source text (they commonly don't: e.g. NANP
// numbering plans where mobile ranges are a strict subset of fixed-line
// ranges).
func NumberType(n *ParsedNumber) Type {
	region := regionForNationalNumber(mustStore(), n.countryCode, nationalSignificantNumberString(n))
	if region == nil {
		return Unknown
	}
	nsn := nationalSignificantNumberString(n)

	matchesFixedLine := region.FixedLine != nil && region.FixedLine.AllowsLength(len(nsn)) &&
		regexcache.MatchesFully(region.FixedLine.NationalNumberPattern, nsn)
	matchesMobile := region.Mobile != nil && region.Mobile.AllowsLength(len(nsn)) &&
		regexcache.MatchesFully(region.Mobile.NationalNumberPattern, nsn)
	if matchesFixedLine && matchesMobile {
		return FixedLineOrMobile
	}

	for _, td := range region.TypeDescriptors() {
		if !td.Desc.AllowsLength(len(nsn)) {
			continue
		}
		if !regexcache.MatchesFully(td.Desc.NationalNumberPattern, nsn) {
			continue
		}
		return typeByDescriptorName[td.Name]
	}
	return Unknown
}
