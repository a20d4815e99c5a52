package telephony

import (
	"regexp"
	"strings"

	"github.com/malonaz/telephony/internal/metadata"
)

// extensionSeparators is the fixed, ordered list of extension separator
// patterns tried by extractExtension (§4.5 step 1). RFC 3966's ";ext=" is
// tried first since it's unambiguous; free-text separators like "ext" or
// "x" follow, loosest last so a plain "x" doesn't preempt a more specific
// match earlier in the string.
var extensionSeparators = []*regexp.Regexp{
	regexp.MustCompile(`(?i);\s*ext=([0-9]{1,7})$`),
	regexp.MustCompile(`(?i)[\s]*(?:e?xt(?:ensi(?:o|ó)n)?|裏|ｘ|ext)[.:\s]*([0-9]{1,7})#?$`),
	regexp.MustCompile(`(?i)[\s]*x[.:\s]*([0-9]{1,7})#?$`),
	regexp.MustCompile(`#([0-9]{1,7})$`),
}

// extractExtension splits body off any trailing extension marker, trying
// the region's own preferred_extn_prefix first when region is non-nil, then
// the fixed separator list in order. It returns the number body with the
// extension (and its separator) removed, plus the normalized extension
// digits, or "" if none was found.
func extractExtension(input string, region *metadata.RegionMetadata) (body, extension string) {
	if region != nil && region.PreferredExtnPrefix != "" {
		if idx := strings.LastIndex(input, region.PreferredExtnPrefix); idx >= 0 {
			candidate := input[idx+len(region.PreferredExtnPrefix):]
			digits := NormalizeDigits(candidate)
			if len(digits) > 0 && len(digits) <= 7 {
				return input[:idx], digits
			}
		}
	}
	for _, sep := range extensionSeparators {
		loc := sep.FindStringSubmatchIndex(input)
		if loc == nil {
			continue
		}
		extDigits := input[loc[2]:loc[3]]
		return input[:loc[0]], NormalizeDigits(extDigits)
	}
	return input, ""
}

// stripTelURIScheme removes a leading "tel:" or "TEL:" scheme prefix, per
// RFC 3966, so the remainder can be processed as an ordinary candidate.
func stripTelURIScheme(input string) string {
	const scheme = "tel:"
	if len(input) >= len(scheme) && strings.EqualFold(input[:len(scheme)], scheme) {
		return input[len(scheme):]
	}
	return input
}
