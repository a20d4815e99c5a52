package telephony

import (
	"strconv"
	"strings"

	"github.com/malonaz/telephony/internal/metadata"
	"github.com/malonaz/telephony/internal/regexcache"
)

// Formatter builds a textual rendering of a ParsedNumber. Construct one with
// NewFormatter, optionally chain WithCarrier, and call Format to render in
// the requested Mode (§4.7).
type Formatter struct {
	number      *ParsedNumber
	carrierCode string
	hasCarrier  bool
}

// NewFormatter starts a Formatter for n.
func NewFormatter(n *ParsedNumber) *Formatter {
	return &Formatter{number: n}
}

// WithCarrier supplies a domestic carrier code to substitute into the
// chosen rule's domestic-carrier-code formatting rule, if the region and
// rule define one. It has no effect otherwise. Returns the receiver for
// chaining.
func (f *Formatter) WithCarrier(code string) *Formatter {
	f.carrierCode = code
	f.hasCarrier = true
	return f
}

// Format renders the number in mode.
func (f *Formatter) Format(mode Mode) string {
	n := f.number
	nsn := nationalSignificantNumberString(n)
	region := regionForNationalNumber(mustStore(), n.countryCode, nsn)

	switch mode {
	case E164:
		return "+" + strconv.Itoa(n.countryCode) + nsn
	case Rfc3966:
		return f.formatRfc3966(region, nsn)
	case National:
		return f.formatNational(region, nsn)
	default: // International
		return f.formatInternational(region, nsn)
	}
}

func (f *Formatter) formatNational(region *metadata.RegionMetadata, nsn string) string {
	rule := selectFormatRule(region.NumberFormats, nsn)
	if rule == nil {
		return nsn
	}
	body := applyFormatRule(region, rule, nsn, region.NationalPrefix, f.carrierCode, f.hasCarrier)
	return appendExtension(region, body, f.number.extension)
}

func (f *Formatter) formatInternational(region *metadata.RegionMetadata, nsn string) string {
	prefix := "+" + strconv.Itoa(f.number.countryCode) + " "
	formats := region.IntlNumberFormats
	if len(formats) == 0 {
		formats = region.NumberFormats
	}
	rule := selectFormatRule(formats, nsn)
	if rule == nil {
		return prefix + nsn
	}
	body := applyFormatRule(region, rule, nsn, "", "", false)
	return appendExtension(region, prefix+body, f.number.extension)
}

func (f *Formatter) formatRfc3966(region *metadata.RegionMetadata, nsn string) string {
	formats := region.IntlNumberFormats
	if len(formats) == 0 {
		formats = region.NumberFormats
	}
	rule := selectFormatRule(formats, nsn)
	body := nsn
	if rule != nil {
		body = applyFormatRule(region, rule, nsn, "", "", false)
	}
	body = strings.ReplaceAll(body, " ", "-")
	out := "tel:+" + strconv.Itoa(f.number.countryCode) + "-" + body
	if f.number.extension != "" {
		out += ";ext=" + f.number.extension
	}
	return out
}

// selectFormatRule picks the first rule whose leading-digits anchors (if
// any) all match nsn and whose pattern fully matches nsn (§4.7).
func selectFormatRule(rules []*metadata.NumberFormat, nsn string) *metadata.NumberFormat {
	for _, rule := range rules {
		if !leadingDigitsAllMatch(rule, nsn) {
			continue
		}
		if regexcache.MatchesFully(rule.Pattern, nsn) {
			return rule
		}
	}
	return nil
}

func leadingDigitsAllMatch(rule *metadata.NumberFormat, nsn string) bool {
	for _, ld := range rule.LeadingDigitsPatterns {
		if !regexcache.MatchesPrefix(ld, nsn) {
			return false
		}
	}
	return true
}

// applyFormatRule substitutes nsn's captured groups into rule.Format, then
// applies the national-prefix (or, when a carrier code is supplied and the
// rule defines one, domestic-carrier-code) formatting rule in place of the
// national prefix placeholder.
func applyFormatRule(region *metadata.RegionMetadata, rule *metadata.NumberFormat, nsn, nationalPrefix, carrierCode string, hasCarrier bool) string {
	re, err := regexcache.Get(rule.Pattern)
	if err != nil {
		return nsn
	}
	groups := re.FindStringSubmatch(nsn)
	if groups == nil {
		return nsn
	}

	formatted := substituteGroups(rule.Format, groups)

	prefixRule := rule.NationalPrefixFormattingRule
	if hasCarrier && carrierCode != "" && rule.DomesticCarrierCodeFormattingRule != "" {
		prefixRule = rule.DomesticCarrierCodeFormattingRule
	}
	if prefixRule == "" || nationalPrefix == "" || len(groups) < 2 {
		return formatted
	}

	firstGroup := groups[1]
	substituted := strings.ReplaceAll(prefixRule, "$NP", nationalPrefix)
	substituted = strings.ReplaceAll(substituted, "$FG", firstGroup)
	substituted = strings.ReplaceAll(substituted, "$CC", carrierCode)
	substituted = strings.ReplaceAll(substituted, "$1", firstGroup)

	// The formatted body already begins with the unprefixed first group;
	// replace just that leading occurrence with the prefix-rule expansion.
	if strings.HasPrefix(formatted, firstGroup) {
		return substituted + formatted[len(firstGroup):]
	}
	return formatted
}

// substituteGroups replaces $1..$9 placeholders in format with the
// corresponding regex capture group from groups (groups[0] is the whole
// match).
func substituteGroups(format string, groups []string) string {
	var b strings.Builder
	for i := 0; i < len(format); i++ {
		if format[i] == '$' && i+1 < len(format) && format[i+1] >= '1' && format[i+1] <= '9' {
			idx := int(format[i+1] - '0')
			if idx < len(groups) {
				b.WriteString(groups[idx])
			}
			i++
			continue
		}
		b.WriteByte(format[i])
	}
	return b.String()
}

// appendExtension appends ext to body using region's preferred extension
// prefix, falling back to " ext. " when the region declares none (§4.7).
func appendExtension(region *metadata.RegionMetadata, body, ext string) string {
	if ext == "" {
		return body
	}
	prefix := " ext. "
	if region != nil && region.PreferredExtnPrefix != "" {
		prefix = region.PreferredExtnPrefix
	}
	return body + prefix + ext
}
