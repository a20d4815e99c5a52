// Package metadata holds the compact, queryable representation of the
// per-region telephone numbering plans loaded from the embedded corpus
// asset, plus the immutable in-memory store built from it.
package metadata

// SupportedSchemaVersion is the newest corpus schema this loader understands.
// Loading a corpus that declares a higher version fails with
// ErrUnsupportedVersion rather than guessing at forward-compatible decoding.
const SupportedSchemaVersion = 1

// Corpus is the top-level shape of the embedded metadata asset.
type Corpus struct {
	SchemaVersion int               `json:"schema_version"`
	GeneratedAt   string            `json:"generated_at"`
	Regions       []*RegionMetadata `json:"regions"`
}

// RegionMetadata is one region's (or one non-geographic entity's) complete
// numbering plan, mirroring libphonenumber's per-territory metadata.
type RegionMetadata struct {
	ID                           string `json:"id"`
	CountryCallingCode           int    `json:"country_calling_code"`
	InternationalPrefix          string `json:"international_prefix,omitempty"`
	PreferredInternationalPrefix string `json:"preferred_international_prefix,omitempty"`
	NationalPrefix               string `json:"national_prefix,omitempty"`
	NationalPrefixForParsing     string `json:"national_prefix_for_parsing,omitempty"`
	NationalPrefixTransformRule  string `json:"national_prefix_transform_rule,omitempty"`
	// CarrierCodeGroup is the 1-based index of the capturing group within
	// NationalPrefixForParsing that holds a preferred carrier code, or 0 if
	// the region's parsing rule never captures one. Upstream libphonenumber
	// infers this from capture-group counting against the transform rule;
	// this port makes it explicit for auditability of a hand-curated corpus.
	CarrierCodeGroup int `json:"carrier_code_group,omitempty"`
	PreferredExtnPrefix          string `json:"preferred_extn_prefix,omitempty"`
	MainCountryForCode           bool   `json:"main_country_for_code,omitempty"`
	LeadingDigits                string `json:"leading_digits,omitempty"`
	// LeadingZeroPossible marks regions (Italy chief among them) where a
	// national number legitimately begins with one or more significant
	// zeros that must survive round-trip formatting. Not derivable from the
	// calling code alone (§9).
	LeadingZeroPossible bool `json:"leading_zero_possible,omitempty"`

	GeneralDesc             *Descriptor `json:"general_desc"`
	FixedLine               *Descriptor `json:"fixed_line,omitempty"`
	Mobile                  *Descriptor `json:"mobile,omitempty"`
	TollFree                *Descriptor `json:"toll_free,omitempty"`
	PremiumRate             *Descriptor `json:"premium_rate,omitempty"`
	SharedCost              *Descriptor `json:"shared_cost,omitempty"`
	PersonalNumber          *Descriptor `json:"personal_number,omitempty"`
	Voip                    *Descriptor `json:"voip,omitempty"`
	Pager                   *Descriptor `json:"pager,omitempty"`
	Uan                     *Descriptor `json:"uan,omitempty"`
	Emergency               *Descriptor `json:"emergency,omitempty"`
	Voicemail               *Descriptor `json:"voicemail,omitempty"`
	ShortCode               *Descriptor `json:"short_code,omitempty"`
	StandardRate            *Descriptor `json:"standard_rate,omitempty"`
	CarrierSpecific         *Descriptor `json:"carrier_specific,omitempty"`
	SmsServices             *Descriptor `json:"sms_services,omitempty"`
	NoInternationalDialling *Descriptor `json:"no_international_dialling,omitempty"`

	NumberFormats     []*NumberFormat `json:"number_formats,omitempty"`
	IntlNumberFormats []*NumberFormat `json:"intl_number_formats,omitempty"`
}

// TypeDescriptors returns every populated per-type descriptor paired with
// its priority-ordered classification slot, in the fixed priority order
// used for classification (§4.6): premium rate before toll free before
// shared cost, and so on, ending with fixed line and mobile.
func (r *RegionMetadata) TypeDescriptors() []struct {
	Name string
	Desc *Descriptor
} {
	ordered := []struct {
		Name string
		Desc *Descriptor
	}{
		{"PREMIUM_RATE", r.PremiumRate},
		{"TOLL_FREE", r.TollFree},
		{"SHARED_COST", r.SharedCost},
		{"VOIP", r.Voip},
		{"PERSONAL_NUMBER", r.PersonalNumber},
		{"PAGER", r.Pager},
		{"UAN", r.Uan},
		{"VOICEMAIL", r.Voicemail},
		{"FIXED_LINE", r.FixedLine},
		{"MOBILE", r.Mobile},
	}
	out := ordered[:0]
	for _, td := range ordered {
		if td.Desc != nil {
			out = append(out, td)
		}
	}
	return out
}

// Descriptor is a national-number-pattern regex plus the set of national
// number lengths it permits.
type Descriptor struct {
	NationalNumberPattern    string `json:"national_number_pattern"`
	PossibleLengths          []int  `json:"possible_lengths,omitempty"`
	PossibleLengthsLocalOnly []int  `json:"possible_lengths_local_only,omitempty"`
}

// AllowsLength reports whether length is one of this descriptor's possible
// national-number lengths. Local-only lengths are not included; see
// AllowsLocalOnlyLength.
func (d *Descriptor) AllowsLength(length int) bool {
	if d == nil {
		return false
	}
	for _, l := range d.PossibleLengths {
		if l == length {
			return true
		}
	}
	return false
}

// AllowsLocalOnlyLength reports whether length is a local-only length.
func (d *Descriptor) AllowsLocalOnlyLength(length int) bool {
	if d == nil {
		return false
	}
	for _, l := range d.PossibleLengthsLocalOnly {
		if l == length {
			return true
		}
	}
	return false
}

// NumberFormat is one entry of a region's ordered formatting rule list.
type NumberFormat struct {
	Pattern                              string   `json:"pattern"`
	Format                               string   `json:"format"`
	LeadingDigitsPatterns                []string `json:"leading_digits_patterns,omitempty"`
	NationalPrefixFormattingRule         string   `json:"national_prefix_formatting_rule,omitempty"`
	NationalPrefixOptionalWhenFormatting bool     `json:"national_prefix_optional_when_formatting,omitempty"`
	DomesticCarrierCodeFormattingRule    string   `json:"domestic_carrier_code_formatting_rule,omitempty"`
}
