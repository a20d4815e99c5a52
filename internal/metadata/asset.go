package metadata

import (
	"compress/gzip"
	"embed"
	"encoding/json"
	"fmt"
	"io"

	"github.com/hashicorp/go-multierror"

	"github.com/malonaz/telephony/internal/regexcache"
)

//go:embed data/corpus.json.gz
var embeddedAsset embed.FS

const embeddedAssetPath = "data/corpus.json.gz"

// config holds Load's options.
type config struct {
	source io.Reader
}

// Option configures Load.
type Option func(*config)

// WithSource overrides the corpus source, e.g. to point at a refreshed asset
// on disk without a rebuild. The reader must yield gzip-compressed JSON in
// the Corpus shape. If unset, Load reads the asset embedded at build time.
func WithSource(r io.Reader) Option {
	return func(c *config) { c.source = r }
}

// Load decodes, validates, and indexes the metadata corpus into a Store.
// Every structural problem found (not just the first) is collected into one
// error, mirroring the "collect every problem before failing" style used by
// batch workers elsewhere in the corpus this library's teacher belongs to.
func Load(opts ...Option) (*Store, error) {
	cfg := &config{}
	for _, opt := range opts {
		opt(cfg)
	}

	src := cfg.source
	if src == nil {
		f, err := embeddedAsset.Open(embeddedAssetPath)
		if err != nil {
			return nil, fmt.Errorf("opening embedded metadata asset: %w: %v", ErrCorrupt, err)
		}
		defer f.Close()
		src = f
	}

	gz, err := gzip.NewReader(src)
	if err != nil {
		return nil, fmt.Errorf("gzip header: %w: %v", ErrCorrupt, err)
	}
	defer gz.Close()

	var corpus Corpus
	if err := json.NewDecoder(gz).Decode(&corpus); err != nil {
		return nil, fmt.Errorf("decoding corpus json: %w: %v", ErrCorrupt, err)
	}

	if corpus.SchemaVersion > SupportedSchemaVersion {
		return nil, fmt.Errorf("%w: corpus declares schema version %d, this build supports up to %d",
			ErrUnsupportedVersion, corpus.SchemaVersion, SupportedSchemaVersion)
	}
	if corpus.SchemaVersion < 1 {
		return nil, fmt.Errorf("corpus declares schema version %d: %w", corpus.SchemaVersion, ErrCorrupt)
	}

	if err := validate(&corpus); err != nil {
		return nil, err
	}

	return newStore(&corpus), nil
}

// validate compiles each region's general-descriptor and classification
// type-descriptor patterns, number-format patterns, and national
// number-format leading-digits patterns (populating the
// shared regex cache with them as a side effect) and checks the structural
// invariants from §3: every region has a general descriptor, at most one main
// region per calling code. Region leading_digits, international prefixes,
// national-prefix-for-parsing rules, and the anchored variants used by
// regexcache.MatchesFully are not compiled here; they compile on first use.
func validate(corpus *Corpus) error {
	var errs *multierror.Error
	mainSeen := map[int]string{}

	for _, region := range corpus.Regions {
		if region.ID == "" {
			errs = multierror.Append(errs, fmt.Errorf("%w: region with empty id (calling code %d)", ErrCorrupt, region.CountryCallingCode))
			continue
		}
		if region.CountryCallingCode <= 0 {
			errs = multierror.Append(errs, fmt.Errorf("%w: region %s has non-positive calling code", ErrCorrupt, region.ID))
		}
		if region.GeneralDesc == nil {
			errs = multierror.Append(errs, fmt.Errorf("%w: region %s missing general_desc", ErrCorrupt, region.ID))
			continue
		}
		if _, err := regexcache.Get(region.GeneralDesc.NationalNumberPattern); err != nil {
			errs = multierror.Append(errs, fmt.Errorf("%w: region %s general_desc pattern: %v", ErrCorrupt, region.ID, err))
		}
		for _, td := range region.TypeDescriptors() {
			if _, err := regexcache.Get(td.Desc.NationalNumberPattern); err != nil {
				errs = multierror.Append(errs, fmt.Errorf("%w: region %s %s pattern: %v", ErrCorrupt, region.ID, td.Name, err))
			}
		}
		for i, nf := range region.NumberFormats {
			if _, err := regexcache.Get(nf.Pattern); err != nil {
				errs = multierror.Append(errs, fmt.Errorf("%w: region %s number_formats[%d] pattern: %v", ErrCorrupt, region.ID, i, err))
			}
			for _, ld := range nf.LeadingDigitsPatterns {
				if _, err := regexcache.Get(ld); err != nil {
					errs = multierror.Append(errs, fmt.Errorf("%w: region %s number_formats[%d] leading digits: %v", ErrCorrupt, region.ID, i, err))
				}
			}
		}
		for i, nf := range region.IntlNumberFormats {
			if _, err := regexcache.Get(nf.Pattern); err != nil {
				errs = multierror.Append(errs, fmt.Errorf("%w: region %s intl_number_formats[%d] pattern: %v", ErrCorrupt, region.ID, i, err))
			}
		}
		if region.MainCountryForCode {
			if prev, ok := mainSeen[region.CountryCallingCode]; ok {
				errs = multierror.Append(errs, fmt.Errorf("%w: calling code %d has two main regions: %s and %s",
					ErrCorrupt, region.CountryCallingCode, prev, region.ID))
			}
			mainSeen[region.CountryCallingCode] = region.ID
		}
	}
	return errs.ErrorOrNil()
}
