package metadata

import (
	"bytes"
	"compress/gzip"
	"encoding/json"
	"testing"

	"github.com/hashicorp/go-multierror"
	"github.com/stretchr/testify/require"
)

func mustLoadEmbedded(t *testing.T) *Store {
	t.Helper()
	store, err := Load()
	require.NoError(t, err)
	return store
}

func TestLoadEmbeddedCorpus(t *testing.T) {
	store := mustLoadEmbedded(t)
	require.Equal(t, SupportedSchemaVersion, store.SchemaVersion())
	require.NotEmpty(t, store.CorpusVersion())
}

func TestForRegion(t *testing.T) {
	store := mustLoadEmbedded(t)

	us, ok := store.ForRegion("US")
	require.True(t, ok)
	require.Equal(t, 1, us.CountryCallingCode)

	_, ok = store.ForRegion("ZZ")
	require.False(t, ok)
}

func TestForCallingCodeGroupsSharedCode(t *testing.T) {
	store := mustLoadEmbedded(t)

	regions := store.ForCallingCode(1)
	ids := make([]string, 0, len(regions))
	for _, r := range regions {
		ids = append(ids, r.ID)
	}
	require.ElementsMatch(t, []string{"US", "CA"}, ids)

	regions = store.ForCallingCode(7)
	ids = ids[:0]
	for _, r := range regions {
		ids = append(ids, r.ID)
	}
	require.ElementsMatch(t, []string{"RU", "KZ"}, ids)
}

func TestMainRegionForCode(t *testing.T) {
	store := mustLoadEmbedded(t)

	main, ok := store.MainRegionForCode(1)
	require.True(t, ok)
	require.Equal(t, "US", main.ID)

	main, ok = store.MainRegionForCode(44)
	require.True(t, ok)
	require.Equal(t, "GB", main.ID)

	main, ok = store.MainRegionForCode(7)
	require.True(t, ok)
	require.Equal(t, "RU", main.ID)
}

func TestNonGeoForCode(t *testing.T) {
	store := mustLoadEmbedded(t)

	nonGeo, ok := store.NonGeoForCode(800)
	require.True(t, ok)
	require.Equal(t, "001", nonGeo.ID)

	_, ok = store.NonGeoForCode(1)
	require.False(t, ok)
}

func TestCallingCodeKnown(t *testing.T) {
	store := mustLoadEmbedded(t)
	require.True(t, store.CallingCodeKnown(44))
	require.False(t, store.CallingCodeKnown(999))
}

func TestAllRegionsSortedById(t *testing.T) {
	store := mustLoadEmbedded(t)
	regions := store.AllRegions()
	require.NotEmpty(t, regions)
	for i := 1; i < len(regions); i++ {
		require.Less(t, regions[i-1].ID, regions[i].ID)
	}
}

func gzipJSON(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	raw, err := json.Marshal(v)
	require.NoError(t, err)
	var buf bytes.Buffer
	gz := gzip.NewWriter(&buf)
	_, err = gz.Write(raw)
	require.NoError(t, err)
	require.NoError(t, gz.Close())
	return &buf
}

func TestLoadRejectsFutureSchemaVersion(t *testing.T) {
	corpus := Corpus{SchemaVersion: SupportedSchemaVersion + 1, Regions: []*RegionMetadata{}}
	_, err := Load(WithSource(gzipJSON(t, corpus)))
	require.ErrorIs(t, err, ErrUnsupportedVersion)
}

func TestLoadRejectsZeroSchemaVersion(t *testing.T) {
	corpus := Corpus{SchemaVersion: 0, Regions: []*RegionMetadata{}}
	_, err := Load(WithSource(gzipJSON(t, corpus)))
	require.ErrorIs(t, err, ErrCorrupt)
}

func TestLoadAggregatesMultipleValidationErrors(t *testing.T) {
	corpus := Corpus{
		SchemaVersion: 1,
		Regions: []*RegionMetadata{
			{ID: "AA", CountryCallingCode: 1, GeneralDesc: &Descriptor{NationalNumberPattern: "("}},
			{ID: "", CountryCallingCode: 2, GeneralDesc: &Descriptor{NationalNumberPattern: "\\d{5}"}},
			{ID: "BB", CountryCallingCode: 0, GeneralDesc: &Descriptor{NationalNumberPattern: "\\d{5}"}},
		},
	}
	_, err := Load(WithSource(gzipJSON(t, corpus)))
	require.Error(t, err)
	require.ErrorIs(t, err, ErrCorrupt)

	merr, ok := err.(*multierror.Error)
	require.True(t, ok, "expected a *multierror.Error")
	require.GreaterOrEqual(t, len(merr.Errors), 3)
}

func TestLoadRejectsDuplicateMainRegionForCode(t *testing.T) {
	corpus := Corpus{
		SchemaVersion: 1,
		Regions: []*RegionMetadata{
			{ID: "AA", CountryCallingCode: 44, MainCountryForCode: true, GeneralDesc: &Descriptor{NationalNumberPattern: "\\d{5}"}},
			{ID: "BB", CountryCallingCode: 44, MainCountryForCode: true, GeneralDesc: &Descriptor{NationalNumberPattern: "\\d{5}"}},
		},
	}
	_, err := Load(WithSource(gzipJSON(t, corpus)))
	require.ErrorIs(t, err, ErrCorrupt)
}

func TestLoadRejectsCorruptGzip(t *testing.T) {
	_, err := Load(WithSource(bytes.NewReader([]byte("not gzip"))))
	require.ErrorIs(t, err, ErrCorrupt)
}
