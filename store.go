package telephony

import (
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/malonaz/telephony/internal/metadata"
)

var (
	defaultStore     *metadata.Store
	defaultStoreErr  error
	defaultStoreOnce sync.Once

	overrideSource io.Reader
	overrideMu     sync.Mutex
)

// SetMetadataSource overrides the embedded metadata corpus with r, which
// must yield gzip-compressed JSON in the same shape as the built-in asset.
// It must be called before the first parse, format, or lookup operation;
// calling it afterwards has no effect on the already-initialized store.
func SetMetadataSource(r io.Reader) {
	overrideMu.Lock()
	defer overrideMu.Unlock()
	overrideSource = r
}

func store() (*metadata.Store, error) {
	defaultStoreOnce.Do(func() {
		overrideMu.Lock()
		src := overrideSource
		overrideMu.Unlock()

		var opts []metadata.Option
		if src != nil {
			opts = append(opts, metadata.WithSource(src))
		}
		defaultStore, defaultStoreErr = metadata.Load(opts...)
		if defaultStoreErr != nil {
			defaultStoreErr = classifyMetadataErr(defaultStoreErr)
		}
	})
	return defaultStore, defaultStoreErr
}

// mustStore panics if the embedded metadata corpus fails to load, which
// signals a build-time defect rather than a runtime condition callers can
// recover from.
func mustStore() *metadata.Store {
	s, err := store()
	if err != nil {
		panic(fmt.Sprintf("telephony: loading metadata: %v", err))
	}
	return s
}

func classifyMetadataErr(err error) error {
	switch {
	case errors.Is(err, metadata.ErrUnsupportedVersion):
		return &MetadataError{Kind: ErrUnsupportedMetadataVersion, Message: err.Error()}
	case errors.Is(err, metadata.ErrCorrupt):
		return &MetadataError{Kind: ErrCorruptMetadata, Message: err.Error()}
	default:
		return err
	}
}

// CorpusVersion returns the diagnostic version string of the loaded metadata
// corpus, e.g. for inclusion in support bundles or a smoketest's banner.
func CorpusVersion() string {
	return mustStore().CorpusVersion()
}
