package metadata

import "errors"

// ErrCorrupt wraps any failure to decode or structurally validate the
// metadata asset: malformed JSON, an unparseable regex, a region with no
// general descriptor, and so on. Callers classify with errors.Is.
var ErrCorrupt = errors.New("corrupt metadata")

// ErrUnsupportedVersion wraps a schema_version newer than SupportedSchemaVersion.
var ErrUnsupportedVersion = errors.New("unsupported metadata schema version")
