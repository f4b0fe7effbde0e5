package manifest

import "errors"

var (
	// ErrNoUpdate means no fresh manifest could be obtained; callers fall back
	// to the cached copy.
	ErrNoUpdate = errors.New("manifest update unavailable")

	// ErrManifestMissing means neither a fresh manifest nor a cached copy exists.
	ErrManifestMissing = errors.New("manifest file doesn't exist, connect to the internet to download it automatically")

	// ErrDuplicateIdentifier means the same identifier appears on two lines.
	ErrDuplicateIdentifier = errors.New("duplicate manifest identifier")
)
