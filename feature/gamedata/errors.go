package gamedata

import "errors"

var (
	// ErrDataDirMissing means a configured data directory is absent under the install root.
	ErrDataDirMissing = errors.New("game data directory not found")

	// ErrNotFound means a locator could not find the installation.
	ErrNotFound = errors.New("installation not found")

	// ErrInvalidInstallPath means an explicitly configured install path is
	// unusable. Resolution stops instead of trying other locators.
	ErrInvalidInstallPath = errors.New("configured install path is not a directory")

	// ErrUnsupported means a locator does not work on this platform.
	ErrUnsupported = errors.New("locator not supported on this platform")
)
