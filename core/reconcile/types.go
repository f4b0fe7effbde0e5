package reconcile

// Result is the partition of a catalog's display names.
// Both slices are deduplicated and sorted in ascending byte order.
type Result struct {
	// Installed holds display names with at least one identifier present locally.
	Installed []string `json:"installed"`

	// NotInstalled holds every other display name of the catalog.
	NotInstalled []string `json:"not_installed"`
}

// Total returns the number of distinct display names covered by the result.
func (r Result) Total() int {
	return len(r.Installed) + len(r.NotInstalled)
}

// EntryStatus is the per-identifier view of a reconciliation.
type EntryStatus struct {
	// ID is the identifier (file name) from the catalog.
	ID string `json:"id"`

	// Name is the display name mapped to ID.
	Name string `json:"name"`

	// Present reports whether ID itself was found in the installed set.
	Present bool `json:"present"`

	// Aliased is set when ID is absent but another identifier with the same
	// display name is present, so Name still counts as installed.
	Aliased bool `json:"aliased,omitempty"`
}
