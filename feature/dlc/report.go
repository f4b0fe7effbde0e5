package dlc

import (
	"time"

	"dlc-checker/core/reconcile"
	"dlc-checker/feature/gamedata"
	"dlc-checker/feature/manifest"
)

// ManifestInfo describes the manifest a report was computed from.
type ManifestInfo struct {
	Origin     manifest.Origin      `json:"origin"`
	Version    string               `json:"version"`
	Entries    int                  `json:"entries"`
	Skipped    []manifest.LineError `json:"skipped,omitempty"`
	FetchError string               `json:"fetch_error,omitempty"`
}

// Report is the outcome of one check.
type Report struct {
	GeneratedAt time.Time     `json:"generated_at"`
	Manifest    ManifestInfo  `json:"manifest"`
	InstallRoot gamedata.Root `json:"install_root"`
	reconcile.Result
	Details []reconcile.EntryStatus `json:"details"`
}
