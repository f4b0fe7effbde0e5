// Package dlc ties the manifest, install discovery, scanning and
// reconciliation together.
//
// Service.Check produces a Report: the sorted installed and not installed
// display names plus where the manifest and install root came from. The
// serve command exposes the same report over HTTP.
//
// # HTTP Endpoints
//
//   - GET /dlc : report (memoised for server.report_ttl_seconds)
//   - GET /dlc/manifest : parsed manifest entries
//   - POST /dlc/refresh : drop the memoised report
//
// A missing manifest answers 503 so callers can tell it apart from a scan
// failure (500).
package dlc
