// Package manifest obtains and parses the DLC catalog.
//
// # Sources
//
// Source tries each upstream once, in order: the published URL over HTTP
// (HTTPFetcher, gzip/deflate aware) and, when configured, a copy in an object
// storage bucket (Mirror). The first success overwrites the local Cache. If
// every upstream fails the cached copy is used; if there is no cached copy
// Load returns ErrManifestMissing.
//
// # Format
//
//	<version header>
//	<identifier>,<display name>
//	...
//
// The identifier is the archive file name looked up in the game's data
// directories. The display name is everything after the first comma.
package manifest
