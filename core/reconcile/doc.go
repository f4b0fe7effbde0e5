// Package reconcile compares the DLC catalog against what is installed.
//
// The engine is a pure function over two in-memory indices: the catalog,
// mapping identifier (file name) to display name, and the set of identifiers
// found in the game's data directories. It returns two sorted, duplicate-free
// lists of display names: installed and not installed.
//
// # Aliasing
//
// Several identifiers may share one display name (a DLC shipped as more than
// one archive). The partition is decided per display name, so a name is
// installed as soon as any of its identifiers is present. Details exposes the
// per-identifier view and flags such names as Aliased.
//
// # Cache
//
// Cache memoises an expensive value (a full report in serve mode) for a TTL,
// with singleflight protection so concurrent misses build it once.
package reconcile
