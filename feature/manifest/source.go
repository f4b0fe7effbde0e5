package manifest

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
)

// Origin names where manifest content came from.
type Origin string

const (
	OriginRemote Origin = "remote"
	OriginMirror Origin = "mirror"
	OriginCache  Origin = "cache"
)

// Content is raw manifest text plus its provenance.
type Content struct {
	Data   []byte
	Origin Origin
	// FetchErr is the reason fresh content was not used, when Origin is not remote.
	FetchErr error
}

// Updated reports whether Data is fresh and has been written to the cache.
func (c *Content) Updated() bool {
	return c.Origin != OriginCache
}

type upstream struct {
	origin  Origin
	fetcher Fetcher
}

// Source yields manifest text: fresh from upstream when reachable, otherwise
// from the local cache. Each upstream is tried exactly once.
type Source struct {
	upstreams []upstream
	cache     *Cache
	logger    *zap.Logger
}

// NewSource creates a source that fetches from remote and falls back to cache.
func NewSource(remote Fetcher, cache *Cache, logger *zap.Logger) *Source {
	return &Source{
		upstreams: []upstream{{origin: OriginRemote, fetcher: remote}},
		cache:     cache,
		logger:    logger,
	}
}

// WithMirror adds a mirror tried after the remote and before the cache.
func (s *Source) WithMirror(mirror Fetcher) *Source {
	s.upstreams = append(s.upstreams, upstream{origin: OriginMirror, fetcher: mirror})
	return s
}

// Cache returns the backing cache.
func (s *Source) Cache() *Cache {
	return s.cache
}

// Update fetches fresh content and stores it in the cache.
// It returns an error wrapping ErrNoUpdate when every upstream failed.
func (s *Source) Update(ctx context.Context) (*Content, error) {
	var errs []error
	for _, u := range s.upstreams {
		data, err := u.fetcher.Fetch(ctx)
		if err != nil {
			s.logger.Debug("Manifest upstream unavailable", zap.String("origin", string(u.origin)), zap.Error(err))
			errs = append(errs, err)
			continue
		}

		if err := s.cache.Write(data); err != nil {
			// The fresh copy is still usable for this run.
			s.logger.Warn("Failed to update manifest cache", zap.String("path", s.cache.Path()), zap.Error(err))
		}

		var fetchErr error
		if len(errs) > 0 {
			fetchErr = errors.Join(errs...)
		}
		return &Content{Data: data, Origin: u.origin, FetchErr: fetchErr}, nil
	}

	if len(errs) == 0 {
		return nil, ErrNoUpdate
	}
	joined := errors.Join(errs...)
	if errors.Is(joined, ErrNoUpdate) {
		return nil, joined
	}
	return nil, fmt.Errorf("%w: %v", ErrNoUpdate, joined)
}

// Load returns fresh content when available and the cached copy otherwise.
// It fails with ErrManifestMissing only when both are unavailable; that error
// also wraps the update failure.
func (s *Source) Load(ctx context.Context) (*Content, error) {
	content, err := s.Update(ctx)
	if err == nil {
		return content, nil
	}

	data, cacheErr := s.cache.Read()
	if cacheErr != nil {
		if errors.Is(cacheErr, ErrManifestMissing) {
			return nil, fmt.Errorf("%w; update failed: %w", cacheErr, err)
		}
		return nil, cacheErr
	}

	return &Content{Data: data, Origin: OriginCache, FetchErr: err}, nil
}
