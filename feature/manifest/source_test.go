package manifest

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubFetcher struct {
	data  []byte
	err   error
	calls int
}

func (s *stubFetcher) Fetch(context.Context) ([]byte, error) {
	s.calls++
	return s.data, s.err
}

func offline() *stubFetcher {
	return &stubFetcher{err: fmt.Errorf("%w: simulated timeout", ErrNoUpdate)}
}

func TestSource_Load(t *testing.T) {
	t.Run("RemoteSuccessRefreshesCache", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		cache := NewCache(fs, "m.lst")
		require.NoError(t, cache.Write([]byte("old")))
		remote := &stubFetcher{data: []byte(sampleManifest)}

		content, err := NewSource(remote, cache, zap.NewNop()).Load(context.Background())
		require.NoError(t, err)

		assert.Equal(t, OriginRemote, content.Origin)
		assert.True(t, content.Updated())
		assert.NoError(t, content.FetchErr)
		cached, _ := cache.Read()
		assert.Equal(t, sampleManifest, string(cached))
	})

	t.Run("OfflineFallsBackToCache", func(t *testing.T) {
		cache := NewCache(afero.NewMemMapFs(), "m.lst")
		require.NoError(t, cache.Write([]byte(sampleManifest)))

		content, err := NewSource(offline(), cache, zap.NewNop()).Load(context.Background())
		require.NoError(t, err)

		assert.Equal(t, OriginCache, content.Origin)
		assert.False(t, content.Updated())
		assert.ErrorIs(t, content.FetchErr, ErrNoUpdate)

		m, err := ParseBytes(content.Data)
		require.NoError(t, err)
		assert.Equal(t, 2, m.Len())
	})

	t.Run("OfflineWithoutCache", func(t *testing.T) {
		cache := NewCache(afero.NewMemMapFs(), "m.lst")

		_, err := NewSource(offline(), cache, zap.NewNop()).Load(context.Background())
		assert.ErrorIs(t, err, ErrManifestMissing)
		assert.ErrorIs(t, err, ErrNoUpdate)
		assert.ErrorContains(t, err, "simulated timeout")
	})

	t.Run("FailedFetchKeepsCache", func(t *testing.T) {
		cache := NewCache(afero.NewMemMapFs(), "m.lst")
		require.NoError(t, cache.Write([]byte("kept")))

		_, err := NewSource(offline(), cache, zap.NewNop()).Load(context.Background())
		require.NoError(t, err)

		cached, _ := cache.Read()
		assert.Equal(t, "kept", string(cached))
	})

	t.Run("MirrorUsedWhenRemoteFails", func(t *testing.T) {
		cache := NewCache(afero.NewMemMapFs(), "m.lst")
		mirror := &stubFetcher{data: []byte(sampleManifest)}

		content, err := NewSource(offline(), cache, zap.NewNop()).WithMirror(mirror).Load(context.Background())
		require.NoError(t, err)

		assert.Equal(t, OriginMirror, content.Origin)
		assert.ErrorIs(t, content.FetchErr, ErrNoUpdate)
		cached, _ := cache.Read()
		assert.Equal(t, sampleManifest, string(cached))
	})

	t.Run("MirrorSkippedWhenRemoteSucceeds", func(t *testing.T) {
		cache := NewCache(afero.NewMemMapFs(), "m.lst")
		mirror := &stubFetcher{data: []byte("mirror")}

		_, err := NewSource(&stubFetcher{data: []byte("remote")}, cache, zap.NewNop()).WithMirror(mirror).Load(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 0, mirror.calls)
	})

	t.Run("SingleAttemptPerUpstream", func(t *testing.T) {
		remote := offline()
		mirror := offline()
		cache := NewCache(afero.NewMemMapFs(), "m.lst")

		_, _ = NewSource(remote, cache, zap.NewNop()).WithMirror(mirror).Load(context.Background())
		assert.Equal(t, 1, remote.calls)
		assert.Equal(t, 1, mirror.calls)
	})

	t.Run("CacheWriteFailureIsNotFatal", func(t *testing.T) {
		cache := NewCache(afero.NewReadOnlyFs(afero.NewMemMapFs()), "m.lst")

		content, err := NewSource(&stubFetcher{data: []byte(sampleManifest)}, cache, zap.NewNop()).Load(context.Background())
		require.NoError(t, err)
		assert.Equal(t, OriginRemote, content.Origin)
	})
}

func TestSource_Update(t *testing.T) {
	t.Run("AllUpstreamsFail", func(t *testing.T) {
		cache := NewCache(afero.NewMemMapFs(), "m.lst")
		_, err := NewSource(offline(), cache, zap.NewNop()).Update(context.Background())
		assert.ErrorIs(t, err, ErrNoUpdate)
	})

	t.Run("ForeignErrorStillWrapsNoUpdate", func(t *testing.T) {
		cache := NewCache(afero.NewMemMapFs(), "m.lst")
		_, err := NewSource(&stubFetcher{err: errors.New("plain")}, cache, zap.NewNop()).Update(context.Background())
		assert.ErrorIs(t, err, ErrNoUpdate)
	})
}
