package manifest

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
	"github.com/spf13/afero"
)

// Cache is the local manifest copy used when offline.
type Cache struct {
	fs   afero.Fs
	path string
}

// NewCache creates a cache stored at path on fsys.
func NewCache(fsys afero.Fs, path string) *Cache {
	return &Cache{fs: fsys, path: path}
}

// Path returns the cache file location.
func (c *Cache) Path() string {
	return c.path
}

// Read returns the cached manifest, or ErrManifestMissing if there is none.
func (c *Cache) Read() ([]byte, error) {
	data, err := afero.ReadFile(c.fs, c.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) || os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrManifestMissing, c.path)
		}
		return nil, fmt.Errorf("failed to read manifest cache %s: %w", c.path, err)
	}
	return data, nil
}

// Write replaces the cached manifest with data.
// On the OS filesystem writers are serialised with an advisory lock on
// <path>.lock, which is left in place: removing it would let a waiter hold a
// lock on an unlinked file while a newcomer locks a fresh one. Data goes to a
// uniquely named temp file in the same directory and is renamed over path, so
// readers never see a partial file.
func (c *Cache) Write(data []byte) error {
	dir := filepath.Dir(c.path)
	if dir != "." && dir != "" {
		if err := c.fs.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create cache directory: %w", err)
		}
	}

	if _, ok := c.fs.(*afero.OsFs); ok {
		lock := flock.New(c.path + ".lock")
		if err := lock.Lock(); err != nil {
			return fmt.Errorf("failed to lock manifest cache: %w", err)
		}
		defer lock.Unlock()
	}

	tmp, err := afero.TempFile(c.fs, dir, filepath.Base(c.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create manifest cache temp file: %w", err)
	}
	tmpName := tmp.Name()

	_, err = tmp.Write(data)
	if closeErr := tmp.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		_ = c.fs.Remove(tmpName)
		return fmt.Errorf("failed to write manifest cache: %w", err)
	}

	if err := c.fs.Chmod(tmpName, 0o644); err != nil {
		_ = c.fs.Remove(tmpName)
		return fmt.Errorf("failed to set manifest cache mode: %w", err)
	}
	if err := c.fs.Rename(tmpName, c.path); err != nil {
		_ = c.fs.Remove(tmpName)
		return fmt.Errorf("failed to replace manifest cache: %w", err)
	}

	return nil
}
