package gamedata

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
)

// InstalledSet holds file names found in the data directories.
type InstalledSet map[string]struct{}

// Has reports whether name was found.
func (s InstalledSet) Has(name string) bool {
	_, ok := s[name]
	return ok
}

// Scanner lists installed archives under an install root.
type Scanner struct {
	fs   afero.Fs
	dirs []string
}

// NewScanner creates a scanner for the given data directories.
func NewScanner(fsys afero.Fs, dirs []string) *Scanner {
	return &Scanner{fs: fsys, dirs: dirs}
}

// Scan returns the names of regular files directly inside each data
// directory under root. Subdirectories are not descended into. A missing data
// directory is an error: treating it as empty would report every DLC missing.
func (s *Scanner) Scan(root string) (InstalledSet, error) {
	set := make(InstalledSet)

	for _, dir := range s.dirs {
		path := filepath.Join(root, dir)

		info, err := s.fs.Stat(path)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) || os.IsNotExist(err) {
				return nil, fmt.Errorf("%w: %s", ErrDataDirMissing, path)
			}
			return nil, fmt.Errorf("failed to stat %s: %w", path, err)
		}
		if !info.IsDir() {
			return nil, fmt.Errorf("%w: %s is not a directory", ErrDataDirMissing, path)
		}

		entries, err := afero.ReadDir(s.fs, path)
		if err != nil {
			return nil, fmt.Errorf("failed to list %s: %w", path, err)
		}
		for _, entry := range entries {
			if entry.IsDir() {
				continue
			}
			set[entry.Name()] = struct{}{}
		}
	}

	return set, nil
}
