package gamedata

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"
)

// RegistryLocator reads the install path the game installer writes to the
// current user's registry hive.
type RegistryLocator struct {
	fs         afero.Fs
	key        string
	value      string
	executable string
	read       func(key, value string) (string, error)
}

// NewRegistryLocator creates a locator for key\value. The directory it names
// must contain executable.
func NewRegistryLocator(fsys afero.Fs, key, value, executable string) *RegistryLocator {
	return &RegistryLocator{
		fs:         fsys,
		key:        key,
		value:      value,
		executable: executable,
		read:       readUserRegistryString,
	}
}

func (l *RegistryLocator) Name() string { return "registry" }

func (l *RegistryLocator) Locate(context.Context) (string, error) {
	path, err := l.read(l.key, l.value)
	if err != nil {
		return "", err
	}
	if path == "" {
		return "", fmt.Errorf("%w: registry value %s is empty", ErrNotFound, l.value)
	}

	if ok, _ := afero.DirExists(l.fs, path); !ok {
		return "", fmt.Errorf("%w: registry path %s does not exist", ErrNotFound, path)
	}
	if l.executable != "" {
		if ok, _ := afero.Exists(l.fs, filepath.Join(path, l.executable)); !ok {
			return "", fmt.Errorf("%w: %s not found in %s", ErrNotFound, l.executable, path)
		}
	}

	return path, nil
}
