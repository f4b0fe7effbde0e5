//go:build !windows

package gamedata

import (
	"os"
	"path/filepath"
	"runtime"
)

func readUserRegistryString(key, value string) (string, error) {
	return "", ErrUnsupported
}

func steamRoots() []string {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil
	}
	if runtime.GOOS == "darwin" {
		return []string{filepath.Join(home, "Library", "Application Support", "Steam")}
	}
	return []string{
		filepath.Join(home, ".local", "share", "Steam"),
		filepath.Join(home, ".steam", "steam"),
		filepath.Join(home, ".var", "app", "com.valvesoftware.Steam", "data", "Steam"),
	}
}
