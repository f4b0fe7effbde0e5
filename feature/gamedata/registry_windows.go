//go:build windows

package gamedata

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/sys/windows/registry"
)

func readUserRegistryString(key, value string) (string, error) {
	k, err := registry.OpenKey(registry.CURRENT_USER, key, registry.QUERY_VALUE)
	if err != nil {
		if errors.Is(err, registry.ErrNotExist) {
			return "", fmt.Errorf("%w: registry key %s", ErrNotFound, key)
		}
		return "", fmt.Errorf("failed to open registry key %s: %w", key, err)
	}
	defer k.Close()

	s, _, err := k.GetStringValue(value)
	if err != nil {
		if errors.Is(err, registry.ErrNotExist) {
			return "", fmt.Errorf("%w: registry value %s\\%s", ErrNotFound, key, value)
		}
		return "", fmt.Errorf("failed to read registry value %s\\%s: %w", key, value, err)
	}

	return s, nil
}

func steamRoots() []string {
	var roots []string
	if p, err := readUserRegistryString(`Software\Valve\Steam`, "SteamPath"); err == nil && p != "" {
		roots = append(roots, filepath.Clean(p))
	}
	if pf := os.Getenv("ProgramFiles(x86)"); pf != "" {
		roots = append(roots, filepath.Join(pf, "Steam"))
	}
	return roots
}
