package gamedata

import (
	"context"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/andygrunwald/vdf"
	"github.com/spf13/afero"
)

// SteamLocator finds the game in any Steam library that has its app manifest.
type SteamLocator struct {
	fs     afero.Fs
	appID  uint32
	subdir string
	roots  func() []string
}

// NewSteamLocator creates a locator for appID. subdir is appended to the
// app's install folder.
func NewSteamLocator(fsys afero.Fs, appID uint32, subdir string) *SteamLocator {
	return &SteamLocator{fs: fsys, appID: appID, subdir: subdir, roots: steamRoots}
}

func (l *SteamLocator) Name() string { return "steam" }

func (l *SteamLocator) Locate(ctx context.Context) (string, error) {
	if l.appID == 0 {
		return "", fmt.Errorf("%w: no steam app id configured", ErrNotFound)
	}

	acf := fmt.Sprintf("appmanifest_%d.acf", l.appID)
	for _, root := range l.roots() {
		if ok, _ := afero.DirExists(l.fs, root); !ok {
			continue
		}

		for _, lib := range l.libraries(root) {
			if err := ctx.Err(); err != nil {
				return "", err
			}

			installDir, err := l.installDir(filepath.Join(lib, "steamapps", acf))
			if err != nil {
				continue
			}

			path := filepath.Join(lib, "steamapps", "common", installDir, l.subdir)
			if ok, _ := afero.DirExists(l.fs, path); ok {
				return path, nil
			}
		}
	}

	return "", fmt.Errorf("%w: steam app %d", ErrNotFound, l.appID)
}

// libraries returns root followed by every library listed in its
// libraryfolders.vdf, without duplicates.
func (l *SteamLocator) libraries(root string) []string {
	libs := []string{root}
	seen := map[string]struct{}{filepath.Clean(root): {}}

	for _, name := range []string{
		filepath.Join(root, "steamapps", "libraryfolders.vdf"),
		filepath.Join(root, "config", "libraryfolders.vdf"),
	} {
		doc, err := l.parseVDF(name)
		if err != nil {
			continue
		}
		for _, p := range libraryPaths(doc) {
			p = filepath.Clean(p)
			if _, dup := seen[p]; dup {
				continue
			}
			seen[p] = struct{}{}
			libs = append(libs, p)
		}
	}

	return libs
}

func (l *SteamLocator) installDir(acfPath string) (string, error) {
	doc, err := l.parseVDF(acfPath)
	if err != nil {
		return "", err
	}

	state, ok := lookupFold(doc, "AppState").(map[string]interface{})
	if !ok {
		return "", fmt.Errorf("%s has no AppState block", acfPath)
	}
	dir, ok := lookupFold(state, "installdir").(string)
	if !ok || dir == "" {
		return "", fmt.Errorf("%s has no installdir", acfPath)
	}

	return unescapePath(dir), nil
}

func (l *SteamLocator) parseVDF(path string) (map[string]interface{}, error) {
	f, err := l.fs.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return vdf.NewParser(f).Parse()
}

// libraryPaths handles both the current format, where each numbered entry is
// a block with a "path" key, and the legacy one, where it is the path itself.
func libraryPaths(doc map[string]interface{}) []string {
	folders, ok := lookupFold(doc, "libraryfolders").(map[string]interface{})
	if !ok {
		return nil
	}

	keys := make([]string, 0, len(folders))
	for k := range folders {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var paths []string
	for _, k := range keys {
		switch v := folders[k].(type) {
		case string:
			if isIndex(k) && v != "" {
				paths = append(paths, unescapePath(v))
			}
		case map[string]interface{}:
			if p, ok := lookupFold(v, "path").(string); ok && p != "" {
				paths = append(paths, unescapePath(p))
			}
		}
	}

	return paths
}

func lookupFold(m map[string]interface{}, key string) interface{} {
	if v, ok := m[key]; ok {
		return v
	}
	for k, v := range m {
		if strings.EqualFold(k, key) {
			return v
		}
	}
	return nil
}

func isIndex(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func unescapePath(p string) string {
	return strings.ReplaceAll(p, `\\`, `\`)
}
