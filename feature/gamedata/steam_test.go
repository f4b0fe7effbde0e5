package gamedata

import (
	"context"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const libraryFoldersVDF = `"libraryfolders"
{
	"0"
	{
		"path"		"/home/maid/.local/share/Steam"
		"label"		""
		"apps"
		{
			"228980"		"1234"
		}
	}
	"1"
	{
		"path"		"/mnt/games/SteamLibrary"
		"label"		""
		"apps"
		{
			"1097580"		"5678"
		}
	}
}
`

const legacyLibraryFoldersVDF = `"LibraryFolders"
{
	"TimeNextStatsReport"		"1561832478"
	"ContentStatsID"		"-158337411110787451"
	"1"		"/mnt/old/SteamLibrary"
}
`

const appManifestACF = `"AppState"
{
	"appid"		"1097580"
	"name"		"CUSTOM ORDER MAID 3D2 It's a Night Magic"
	"installdir"		"COM3D2InM"
}
`

func newSteamFs(t *testing.T) afero.Fs {
	t.Helper()
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/home/maid/.local/share/Steam/steamapps/libraryfolders.vdf", []byte(libraryFoldersVDF), 0o644))
	require.NoError(t, afero.WriteFile(fs, "/mnt/games/SteamLibrary/steamapps/appmanifest_1097580.acf", []byte(appManifestACF), 0o644))
	require.NoError(t, fs.MkdirAll("/mnt/games/SteamLibrary/steamapps/common/COM3D2InM/com3d2inm", 0o755))
	return fs
}

func TestSteamLocator_Locate(t *testing.T) {
	t.Run("SecondaryLibrary", func(t *testing.T) {
		l := NewSteamLocator(newSteamFs(t), 1097580, "com3d2inm")
		l.roots = func() []string { return []string{"/home/maid/.local/share/Steam"} }

		p, err := l.Locate(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "/mnt/games/SteamLibrary/steamapps/common/COM3D2InM/com3d2inm", p)
	})

	t.Run("LegacyLibraryFormat", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		require.NoError(t, afero.WriteFile(fs, "/steam/steamapps/libraryfolders.vdf", []byte(legacyLibraryFoldersVDF), 0o644))
		require.NoError(t, afero.WriteFile(fs, "/mnt/old/SteamLibrary/steamapps/appmanifest_1097580.acf", []byte(appManifestACF), 0o644))
		require.NoError(t, fs.MkdirAll("/mnt/old/SteamLibrary/steamapps/common/COM3D2InM/com3d2inm", 0o755))

		l := NewSteamLocator(fs, 1097580, "com3d2inm")
		l.roots = func() []string { return []string{"/steam"} }

		p, err := l.Locate(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "/mnt/old/SteamLibrary/steamapps/common/COM3D2InM/com3d2inm", p)
	})

	t.Run("AppNotInstalled", func(t *testing.T) {
		l := NewSteamLocator(newSteamFs(t), 999, "com3d2inm")
		l.roots = func() []string { return []string{"/home/maid/.local/share/Steam"} }

		_, err := l.Locate(context.Background())
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("NoSteam", func(t *testing.T) {
		l := NewSteamLocator(afero.NewMemMapFs(), 1097580, "com3d2inm")
		l.roots = func() []string { return []string{"/nowhere"} }

		_, err := l.Locate(context.Background())
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("SubdirMissing", func(t *testing.T) {
		fs := newSteamFs(t)
		l := NewSteamLocator(fs, 1097580, "other")
		l.roots = func() []string { return []string{"/home/maid/.local/share/Steam"} }

		_, err := l.Locate(context.Background())
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("NoAppID", func(t *testing.T) {
		_, err := NewSteamLocator(afero.NewMemMapFs(), 0, "").Locate(context.Background())
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestLibraryPaths(t *testing.T) {
	doc := map[string]interface{}{
		"libraryfolders": map[string]interface{}{
			"1":              map[string]interface{}{"path": `D:\\SteamLibrary`},
			"0":              map[string]interface{}{"path": `C:\Program Files (x86)\Steam`},
			"contentstatsid": "123",
		},
	}

	assert.Equal(t, []string{`C:\Program Files (x86)\Steam`, `D:\SteamLibrary`}, libraryPaths(doc))
	assert.Nil(t, libraryPaths(map[string]interface{}{}))
}
