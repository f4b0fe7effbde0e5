package gamedata

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type stubLocator struct {
	name  string
	path  string
	err   error
	calls int
}

func (s *stubLocator) Name() string { return s.name }

func (s *stubLocator) Locate(context.Context) (string, error) {
	s.calls++
	return s.path, s.err
}

func TestResolver_Resolve(t *testing.T) {
	t.Run("FirstSuccessWins", func(t *testing.T) {
		a := &stubLocator{name: "registry", err: fmt.Errorf("%w: nope", ErrNotFound)}
		b := &stubLocator{name: "steam", path: "/steam/com3d2inm"}
		c := &stubLocator{name: "never", path: "/other"}

		root, err := NewResolver(zap.NewNop(), a, b, c).Resolve(context.Background())
		require.NoError(t, err)

		assert.Equal(t, Root{Path: "/steam/com3d2inm", Via: "steam"}, root)
		assert.Equal(t, 1, a.calls)
		assert.Equal(t, 0, c.calls)
	})

	t.Run("FallsBackToWorkingDirectory", func(t *testing.T) {
		core, logs := observer.New(zapcore.WarnLevel)
		r := NewResolver(zap.New(core),
			&stubLocator{name: "registry", err: ErrUnsupported},
			&stubLocator{name: "steam", err: errors.New("broken vdf")},
		)
		r.getwd = func() (string, error) { return "/cwd", nil }

		root, err := r.Resolve(context.Background())
		require.NoError(t, err)

		assert.Equal(t, Root{Path: "/cwd", Via: ViaFallback}, root)
		require.Equal(t, 2, logs.Len())
		assert.Equal(t, "Locator failed", logs.All()[0].Message)
		assert.Contains(t, logs.All()[1].Message, "Will use current directory")
	})

	t.Run("InvalidConfiguredPathStops", func(t *testing.T) {
		steam := &stubLocator{name: "steam", path: "/steam/com3d2inm"}
		r := NewResolver(zap.NewNop(), NewConfigLocator(afero.NewMemMapFs(), "/typo/path"), steam)
		r.getwd = func() (string, error) { return "/cwd", nil }

		root, err := r.Resolve(context.Background())
		assert.ErrorIs(t, err, ErrInvalidInstallPath)
		assert.ErrorContains(t, err, "/typo/path")
		assert.Equal(t, Root{}, root)
		assert.Equal(t, 0, steam.calls)
	})

	t.Run("GetwdError", func(t *testing.T) {
		r := NewResolver(zap.NewNop())
		r.getwd = func() (string, error) { return "", errors.New("gone") }

		_, err := r.Resolve(context.Background())
		assert.ErrorContains(t, err, "gone")
	})

	t.Run("CanceledContext", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		l := &stubLocator{name: "config", path: "/x"}

		_, err := NewResolver(zap.NewNop(), l).Resolve(ctx)
		assert.ErrorIs(t, err, context.Canceled)
		assert.Equal(t, 0, l.calls)
	})
}

func TestConfigLocator(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll("/games/com3d2", 0o755))

	t.Run("Empty", func(t *testing.T) {
		_, err := NewConfigLocator(fs, "").Locate(context.Background())
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("Exists", func(t *testing.T) {
		p, err := NewConfigLocator(fs, "/games/com3d2").Locate(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "/games/com3d2", p)
	})

	t.Run("NotADirectory", func(t *testing.T) {
		require.NoError(t, afero.WriteFile(fs, "/games/file.txt", []byte("x"), 0o644))
		_, err := NewConfigLocator(fs, "/games/file.txt").Locate(context.Background())
		assert.ErrorIs(t, err, ErrInvalidInstallPath)
	})

	t.Run("Missing", func(t *testing.T) {
		_, err := NewConfigLocator(fs, "/nowhere").Locate(context.Background())
		assert.ErrorIs(t, err, ErrInvalidInstallPath)
		assert.NotErrorIs(t, err, ErrNotFound)
	})
}

func TestRegistryLocator(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/kiss/COM3D2/COM3D2x64.exe", []byte("MZ"), 0o755))
	require.NoError(t, fs.MkdirAll("/kiss/empty", 0o755))

	newLocator := func(path string, err error) *RegistryLocator {
		l := NewRegistryLocator(fs, `SOFTWARE\KISS\カスタムオーダーメイド3D2`, "InstallPath", "COM3D2x64.exe")
		l.read = func(key, value string) (string, error) {
			assert.Equal(t, "InstallPath", value)
			return path, err
		}
		return l
	}

	t.Run("Valid", func(t *testing.T) {
		p, err := newLocator("/kiss/COM3D2", nil).Locate(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "/kiss/COM3D2", p)
	})

	t.Run("MissingExecutable", func(t *testing.T) {
		_, err := newLocator("/kiss/empty", nil).Locate(context.Background())
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("MissingDirectory", func(t *testing.T) {
		_, err := newLocator("/kiss/gone", nil).Locate(context.Background())
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("EmptyValue", func(t *testing.T) {
		_, err := newLocator("", nil).Locate(context.Background())
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("ReadError", func(t *testing.T) {
		_, err := newLocator("", ErrUnsupported).Locate(context.Background())
		assert.ErrorIs(t, err, ErrUnsupported)
	})
}

func TestDefaultLocators(t *testing.T) {
	locators := DefaultLocators(Config{}, afero.NewMemMapFs())
	names := make([]string, 0, len(locators))
	for _, l := range locators {
		names = append(names, l.Name())
	}
	assert.Equal(t, []string{"config", "registry", "steam"}, names)
}
