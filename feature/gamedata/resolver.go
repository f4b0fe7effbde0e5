package gamedata

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// Root is a resolved installation directory and the locator that found it.
type Root struct {
	Path string `json:"path"`
	Via  string `json:"via"`
}

// ViaFallback marks a root that no locator confirmed.
const ViaFallback = "current-directory"

// Locator finds the game installation one way.
// A miss returns an error wrapping ErrNotFound or ErrUnsupported.
type Locator interface {
	Name() string
	Locate(ctx context.Context) (string, error)
}

// Resolver tries locators in order and falls back to the working directory.
type Resolver struct {
	locators []Locator
	getwd    func() (string, error)
	logger   *zap.Logger
}

// NewResolver creates a resolver over locators, tried in the given order.
func NewResolver(logger *zap.Logger, locators ...Locator) *Resolver {
	return &Resolver{
		locators: locators,
		getwd:    os.Getwd,
		logger:   logger,
	}
}

// DefaultLocators returns the configured path, registry and Steam locators.
func DefaultLocators(cfg Config, fsys afero.Fs) []Locator {
	return []Locator{
		NewConfigLocator(fsys, cfg.InstallPath),
		NewRegistryLocator(fsys, cfg.RegistryKey, cfg.RegistryValue, cfg.Executable),
		NewSteamLocator(fsys, cfg.SteamAppID, cfg.SteamSubdir),
	}
}

// Resolve returns the first root found. An invalid configured path and a
// failure to read the working directory for the fallback are errors.
func (r *Resolver) Resolve(ctx context.Context) (Root, error) {
	for _, l := range r.locators {
		if err := ctx.Err(); err != nil {
			return Root{}, err
		}

		path, err := l.Locate(ctx)
		if err == nil {
			r.logger.Debug("Install root located", zap.String("via", l.Name()), zap.String("path", path))
			return Root{Path: path, Via: l.Name()}, nil
		}

		if errors.Is(err, ErrInvalidInstallPath) {
			return Root{}, err
		}
		if errors.Is(err, ErrNotFound) || errors.Is(err, ErrUnsupported) {
			r.logger.Debug("Locator miss", zap.String("via", l.Name()), zap.Error(err))
		} else {
			r.logger.Warn("Locator failed", zap.String("via", l.Name()), zap.Error(err))
		}
	}

	wd, err := r.getwd()
	if err != nil {
		return Root{}, fmt.Errorf("failed to get working directory: %w", err)
	}
	r.logger.Warn("COM3D2 installation directory is not set or is set improperly in the registry. Will use current directory",
		zap.String("path", wd))

	return Root{Path: wd, Via: ViaFallback}, nil
}

// ConfigLocator returns an explicitly configured install path.
type ConfigLocator struct {
	fs   afero.Fs
	path string
}

// NewConfigLocator creates a locator for path; an empty path always misses.
func NewConfigLocator(fsys afero.Fs, path string) *ConfigLocator {
	return &ConfigLocator{fs: fsys, path: path}
}

func (l *ConfigLocator) Name() string { return "config" }

func (l *ConfigLocator) Locate(context.Context) (string, error) {
	if l.path == "" {
		return "", fmt.Errorf("%w: no install path configured", ErrNotFound)
	}
	ok, err := afero.DirExists(l.fs, l.path)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrInvalidInstallPath, l.path, err)
	}
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrInvalidInstallPath, l.path)
	}
	return l.path, nil
}
