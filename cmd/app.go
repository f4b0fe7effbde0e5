package cmd

import (
	"fmt"
	"time"

	"dlc-checker/core/config"
	"dlc-checker/core/logger"
	"dlc-checker/core/storage"
	"dlc-checker/feature/dlc"
	"dlc-checker/feature/gamedata"
	"dlc-checker/feature/manifest"

	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// app holds the dependencies shared by commands.
type app struct {
	cfg    *config.Config
	log    *zap.Logger
	fs     afero.Fs
	source *manifest.Source
	mirror *manifest.Mirror
}

func newApp() (*app, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	applyFlags(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	fs := afero.NewOsFs()
	timeout := time.Duration(cfg.Manifest.TimeoutSeconds) * time.Second

	a := &app{cfg: cfg, log: logg, fs: fs}
	a.source = manifest.NewSource(
		manifest.NewHTTPFetcher(cfg.Manifest.URL, timeout),
		manifest.NewCache(fs, cfg.Manifest.CachePath),
		logg,
	)

	if cfg.Storage.Enabled {
		client, err := storage.NewClient(cfg.Storage)
		if err != nil {
			// The mirror is optional; the remote and cache still work.
			logg.Warn("Manifest mirror disabled", zap.Error(err))
		} else {
			a.mirror = manifest.NewMirror(client, cfg.Storage.Bucket, cfg.Manifest.MirrorObject)
			a.source.WithMirror(a.mirror)
		}
	}

	return a, nil
}

func applyFlags(cfg *config.Config) {
	if logLevelFlag != "" {
		cfg.Log.Level = logLevelFlag
	}
	if installPathFlag != "" {
		cfg.Game.InstallPath = installPathFlag
	}
	if colorFlag != "" {
		cfg.Console.Color = colorFlag
	}
	if noWaitFlag {
		cfg.Console.WaitOnExit = false
	}
}

func (a *app) service() *dlc.Service {
	resolver := gamedata.NewResolver(a.log, gamedata.DefaultLocators(a.cfg.Game, a.fs)...)
	scanner := gamedata.NewScanner(a.fs, a.cfg.Game.DataDirs)
	return dlc.NewService(a.source, resolver, scanner, a.log)
}
