package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "https://raw.githubusercontent.com/krypto5863/COM3D2_DLC_Checker/master/COM_NewListDLC.lst", cfg.Manifest.URL)
	assert.Equal(t, "COM_NewListDLC.lst", cfg.Manifest.CachePath)
	assert.Equal(t, 10, cfg.Manifest.TimeoutSeconds)
	assert.Equal(t, []string{"GameData", "GameData_20"}, cfg.Game.DataDirs)
	assert.Equal(t, uint32(1097580), cfg.Game.SteamAppID)
	assert.True(t, cfg.Console.WaitOnExit)
	assert.False(t, cfg.Storage.Enabled)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("MANIFEST_TIMEOUT_SECONDS", "3")
	t.Setenv("GAME_INSTALL_PATH", "/games/com3d2")
	t.Setenv("CONSOLE_WAIT_ON_EXIT", "false")

	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, 3, cfg.Manifest.TimeoutSeconds)
	assert.Equal(t, "/games/com3d2", cfg.Game.InstallPath)
	assert.False(t, cfg.Console.WaitOnExit)
}

func TestLoadConfig_DotEnv(t *testing.T) {
	dir := t.TempDir()
	content := "STORAGE_ENABLED=true\nSTORAGE_BUCKET=mirror\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte(content), 0o644))
	t.Cleanup(func() {
		os.Unsetenv("STORAGE_ENABLED")
		os.Unsetenv("STORAGE_BUCKET")
	})

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)

	assert.True(t, cfg.Storage.Enabled)
	assert.Equal(t, "mirror", cfg.Storage.Bucket)
}

func validConfig(t *testing.T) *Config {
	t.Helper()
	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)
	return cfg
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{"Defaults", func(c *Config) {}, ""},
		{"ColorNever", func(c *Config) { c.Console.Color = "never" }, ""},
		{"BadColor", func(c *Config) { c.Console.Color = "rainbow" }, "console.color"},
		{"BadLogFormat", func(c *Config) { c.Log.Format = "xml" }, "log.format"},
		{"EmptyURL", func(c *Config) { c.Manifest.URL = " " }, "manifest.url"},
		{"EmptyCachePath", func(c *Config) { c.Manifest.CachePath = "" }, "manifest.cache_path"},
		{"ZeroTimeout", func(c *Config) { c.Manifest.TimeoutSeconds = 0 }, "manifest.timeout_seconds"},
		{"NoDataDirs", func(c *Config) { c.Game.DataDirs = nil }, "game.data_dirs"},
		{"BlankDataDir", func(c *Config) { c.Game.DataDirs = []string{"GameData", ""} }, "empty entries"},
		{"MirrorWithoutBucket", func(c *Config) {
			c.Storage.Enabled = true
			c.Storage.Bucket = ""
		}, "storage.bucket"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig(t)
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestConfig_ValidateReportsEveryProblem(t *testing.T) {
	cfg := validConfig(t)
	cfg.Console.Color = "rainbow"
	cfg.Manifest.TimeoutSeconds = -1

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "console.color")
	assert.Contains(t, err.Error(), "manifest.timeout_seconds")
}

func TestLoadConfig_RejectsInvalidEnv(t *testing.T) {
	t.Setenv("CONSOLE_COLOR", "sometimes")

	_, err := LoadConfig(t.TempDir())
	assert.ErrorContains(t, err, "console.color")
}
