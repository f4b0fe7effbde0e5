package gamedata

// Config holds install root discovery and data directory settings.
type Config struct {
	// InstallPath overrides discovery when set.
	InstallPath string `mapstructure:"install_path" default:""`
	// DataDirs are scanned, top level only, for installed archives.
	DataDirs []string `mapstructure:"data_dirs" default:"GameData,GameData_20"`
	// RegistryKey is the HKCU key written by the game installer.
	RegistryKey string `mapstructure:"registry_key" default:"SOFTWARE\\KISS\\カスタムオーダーメイド3D2"`
	// RegistryValue holds the install directory under RegistryKey.
	RegistryValue string `mapstructure:"registry_value" default:"InstallPath"`
	// Executable must exist in a registry-provided install directory.
	Executable string `mapstructure:"executable" default:"COM3D2x64.exe"`
	// SteamAppID identifies the Steam release.
	SteamAppID uint32 `mapstructure:"steam_app_id" default:"1097580"`
	// SteamSubdir is the game directory inside the Steam install folder.
	SteamSubdir string `mapstructure:"steam_subdir" default:"com3d2inm"`
}
