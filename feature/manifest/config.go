package manifest

// Config holds the DLC catalog source settings.
type Config struct {
	// URL is where the latest manifest is published.
	URL string `mapstructure:"url" default:"https://raw.githubusercontent.com/krypto5863/COM3D2_DLC_Checker/master/COM_NewListDLC.lst"`
	// CachePath is the local copy used when offline. Relative paths resolve
	// against the working directory.
	CachePath string `mapstructure:"cache_path" default:"COM_NewListDLC.lst"`
	// TimeoutSeconds bounds the whole HTTP fetch.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"10"`
	// MirrorObject is the object name of the manifest in the mirror bucket.
	MirrorObject string `mapstructure:"mirror_object" default:"COM_NewListDLC.lst"`
}
