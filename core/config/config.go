package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"dlc-checker/core/logger"
	"dlc-checker/core/server"
	"dlc-checker/core/storage"
	"dlc-checker/feature/gamedata"
	"dlc-checker/feature/manifest"
	"dlc-checker/feature/report"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
// It is divided into partial configurations for better modularity.
type Config struct {
	// Manifest holds the DLC catalog source settings.
	Manifest manifest.Config `mapstructure:"manifest"`
	// Game holds install root discovery and data directory settings.
	Game gamedata.Config `mapstructure:"game"`
	// Console holds terminal output settings.
	Console report.Config `mapstructure:"console"`
	// Storage holds configuration for the optional manifest mirror bucket.
	Storage storage.Config `mapstructure:"storage"`
	// Server holds configuration for the HTTP server.
	Server server.Config `mapstructure:"server"`
	// Log holds configuration for the logger.
	Log logger.Config `mapstructure:"log"`
}

// LoadConfig loads configuration from environment variables and .env file.
func LoadConfig(path string) (*Config, error) {
	envPath := path + "/.env"
	if path == "." {
		envPath = ".env"
	}

	// Missing .env is the normal case for end users.
	_ = godotenv.Overload(envPath)

	v := viper.New()

	bindValues(v, Config{}, "")

	// MANIFEST_URL -> manifest.url
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

// Validate rejects settings the commands cannot act on. Every problem is
// reported, not just the first.
func (c *Config) Validate() error {
	var errs []error

	switch c.Console.Color {
	case report.ColorAuto, report.ColorAlways, report.ColorNever:
	default:
		errs = append(errs, fmt.Errorf("console.color must be auto, always or never, got %q", c.Console.Color))
	}

	switch c.Log.Format {
	case "console", "json":
	default:
		errs = append(errs, fmt.Errorf("log.format must be console or json, got %q", c.Log.Format))
	}

	if strings.TrimSpace(c.Manifest.URL) == "" {
		errs = append(errs, errors.New("manifest.url must not be empty"))
	}
	if strings.TrimSpace(c.Manifest.CachePath) == "" {
		errs = append(errs, errors.New("manifest.cache_path must not be empty"))
	}
	if c.Manifest.TimeoutSeconds <= 0 {
		errs = append(errs, fmt.Errorf("manifest.timeout_seconds must be positive, got %d", c.Manifest.TimeoutSeconds))
	}

	if len(c.Game.DataDirs) == 0 {
		errs = append(errs, errors.New("game.data_dirs must list at least one directory"))
	}
	for _, dir := range c.Game.DataDirs {
		if strings.TrimSpace(dir) == "" {
			errs = append(errs, errors.New("game.data_dirs must not contain empty entries"))
			break
		}
	}

	if c.Storage.Enabled && c.Storage.Bucket == "" {
		errs = append(errs, errors.New("storage.bucket is required when storage.enabled is set"))
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid configuration: %w", errors.Join(errs...))
	}
	return nil
}

// bindValues uses reflection to iterate over the struct and set default values in Viper
// based on the 'default' and 'mapstructure' tags.
func bindValues(v *viper.Viper, iface any, prefix string) {
	t := reflect.TypeOf(iface)

	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag := field.Tag.Get("mapstructure")
		if tag == "" {
			continue
		}

		key := tag
		if prefix != "" {
			key = prefix + "." + tag
		}

		if field.Type.Kind() == reflect.Struct {
			bindValues(v, reflect.New(field.Type).Elem().Interface(), key)
			continue
		}

		// Always set default (even if empty) to register the key for AutomaticEnv
		v.SetDefault(key, field.Tag.Get("default"))
	}
}
