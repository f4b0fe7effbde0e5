// Package config provides configuration management for the DLC checker.
//
// It uses Viper to read environment variables, optionally seeded from a .env
// file in the working directory. Defaults are declared next to each setting
// with a `default` struct tag.
//
// # Configuration Structure
//
//   - Manifest: catalog URL, cache file path and fetch timeout
//   - Game: install path override, registry and Steam lookup parameters, data directories
//   - Console: color and wait-on-exit behavior
//   - Storage: optional S3/MinIO mirror of the manifest
//   - Server: HTTP API settings for the serve command
//   - Log: logging level and format
//
// Environment variables map onto nested keys by replacing dots with
// underscores, so MANIFEST_TIMEOUT_SECONDS sets manifest.timeout_seconds.
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    return err
//	}
//	fmt.Println(cfg.Manifest.URL)
package config
