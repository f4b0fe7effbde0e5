// Package logger provides a structured logging facility based on Zap.
//
// The console encoder with colored levels is the default because the checker
// is usually run by hand from a terminal. The json encoder suits the serve
// command when its output is collected.
//
// # Configuration
//
//   - Level: debug, info, warn, error
//   - Format: console or json
//
// # Usage
//
//	log, _ := logger.New(&logger.Config{Level: "info", Format: "console"})
//	log.Info("Manifest loaded", zap.Int("entries", n))
//
//	// In a request handler:
//	l := logger.WithRayID(log, c)
//	l.Error("Handler failed", zap.Error(err))
package logger
