package server

// Config holds configuration for the HTTP server.
type Config struct {
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"8080"`
	// ApiKey is the secret key required to access the API. Empty disables auth.
	ApiKey string `mapstructure:"api_key" default:""`
	// ReportTTLSeconds is how long a computed report is served before rescanning.
	ReportTTLSeconds int `mapstructure:"report_ttl_seconds" default:"60"`
}

// HasAuth reports whether requests must carry an API key.
func (c Config) HasAuth() bool {
	return c.ApiKey != ""
}
