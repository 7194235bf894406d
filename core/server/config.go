package server

import "time"

// Config holds configuration for the HTTP server.
type Config struct {
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"8080" validate:"required,numeric"`
	// ApiKey is the secret key required to access the API. Empty disables authentication.
	ApiKey string `mapstructure:"api_key" default:""`
	// LoadTimeoutSeconds bounds a locale load triggered through the API.
	LoadTimeoutSeconds int `mapstructure:"load_timeout_seconds" default:"30" validate:"gte=0"`
}

// LoadTimeout returns the load timeout, 30 seconds when unset.
func (c Config) LoadTimeout() time.Duration {
	if c.LoadTimeoutSeconds <= 0 {
		return 30 * time.Second
	}
	return time.Duration(c.LoadTimeoutSeconds) * time.Second
}
