package push

// Config holds configuration for the push notification gateway.
type Config struct {
	// Endpoint is the gateway URL notifications are POSTed to.
	// Empty disables push dispatch entirely.
	Endpoint string `mapstructure:"endpoint" default:""`
	// ApiKey authenticates campus-sync against the gateway.
	ApiKey string `mapstructure:"api_key" default:""`
	// TimeoutSeconds is the per-dispatch timeout in seconds.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"10"`
}

// IsEnabled reports whether a gateway endpoint is configured.
func (c Config) IsEnabled() bool {
	return c.Endpoint != ""
}
