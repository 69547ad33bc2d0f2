package feed

// Config holds configuration for the remote calendar server.
type Config struct {
	// BaseURL is the calendar server base URL (required).
	BaseURL string `mapstructure:"base_url" default:""`
	// TimeoutSeconds is the per-request timeout in seconds.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
}
