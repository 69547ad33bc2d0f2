package server

// Config holds configuration for the HTTP server.
type Config struct {
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"8080"`
	// ApiKey is the secret key required to access the API.
	ApiKey string `mapstructure:"api_key" default:""`
	// SyncSchedule is a cron expression driving scheduled sync runs.
	// Empty disables the in-process scheduler (external cron instead).
	SyncSchedule string `mapstructure:"sync_schedule" default:""`
}

// IsScheduled reports whether the in-process sync scheduler is enabled.
func (c Config) IsScheduled() bool {
	return c.SyncSchedule != ""
}
