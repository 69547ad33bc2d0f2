// Package config provides configuration management for campus-sync.
//
// It utilizes Viper for loading configuration from environment variables
// and an optional .env file (via godotenv).
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings, divided into subsections:
//   - Server: HTTP server settings (port, API key)
//   - Database: MySQL connection details
//   - Storage: S3/MinIO credentials for the feed archive
//   - Feed: remote calendar server URL and timeouts
//   - Push: push notification gateway settings
//   - Log: Logging level and format
//
// # Validation
//
// LoadConfig validates required values (feed base URL, database name) and
// returns an error when they are missing; callers abort startup on error.
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Feed.BaseURL)
package config
