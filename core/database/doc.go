// Package database handles database connections for campus-sync.
//
// It provides a wrapper around GORM (Go Object Relational Mapping) to properly
// configure MySQL connections based on the application's configuration, with a
// sqlite driver branch used by tests (":memory:") and local development.
//
// # Connect
//
// The Connect function establishes a connection to the database, applies pool
// settings, and verifies the connection with a bounded ping. The schema itself
// is owned by the feature model packages, which expose AutoMigrate helpers.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Fatal("Database connection failed", err)
//	}
package database
