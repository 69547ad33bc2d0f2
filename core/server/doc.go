// Package server holds the HTTP server configuration.
//
// While the main application entry point handles the server startup, this
// package defines the configuration structure for server settings such as the
// listen port, API key, and the optional in-process sync schedule.
//
// # Usage
//
// This package is primarily used by the core/config package to embed server
// settings and by cmd/start.go to decide whether to run the sync scheduler.
package server
