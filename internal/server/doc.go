// Package server runs the phonebook REST API.
//
// It owns the HTTP listener lifecycle: startup, waiting for SIGINT, SIGTERM
// or SIGQUIT, and graceful shutdown with a bounded drain period.
package server
