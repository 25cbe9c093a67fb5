package server

import "context"

// Server defines the lifecycle of the phonebook transport server.
type Server interface {
	// RunServer serves until a termination signal arrives, then shuts down.
	RunServer()

	// Run serves until ctx is cancelled or the listener fails.
	Run(ctx context.Context) error

	// Shutdown gracefully stops the server and frees associated resources.
	Shutdown()
}
