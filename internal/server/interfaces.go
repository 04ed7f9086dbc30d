package server

import "context"

// Server runs the relay's HTTP listener until the process is asked to stop.
type Server interface {
	// RunServer serves until SIGTERM, SIGINT or SIGQUIT arrives, drains
	// in-flight relays and returns nil. A listener that fails to start or
	// dies is reported as an error instead.
	RunServer() error

	// Shutdown stops accepting requests and waits for in-flight relays
	// until ctx expires.
	Shutdown(ctx context.Context) error
}
