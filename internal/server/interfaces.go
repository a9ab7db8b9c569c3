package server

// Server is the lifecycle contract for the portal's transport servers.
//
// An implementation blocks in [Server.RunServer] until shutdown is requested
// and releases its resources in [Server.Shutdown].
type Server interface {
	// RunServer starts serving portal requests and blocks until the server
	// stops.
	RunServer()

	// Shutdown gracefully stops the server, letting in-flight requests
	// finish.
	Shutdown()
}
