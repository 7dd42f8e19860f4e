package server

// Server is the process-level lifecycle of the blog API: [RunServer] blocks
// until a termination signal arrives, [Shutdown] stops every transport.
type Server interface {
	RunServer()
	Shutdown()
}

// transport is one listener-backed protocol server (HTTP or gRPC health).
type transport interface {
	// name is used in log lines.
	name() string
	// serve blocks until the transport stops; a graceful stop returns nil.
	serve() error
	Shutdown()
}
