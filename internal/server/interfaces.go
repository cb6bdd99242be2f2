package server

// Server is the lifecycle contract of a transport server.
// RunServer blocks until the server stops; Shutdown asks it to stop
// draining in-flight requests first.
type Server interface {
	RunServer()
	Shutdown()
}
