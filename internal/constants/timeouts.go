package constants

import "time"

const (
	// UpstreamGenerateTimeout enforces max duration for a single generation request.
	UpstreamGenerateTimeout = 120 * time.Second
	// ServerShutdownTimeout bounds graceful HTTP server shutdown.
	ServerShutdownTimeout = 30 * time.Second
	// ServerReadHeaderTimeout guards against slow clients.
	ServerReadHeaderTimeout = 10 * time.Second
)
