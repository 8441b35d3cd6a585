package server

import "time"

const (
	// rateLimitWindow is the sliding window for the per-connection
	// chunk rate limit; the limit itself comes from configuration.
	rateLimitWindow = time.Second

	// Timeouts for the HTTP server in main.
	ReadHeaderTimeout = 10 * time.Second
	ShutdownTimeout   = 10 * time.Second
)
