package server

import "time"

// HTTP server timeouts. Report payloads are small; generous idle keeps
// probe connections cheap.
const (
	readTimeout  = 10 * time.Second
	writeTimeout = 10 * time.Second
	idleTimeout  = 60 * time.Second
)

// shutdownTimeout is a var so tests can shorten it.
var shutdownTimeout = 10 * time.Second
