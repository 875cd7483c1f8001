package server

import "time"

const (
	readTimeout = 10 * time.Second
	idleTimeout = 60 * time.Second
)

// These remain vars for tests to override. providerTimeout must stay below
// writeTimeout so a failed fetch still gets its 500 body onto the connection.
var (
	providerTimeout = 10 * time.Second
	writeTimeout    = 15 * time.Second
	shutdownTimeout = 10 * time.Second
)
