package commons

import "time"

const (
	UserIDHeader        = "X-User-ID"
	RequestIDHeader     = "X-Request-ID"
	DefaultAllowedRPS   = 10
	ServerIdleTimeout   = time.Minute
	ServerReadTimeout   = 10 * time.Second
	ServerWriteTimeout  = 30 * time.Second
	ServerShutdownGrace = 10 * time.Second
	MaxRequestBodyBytes = 1 << 20
)
