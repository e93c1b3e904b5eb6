package utils

import "time"

const (
	// RequestIDHeader carries the per-request id set by the request logger.
	RequestIDHeader = "X-Request-ID"
	// DecodedEmailKey is the gin context key holding the verified caller email.
	DecodedEmailKey = "decodedEmail"
	// LoggerKey is the gin context key holding the request-scoped logger.
	LoggerKey = "logger"

	// HealthCheckInterval is how often the health monitor pings its dependencies.
	HealthCheckInterval = 60 * time.Second
)
