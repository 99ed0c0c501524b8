package middleware

import "time"

const (
	HeaderInternalKey = "X-Internal-Key"
	HeaderRequestID   = "X-Request-ID"

	maxRequestIDLen = 64

	limiterCacheSize = 1000
	limiterTTL       = 5 * time.Minute
)
