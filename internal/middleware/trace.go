package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	pkgLog "pelangi-assistant/pkg/log"
)

// Trace gives every request a trace id, taken from X-Request-ID when the
// caller sent a usable one. The id flows into logs, replies and events.
func (m Middleware) Trace() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(HeaderRequestID)
		if !validRequestID(id) {
			id = uuid.NewString()
		}
		c.Request = c.Request.WithContext(pkgLog.WithTraceID(c.Request.Context(), id))
		c.Header(HeaderRequestID, id)
		c.Next()
	}
}

func validRequestID(id string) bool {
	if id == "" || len(id) > maxRequestIDLen {
		return false
	}
	for _, r := range id {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_', r == '.':
		default:
			return false
		}
	}
	return true
}
