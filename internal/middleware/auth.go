package middleware

import (
	"crypto/subtle"

	"github.com/gin-gonic/gin"

	"pelangi-assistant/pkg/response"
)

// InternalAuth rejects requests without the configured internal key.
func (m Middleware) InternalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if m.internalKey == "" {
			c.Next()
			return
		}
		key := c.GetHeader(HeaderInternalKey)
		if subtle.ConstantTimeCompare([]byte(key), []byte(m.internalKey)) != 1 {
			m.l.Warnf(c.Request.Context(), "middleware.InternalAuth: rejected %s %s from %s", c.Request.Method, c.FullPath(), clientIP(c.Request))
			response.Unauthorized(c)
			return
		}
		c.Next()
	}
}
