package http

import (
	"github.com/gin-gonic/gin"

	"pelangi-assistant/internal/middleware"
)

// RegisterRoutes maps the assistant routes. The message gateway is an internal
// caller and carries the same key as operators.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	rg.POST("/messages", mw.InternalAuth(), h.HandleMessage)
	rg.POST("/classify", mw.InternalAuth(), h.Classify)
	rg.POST("/memory/notes", mw.InternalAuth(), h.AppendNote)
}
