package http

import (
	"github.com/gin-gonic/gin"

	"pelangi-assistant/internal/middleware"
)

// RegisterRoutes maps the memory routes under rg, all behind the internal key.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	mem := rg.Group("/memory", mw.InternalAuth())
	{
		mem.GET("/days", h.ListDays)
		mem.GET("/days/:date", h.GetDay)
		mem.PUT("/days/:date", h.PutDay)
		mem.GET("/durable", h.GetDurable)
		mem.PUT("/durable", h.PutDurable)
	}
}
