package http

import (
	"github.com/gin-gonic/gin"

	"pelangi-assistant/internal/middleware"
)

// RegisterRoutes maps the settings and knowledge routes, all behind the internal key.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	s := rg.Group("/settings", mw.InternalAuth())
	{
		s.POST("/reload", h.Reload)
		s.PUT("/routing/:intent", h.PutRoute)
		s.PUT("/workflows/:id", h.PutWorkflow)
		s.DELETE("/workflows/:id", h.DeleteWorkflow)
	}

	k := rg.Group("/knowledge", mw.InternalAuth())
	{
		k.GET("", h.ListKnowledge)
		k.PUT("/:name", h.PutKnowledge)
	}
}
