package http

import (
	"github.com/gin-gonic/gin"

	"pelangi-assistant/internal/middleware"
)

func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	rg.POST("/reports/run", mw.InternalAuth(), h.Run)
}
