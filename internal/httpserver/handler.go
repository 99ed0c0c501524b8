package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	assistantHTTP "pelangi-assistant/internal/assistant/delivery/http"
	memoryHTTP "pelangi-assistant/internal/memory/delivery/http"
	"pelangi-assistant/internal/model"
	reportHTTP "pelangi-assistant/internal/report/delivery/http"
	settingsHTTP "pelangi-assistant/internal/settings/delivery/http"
)

func (srv *HTTPServer) mapHandlers() {
	srv.registerMiddlewares()
	srv.registerSystemRoutes()
	srv.registerDomainRoutes()
}

func (srv *HTTPServer) registerMiddlewares() {
	srv.gin.Use(gin.Recovery(), srv.mw.Trace())
	if srv.environment != string(model.EnvironmentProduction) {
		srv.gin.Use(gin.Logger())
	}
}

func (srv *HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

// registerDomainRoutes mounts every configured domain under /api/v1. The
// whole group is rate limited per client IP.
func (srv *HTTPServer) registerDomainRoutes() {
	ctx := context.Background()
	api := srv.gin.Group("/api/v1", srv.mw.RateLimit())

	if srv.assistantHandler != nil {
		assistantHTTP.RegisterRoutes(api, srv.assistantHandler, srv.mw)
		srv.l.Infof(ctx, "Assistant routes registered")
	}
	if srv.memoryHandler != nil {
		memoryHTTP.RegisterRoutes(api, srv.memoryHandler, srv.mw)
		srv.l.Infof(ctx, "Memory routes registered")
	}
	if srv.settingsHandler != nil {
		settingsHTTP.RegisterRoutes(api, srv.settingsHandler, srv.mw)
		srv.l.Infof(ctx, "Settings routes registered")
	}
	if srv.reportHandler != nil {
		reportHTTP.RegisterRoutes(api, srv.reportHandler, srv.mw)
		srv.l.Infof(ctx, "Report routes registered")
	} else {
		srv.l.Infof(ctx, "Report handler not configured, skipping report routes")
	}
}
