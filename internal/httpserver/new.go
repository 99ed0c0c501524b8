package httpserver

import (
	"context"
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	assistantHTTP "pelangi-assistant/internal/assistant/delivery/http"
	memoryHTTP "pelangi-assistant/internal/memory/delivery/http"
	"pelangi-assistant/internal/middleware"
	reportHTTP "pelangi-assistant/internal/report/delivery/http"
	settingsHTTP "pelangi-assistant/internal/settings/delivery/http"
	"pelangi-assistant/pkg/log"
)

const (
	defaultReadHeaderTimeout = 10 * time.Second
	defaultShutdownTimeout   = 10 * time.Second
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string
	mw          middleware.Middleware
	checks      []ReadinessCheck

	// Domain handlers. A nil handler skips its routes.
	assistantHandler assistantHTTP.Handler
	memoryHandler    memoryHTTP.Handler
	settingsHandler  settingsHTTP.Handler
	reportHandler    reportHTTP.Handler
}

// ReadinessCheck probes one dependency.
type ReadinessCheck struct {
	Name  string
	Check func(ctx context.Context) error
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string
	Middleware  middleware.Middleware
	// ReadinessChecks run on every /ready request, in order.
	ReadinessChecks []ReadinessCheck

	AssistantHandler assistantHTTP.Handler
	MemoryHandler    memoryHTTP.Handler
	SettingsHandler  settingsHTTP.Handler
	ReportHandler    reportHTTP.Handler
}

// New creates a new HTTPServer instance with every route mapped.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:                logger,
		gin:              gin.New(),
		port:             cfg.Port,
		mode:             cfg.Mode,
		environment:      cfg.Environment,
		mw:               cfg.Middleware,
		checks:           cfg.ReadinessChecks,
		assistantHandler: cfg.AssistantHandler,
		memoryHandler:    cfg.MemoryHandler,
		settingsHandler:  cfg.SettingsHandler,
		reportHandler:    cfg.ReportHandler,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}
	srv.mapHandlers()

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	return nil
}
