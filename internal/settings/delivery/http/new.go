package http

import (
	"github.com/gin-gonic/gin"

	"pelangi-assistant/internal/settings"
	pkgLog "pelangi-assistant/pkg/log"
)

// Handler is the public interface for the settings HTTP delivery layer.
type Handler interface {
	Reload(c *gin.Context)
	PutRoute(c *gin.Context)
	PutWorkflow(c *gin.Context)
	DeleteWorkflow(c *gin.Context)
	ListKnowledge(c *gin.Context)
	PutKnowledge(c *gin.Context)
}

type handler struct {
	l  pkgLog.Logger
	uc settings.UseCase
}

// New creates a new HTTP handler for operator settings writes.
func New(l pkgLog.Logger, uc settings.UseCase) Handler {
	return &handler{l: l, uc: uc}
}
