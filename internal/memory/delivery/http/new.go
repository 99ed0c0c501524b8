package http

import (
	"github.com/gin-gonic/gin"

	"pelangi-assistant/internal/memory"
	pkgLog "pelangi-assistant/pkg/log"
)

// Handler is the public interface for the memory HTTP delivery layer.
type Handler interface {
	ListDays(c *gin.Context)
	GetDay(c *gin.Context)
	PutDay(c *gin.Context)
	GetDurable(c *gin.Context)
	PutDurable(c *gin.Context)
}

type handler struct {
	l  pkgLog.Logger
	uc memory.UseCase
}

// New creates a new HTTP handler for the memory domain.
func New(l pkgLog.Logger, uc memory.UseCase) Handler {
	return &handler{l: l, uc: uc}
}
