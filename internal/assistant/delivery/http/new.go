package http

import (
	"github.com/gin-gonic/gin"

	"pelangi-assistant/internal/assistant"
	pkgLog "pelangi-assistant/pkg/log"
)

// Handler is the public interface for the assistant HTTP delivery layer.
type Handler interface {
	HandleMessage(c *gin.Context)
	Classify(c *gin.Context)
	AppendNote(c *gin.Context)
}

type handler struct {
	l  pkgLog.Logger
	uc assistant.UseCase
}

// New creates a new HTTP handler for the assistant domain.
func New(l pkgLog.Logger, uc assistant.UseCase) Handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
