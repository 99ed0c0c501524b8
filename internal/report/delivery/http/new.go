package http

import (
	"github.com/gin-gonic/gin"

	"pelangi-assistant/internal/report"
	pkgLog "pelangi-assistant/pkg/log"
)

// Handler is the public interface for the report HTTP delivery layer.
type Handler interface {
	Run(c *gin.Context)
}

type handler struct {
	l      pkgLog.Logger
	runner report.Runner
}

// New creates a new HTTP handler for on-demand reports.
func New(l pkgLog.Logger, runner report.Runner) Handler {
	return &handler{l: l, runner: runner}
}
