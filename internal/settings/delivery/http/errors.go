package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"pelangi-assistant/internal/settings"
	"pelangi-assistant/pkg/response"
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, settings.ErrConfiguration):
		return response.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, settings.ErrWorkflowNotFound), errors.Is(err, settings.ErrKnowledgeFileNotFound):
		return response.NewHTTPError(http.StatusNotFound, err.Error())
	default:
		return nil
	}
}

// error sends the mapped error. Configuration problems are listed in data.
func (h *handler) error(c *gin.Context, err error) {
	mapped := h.mapError(err)
	if mapped == nil {
		response.InternalError(c, err)
		return
	}
	var data map[string]interface{}
	var cfgErr *settings.ConfigurationError
	if errors.As(err, &cfgErr) {
		data = map[string]interface{}{"problems": cfgErr.Problems}
	}
	response.Error(c, mapped, data)
}
