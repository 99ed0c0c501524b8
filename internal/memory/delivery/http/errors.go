package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"pelangi-assistant/internal/memory"
	"pelangi-assistant/pkg/response"
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, memory.ErrInvalidDate):
		return response.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, memory.ErrDayNotFound), errors.Is(err, memory.ErrDurableNotFound):
		return response.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, memory.ErrConcurrentWriteConflict), errors.Is(err, memory.ErrVersionMismatch):
		return response.NewHTTPError(http.StatusConflict, err.Error())
	default:
		return nil
	}
}

func (h *handler) error(c *gin.Context, err error) {
	if mapped := h.mapError(err); mapped != nil {
		response.Error(c, mapped, nil)
		return
	}
	response.InternalError(c, err)
}
