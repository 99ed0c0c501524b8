package http

import (
	"errors"
	"io"

	"github.com/gin-gonic/gin"
)

// processRunReq accepts an empty body, which means yesterday.
func (h *handler) processRunReq(c *gin.Context) (runReq, error) {
	var req runReq
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		return req, err
	}
	return req, req.validate()
}
