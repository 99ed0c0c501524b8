package http

import (
	"github.com/gin-gonic/gin"
)

// processOverwriteReq binds the body and, for day routes, the :date param.
func (h *handler) processOverwriteReq(c *gin.Context) (overwriteReq, error) {
	var req overwriteReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	req.Date = c.Param("date")
	return req, req.validate()
}
