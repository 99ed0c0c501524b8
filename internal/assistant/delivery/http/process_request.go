package http

import (
	"github.com/gin-gonic/gin"
)

func (h *handler) processHandleMessageReq(c *gin.Context) (handleMessageReq, error) {
	var req handleMessageReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

func (h *handler) processClassifyReq(c *gin.Context) (classifyReq, error) {
	var req classifyReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

func (h *handler) processAppendNoteReq(c *gin.Context) (appendNoteReq, error) {
	var req appendNoteReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}
