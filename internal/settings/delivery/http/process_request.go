package http

import (
	"github.com/gin-gonic/gin"
)

func (h *handler) processPutRouteReq(c *gin.Context) (putRouteReq, error) {
	var req putRouteReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	req.Intent = c.Param("intent")
	return req, req.validate()
}

func (h *handler) processPutWorkflowReq(c *gin.Context) (putWorkflowReq, error) {
	var req putWorkflowReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	req.ID = c.Param("id")
	return req, req.validate()
}

func (h *handler) processPutKnowledgeReq(c *gin.Context) (putKnowledgeReq, error) {
	var req putKnowledgeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	req.Name = c.Param("name")
	return req, req.validate()
}
