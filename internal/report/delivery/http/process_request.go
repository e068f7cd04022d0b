package http

import (
	"github.com/gin-gonic/gin"
)

// processDownloadSelectedReq binds the selection body and the entity type.
func (h *handler) processDownloadSelectedReq(c *gin.Context) (downloadSelectedReq, error) {
	var req downloadSelectedReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, errBadBody
	}
	req.EntityType = c.Param("entityType")
	return req, nil
}
