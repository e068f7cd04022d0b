package http

import (
	"github.com/gin-gonic/gin"
)

// processListInvoicesReq binds the invoice grid filters and the optional project.
func (h *handler) processListInvoicesReq(c *gin.Context) (listInvoicesReq, error) {
	var req listInvoicesReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, errInvalidQuery
	}
	req.Project = c.Param("project")
	return req, nil
}

// processListElementsReq binds the element grid filters and the optional project.
func (h *handler) processListElementsReq(c *gin.Context) (listElementsReq, error) {
	var req listElementsReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, errInvalidQuery
	}
	req.Project = c.Param("project")
	return req, nil
}
