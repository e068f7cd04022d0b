package http

import (
	"github.com/gin-gonic/gin"

	"invoice-assistant/internal/middleware"
)

// RegisterRoutes maps the grid listings under /api.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	data := rg.Group("", mw.Data())
	{
		data.GET("/projects", h.ListProjects)
		data.GET("/projects/:name", h.ListProjects)
		data.GET("/invoices", h.ListInvoices)
		data.GET("/invoices/:project", h.ListInvoices)
		data.GET("/elements", h.ListElements)
		data.GET("/elements/:project", h.ListElements)
		data.GET("/subelements/:elementID", h.ListSubelements)
	}
}
