package http

import (
	"github.com/gin-gonic/gin"

	"invoice-assistant/internal/middleware"
)

// RegisterRoutes maps the download endpoints under /api.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	rg.GET("/download/:filename", mw.Data(), h.Download)
	rg.POST("/download_selected/:entityType", mw.Data(), h.DownloadSelected)
}
