package http

import (
	"github.com/gin-gonic/gin"

	"invoice-assistant/internal/middleware"
)

// RegisterRoutes maps the chat endpoint under /api.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	rg.POST("/chat", mw.Data(), mw.Session(), mw.ChatRateLimit(), h.Chat)
}
