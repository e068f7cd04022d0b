package http

import (
	"github.com/gin-gonic/gin"

	"invoice-assistant/internal/middleware"
)

// RegisterRoutes maps login under /api/auth and the admin views under
// /api/admin.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	authGroup := rg.Group("/auth")
	{
		authGroup.POST("/login", h.Login)
		authGroup.POST("/change-password", mw.Auth(), h.ChangePassword)
	}

	admin := rg.Group("/admin", mw.Auth(), mw.AdminOnly())
	{
		admin.GET("/login-history", h.LoginHistory)
		admin.GET("/users", h.Users)
		admin.GET("/stats", h.Stats)
	}
}
