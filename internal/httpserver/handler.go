package httpserver

import (
	"context"
	"strings"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"invoice-assistant/internal/auth"
	"invoice-assistant/internal/middleware"
	"invoice-assistant/internal/model"
	"invoice-assistant/pkg/metrics"
)

func (srv HTTPServer) mapHandlers() error {
	authUC, mw := srv.setupMiddleware()

	srv.registerMiddlewares(mw)
	srv.registerSystemRoutes(mw)

	return srv.registerDomainRoutes(authUC, mw)
}

func (srv HTTPServer) registerMiddlewares(mw middleware.Middleware) {
	srv.gin.Use(gin.Recovery())
	srv.gin.Use(mw.RequestID())
	srv.gin.Use(mw.CORS())
	srv.gin.Use(metrics.Middleware())

	ctx := context.Background()
	origins := strings.Join(srv.config.CORS.AllowedOrigins, ", ")
	if model.IsProduction(srv.environment) {
		srv.l.Infof(ctx, "CORS mode: production (%s)", origins)
	} else {
		srv.l.Infof(ctx, "CORS mode: %s (%s)", srv.environment, origins)
	}
}

func (srv HTTPServer) registerSystemRoutes(mw middleware.Middleware) {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)
	srv.gin.GET("/metrics", gin.WrapH(metrics.Handler()))

	srv.gin.GET("/api/health", srv.apiHealthCheck)
	srv.gin.GET("/api/debug/config", mw.Auth(), srv.debugConfig)

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

// registerDomainRoutes registers all domain routes under /api.
func (srv HTTPServer) registerDomainRoutes(authUC auth.UseCase, mw middleware.Middleware) error {
	ctx := context.Background()
	api := srv.gin.Group("/api")

	srv.setupAuthDomain(ctx, api, authUC, mw)
	srv.setupRecordsDomain(ctx, api, mw)
	reports := srv.setupReportDomain(ctx, api, mw)
	srv.setupAssistantDomain(ctx, api, mw, reports)

	return nil
}
