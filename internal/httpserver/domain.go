package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"invoice-assistant/internal/assistant"
	assistantHTTP "invoice-assistant/internal/assistant/delivery/http"
	assistantRepo "invoice-assistant/internal/assistant/repository/postgre"
	assistantUC "invoice-assistant/internal/assistant/usecase"
	"invoice-assistant/internal/auth"
	authHTTP "invoice-assistant/internal/auth/delivery/http"
	authRepo "invoice-assistant/internal/auth/repository/memory"
	authUC "invoice-assistant/internal/auth/usecase"
	"invoice-assistant/internal/middleware"
	recordsHTTP "invoice-assistant/internal/records/delivery/http"
	recordsRepo "invoice-assistant/internal/records/repository/postgre"
	recordsUC "invoice-assistant/internal/records/usecase"
	"invoice-assistant/internal/report"
	reportHTTP "invoice-assistant/internal/report/delivery/http"
	reportRepo "invoice-assistant/internal/report/repository/postgre"
	reportUC "invoice-assistant/internal/report/usecase"
	"invoice-assistant/internal/session"
)

// Pattern to follow when adding a new domain:
//  1. Create Repository:   repo := mydomainRepo.New(srv.db, srv.l)
//  2. Create UseCase:      uc := mydomainUC.New(repo, srv.l)
//  3. Create HTTP Handler: h := mydomainHTTP.New(srv.l, uc)
//  4. Register Routes:     mydomainHTTP.RegisterRoutes(api, h, mw)

// setupMiddleware builds the auth use case first, since the middleware
// verifies tokens with it.
func (srv HTTPServer) setupMiddleware() (auth.UseCase, middleware.Middleware) {
	cfg := srv.config

	uc := authUC.New(
		authRepo.New(authUC.DefaultUsers(cfg.Auth.PasswordSalt), authRepo.DefaultEventCapacity),
		srv.l,
		authUC.Config{
			SecretKey:       cfg.Auth.SecretKey,
			PasswordSalt:    cfg.Auth.PasswordSalt,
			JWTExpiry:       cfg.Auth.JWTExpiry,
			RateLimitWindow: cfg.Auth.RateLimitWindow,
			MaxAttempts:     cfg.Auth.MaxAttempts,
			LockoutDuration: cfg.Auth.LockoutDuration,
		},
	)

	mw := middleware.New(srv.l, uc, middleware.Config{
		RequireTokenForData: cfg.Auth.RequireTokenForData,
		CookieName:          cfg.Session.CookieName,
		SessionSecret:       cfg.Auth.SecretKey,
		SessionTTL:          cfg.Session.TTL,
		ChatPerMin:          cfg.ChatRateLimit.PerMin,
		AllowedOrigins:      cfg.CORS.AllowedOrigins,
	})
	return uc, mw
}

// setupAuthDomain registers /api/auth/* and /api/admin/*.
func (srv HTTPServer) setupAuthDomain(ctx context.Context, api *gin.RouterGroup, uc auth.UseCase, mw middleware.Middleware) {
	h := authHTTP.New(srv.l, uc)
	authHTTP.RegisterRoutes(api, h, mw)
	srv.l.Infof(ctx, "Auth domain registered")
}

// setupRecordsDomain registers the grid listings.
func (srv HTTPServer) setupRecordsDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) {
	repo := recordsRepo.New(srv.db, srv.l)
	uc := recordsUC.New(repo, srv.l)
	h := recordsHTTP.New(srv.l, uc)
	recordsHTTP.RegisterRoutes(api, h, mw)
	srv.l.Infof(ctx, "Records domain registered")
}

// setupReportDomain registers the download routes and returns the use case
// the assistant materializes chat reports with.
func (srv HTTPServer) setupReportDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) report.UseCase {
	repo := reportRepo.New(srv.db, srv.l)
	uc := reportUC.New(repo, srv.store, srv.l)
	h := reportHTTP.New(srv.l, uc)
	reportHTTP.RegisterRoutes(api, h, mw)
	srv.l.Infof(ctx, "Report domain registered (storage=%s)", srv.config.Reports.Storage)
	return uc
}

// setupAssistantDomain registers POST /api/chat.
func (srv HTTPServer) setupAssistantDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware, reports report.UseCase) {
	cfg := srv.config

	sessions := session.New(session.Config{
		MaxSessions:  cfg.Session.MaxSessions,
		TTL:          cfg.Session.TTL,
		Instructions: assistant.DefaultInstructions,
	})
	repo := assistantRepo.New(srv.db, srv.l, assistantRepo.WithStatementTimeout(cfg.Postgres.StatementTimeout))
	uc := assistantUC.New(srv.l, repo, srv.llm, sessions, reports, assistantUC.WithMaxHistory(cfg.Assistant.MaxHistory))
	h := assistantHTTP.New(srv.l, uc)
	assistantHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Assistant domain registered (llm=%s/%s)", srv.llm.Name(), srv.llm.Model())
}
