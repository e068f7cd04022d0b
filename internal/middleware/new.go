package middleware

import (
	"context"
	"time"

	"invoice-assistant/internal/auth"
	"invoice-assistant/pkg/log"
)

// TokenVerifier is the slice of auth.UseCase the middleware needs.
type TokenVerifier interface {
	Verify(ctx context.Context, token string) (auth.Claims, error)
}

type Config struct {
	// RequireTokenForData puts Auth in front of the chat, records and
	// download routes.
	RequireTokenForData bool
	CookieName          string
	// SessionSecret signs session ids; empty leaves them unsigned.
	SessionSecret       string
	SessionTTL          time.Duration
	ChatPerMin          int
	AllowedOrigins      []string
}

type Middleware struct {
	l           log.Logger
	verifier    TokenVerifier
	cfg         Config
	chatLimiter *rateLimiter
}

func New(l log.Logger, verifier TokenVerifier, cfg Config) Middleware {
	if cfg.CookieName == "" {
		cfg.CookieName = DefaultCookieName
	}
	if cfg.SessionTTL <= 0 {
		cfg.SessionTTL = DefaultSessionTTL
	}
	return Middleware{
		l:           l,
		verifier:    verifier,
		cfg:         cfg,
		chatLimiter: newRateLimiter(cfg.ChatPerMin),
	}
}
