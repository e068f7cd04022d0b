package middleware

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"

	"invoice-assistant/internal/auth"
	"invoice-assistant/pkg/response"
)

const claimsKey = "auth_claims"

// Auth requires "Authorization: Bearer <token>" and stores the verified
// claims on the context.
func (m Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		token, err := bearerToken(c.GetHeader("Authorization"))
		if err == nil {
			var claims auth.Claims
			claims, err = m.verifier.Verify(ctx, token)
			if err == nil {
				c.Set(claimsKey, claims)
				c.Next()
				return
			}
		}

		m.l.Warnf(ctx, "middleware.Auth: %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
		response.Unauthorized(c, tokenMessage(err))
	}
}

// AdminOnly must run after Auth.
func (m Middleware) AdminOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := Claims(c)
		if !ok || claims.Role != auth.RoleAdmin {
			response.Forbidden(c, "Admin access required")
			return
		}
		c.Next()
	}
}

// Data guards the data endpoints. It is a no-op unless tokens are required
// for them.
func (m Middleware) Data() gin.HandlerFunc {
	if m.cfg.RequireTokenForData {
		return m.Auth()
	}
	return func(c *gin.Context) { c.Next() }
}

// Claims returns the claims stored by Auth.
func Claims(c *gin.Context) (auth.Claims, bool) {
	v, ok := c.Get(claimsKey)
	if !ok {
		return auth.Claims{}, false
	}
	claims, ok := v.(auth.Claims)
	return claims, ok
}

func bearerToken(header string) (string, error) {
	if header == "" {
		return "", auth.ErrTokenMissing
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 {
		return "", auth.ErrTokenFormat
	}
	if parts[1] == "" {
		return "", auth.ErrTokenMissing
	}
	return parts[1], nil
}

func tokenMessage(err error) string {
	switch {
	case errors.Is(err, auth.ErrTokenFormat):
		return "Invalid token format"
	case errors.Is(err, auth.ErrTokenMissing):
		return "Token is missing"
	case errors.Is(err, auth.ErrTokenExpired):
		return "Token has expired"
	case errors.Is(err, auth.ErrUserNoLongerValid):
		return "User no longer valid"
	default:
		return "Invalid token"
	}
}
