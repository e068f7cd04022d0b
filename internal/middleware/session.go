package middleware

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	DefaultCookieName = "session_id"
	DefaultSessionTTL = 24 * time.Hour

	// SessionHeader lets non-browser clients carry the session.
	SessionHeader = "X-Session-ID"

	sessionKey = "session_id"
)

// Session resolves the caller's chat session from the cookie or the
// X-Session-ID header, minting a new id when neither carries a valid one.
// With a SessionSecret set, the id travels as "<id>.<hmac>" and forged or
// unsigned values are replaced by a fresh session.
func (m Middleware) Session() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw, err := c.Cookie(m.cfg.CookieName)
		if err != nil || raw == "" {
			raw = c.GetHeader(SessionHeader)
		}

		id, ok := m.openSessionID(raw)
		if !ok {
			if raw != "" {
				m.l.Warnf(c.Request.Context(), "middleware.Session: rejected session id from %s", ClientIP(c.Request))
			}
			id = uuid.NewString()
		}

		signed := m.signSessionID(id)
		c.Set(sessionKey, id)
		c.Header(SessionHeader, signed)
		c.SetSameSite(http.SameSiteLaxMode)
		c.SetCookie(m.cfg.CookieName, signed, int(m.cfg.SessionTTL.Seconds()), "/", "", false, true)
		c.Next()
	}
}

func (m Middleware) sessionMAC(id string) string {
	mac := hmac.New(sha256.New, []byte(m.cfg.SessionSecret))
	mac.Write([]byte(id))
	return base64.RawURLEncoding.EncodeToString(mac.Sum(nil))
}

func (m Middleware) signSessionID(id string) string {
	if m.cfg.SessionSecret == "" {
		return id
	}
	return id + "." + m.sessionMAC(id)
}

// openSessionID returns the id carried by raw if its signature checks out.
func (m Middleware) openSessionID(raw string) (string, bool) {
	if raw == "" {
		return "", false
	}
	if m.cfg.SessionSecret == "" {
		return raw, true
	}
	i := strings.LastIndexByte(raw, '.')
	if i <= 0 {
		return "", false
	}
	id, sig := raw[:i], raw[i+1:]
	if !hmac.Equal([]byte(sig), []byte(m.sessionMAC(id))) {
		return "", false
	}
	return id, true
}

// SessionID returns the id resolved by Session, falling back to the header
// for routes mounted without it.
func SessionID(c *gin.Context) string {
	if v, ok := c.Get(sessionKey); ok {
		if id, ok := v.(string); ok {
			return id
		}
	}
	return c.GetHeader(SessionHeader)
}
