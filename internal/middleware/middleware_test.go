package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"invoice-assistant/internal/auth"
	"invoice-assistant/pkg/log"
)

type fakeVerifier struct {
	claims auth.Claims
	err    error
}

func (f fakeVerifier) Verify(ctx context.Context, token string) (auth.Claims, error) {
	if token != "good" {
		if f.err != nil {
			return auth.Claims{}, f.err
		}
		return auth.Claims{}, auth.ErrTokenInvalid
	}
	return f.claims, nil
}

func newEngine(mw Middleware, handlers ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	handlers = append(handlers, func(c *gin.Context) {
		claims, _ := Claims(c)
		c.JSON(http.StatusOK, gin.H{"user": claims.Username, "session": SessionID(c)})
	})
	r.GET("/x", handlers...)
	return r
}

func errorOf(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	msg, _ := body["error"].(string)
	return msg
}

func TestAuth(t *testing.T) {
	mw := New(log.NewNop(), fakeVerifier{claims: auth.Claims{Username: "admin", Role: auth.RoleAdmin}}, Config{})
	r := newEngine(mw, mw.Auth())

	tests := []struct {
		name   string
		header string
		code   int
		msg    string
	}{
		{"Missing", "", http.StatusUnauthorized, "Token is missing"},
		{"No Scheme", "good", http.StatusUnauthorized, "Invalid token format"},
		{"Empty Token", "Bearer ", http.StatusUnauthorized, "Token is missing"},
		{"Invalid", "Bearer bad", http.StatusUnauthorized, "Invalid token"},
		{"Valid", "Bearer good", http.StatusOK, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/x", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.code, w.Code)
			if tt.msg != "" {
				assert.Equal(t, tt.msg, errorOf(t, w))
			} else {
				assert.Contains(t, w.Body.String(), `"user":"admin"`)
			}
		})
	}

	t.Run("Expired", func(t *testing.T) {
		mw := New(log.NewNop(), fakeVerifier{err: auth.ErrTokenExpired}, Config{})
		r := newEngine(mw, mw.Auth())
		req := httptest.NewRequest(http.MethodGet, "/x", nil)
		req.Header.Set("Authorization", "Bearer old")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, "Token has expired", errorOf(t, w))
	})
}

func TestAdminOnly(t *testing.T) {
	mw := New(log.NewNop(), fakeVerifier{claims: auth.Claims{Username: "user", Role: auth.RoleUser}}, Config{})
	r := newEngine(mw, mw.Auth(), mw.AdminOnly())

	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set("Authorization", "Bearer good")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "Admin access required", errorOf(t, w))
}

func TestData(t *testing.T) {
	t.Run("Open By Default", func(t *testing.T) {
		mw := New(log.NewNop(), fakeVerifier{}, Config{})
		w := httptest.NewRecorder()
		newEngine(mw, mw.Data()).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Token Required", func(t *testing.T) {
		mw := New(log.NewNop(), fakeVerifier{}, Config{RequireTokenForData: true})
		w := httptest.NewRecorder()
		newEngine(mw, mw.Data()).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestSession(t *testing.T) {
	mw := New(log.NewNop(), fakeVerifier{}, Config{})
	r := newEngine(mw, mw.Session())

	t.Run("Mints Cookie", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))

		cookies := w.Result().Cookies()
		require.Len(t, cookies, 1)
		assert.Equal(t, DefaultCookieName, cookies[0].Name)
		assert.Len(t, cookies[0].Value, 36)
		assert.Contains(t, w.Body.String(), cookies[0].Value)
	})

	t.Run("Reuses Cookie", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/x", nil)
		req.AddCookie(&http.Cookie{Name: DefaultCookieName, Value: "s-1"})
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Contains(t, w.Body.String(), `"session":"s-1"`)
	})

	t.Run("Header Fallback", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/x", nil)
		req.Header.Set(SessionHeader, "s-2")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Contains(t, w.Body.String(), `"session":"s-2"`)
	})
}

func TestSignedSession(t *testing.T) {
	mw := New(log.NewNop(), fakeVerifier{}, Config{SessionSecret: "k"})
	r := newEngine(mw, mw.Session())

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))
	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	signed := cookies[0].Value
	assert.Equal(t, signed, w.Header().Get(SessionHeader))

	id, sig, found := strings.Cut(signed, ".")
	require.True(t, found)
	assert.Len(t, id, 36)
	assert.NotEmpty(t, sig)

	t.Run("Accepts Signed Cookie", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/x", nil)
		req.AddCookie(&http.Cookie{Name: DefaultCookieName, Value: signed})
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Contains(t, w.Body.String(), `"session":"`+id+`"`)
	})

	t.Run("Accepts Signed Header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/x", nil)
		req.Header.Set(SessionHeader, signed)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Contains(t, w.Body.String(), `"session":"`+id+`"`)
	})

	for name, forged := range map[string]string{
		"Unsigned":      id,
		"Bad Signature": id + ".AAAA",
		"Other Id":      "victim." + sig,
	} {
		t.Run("Rejects "+name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/x", nil)
			req.Header.Set(SessionHeader, forged)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			var body map[string]any
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.NotEqual(t, id, body["session"])
			assert.NotEqual(t, "victim", body["session"])
			assert.Len(t, body["session"], 36)
		})
	}
}

func TestChatRateLimit(t *testing.T) {
	mw := New(log.NewNop(), fakeVerifier{}, Config{ChatPerMin: 10})
	r := newEngine(mw, mw.ChatRateLimit())

	do := func(ip string) int {
		req := httptest.NewRequest(http.MethodGet, "/x", nil)
		req.Header.Set("X-Forwarded-For", ip+", 10.0.0.1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w.Code
	}

	// burst of one at 10/min
	assert.Equal(t, http.StatusOK, do("1.2.3.4"))
	assert.Equal(t, http.StatusTooManyRequests, do("1.2.3.4"))
	assert.Equal(t, http.StatusOK, do("5.6.7.8"))
}

func TestClientIP(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.RemoteAddr = "192.168.1.5:4321"
	assert.Equal(t, "192.168.1.5", ClientIP(req))

	req.Header.Set("X-Real-IP", "10.1.1.1")
	assert.Equal(t, "10.1.1.1", ClientIP(req))

	req.Header.Set("X-Forwarded-For", " 8.8.8.8 , 10.1.1.1")
	assert.Equal(t, "8.8.8.8", ClientIP(req))
}

func TestCORS(t *testing.T) {
	t.Run("Preflight", func(t *testing.T) {
		mw := New(log.NewNop(), fakeVerifier{}, Config{})
		gin.SetMode(gin.TestMode)
		r := gin.New()
		r.Use(mw.CORS())
		r.POST("/x", func(c *gin.Context) { c.Status(http.StatusOK) })

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodOptions, "/x", nil))
		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("Allow List", func(t *testing.T) {
		mw := New(log.NewNop(), fakeVerifier{}, Config{AllowedOrigins: []string{"https://app.example.com"}})
		r := newEngine(mw, mw.CORS())

		req := httptest.NewRequest(http.MethodGet, "/x", nil)
		req.Header.Set("Origin", "https://app.example.com")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, "https://app.example.com", w.Header().Get("Access-Control-Allow-Origin"))

		req = httptest.NewRequest(http.MethodGet, "/x", nil)
		req.Header.Set("Origin", "https://evil.example.com")
		w = httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
	})
}

func TestRequestID(t *testing.T) {
	mw := New(log.NewNop(), fakeVerifier{}, Config{})
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(mw.RequestID())
	r.GET("/x", func(c *gin.Context) {
		c.String(http.StatusOK, log.RequestID(c.Request.Context()))
	})

	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set(requestIDHeader, "req-42")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "req-42", w.Body.String())
	assert.Equal(t, "req-42", w.Header().Get(requestIDHeader))
}
