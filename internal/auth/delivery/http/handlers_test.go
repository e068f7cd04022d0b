package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"invoice-assistant/internal/auth/repository/memory"
	"invoice-assistant/internal/auth/usecase"
	"invoice-assistant/internal/middleware"
	"invoice-assistant/pkg/log"
	"invoice-assistant/pkg/response"
)

func newRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	uc := usecase.New(memory.New(usecase.DefaultUsers("salt"), 0), log.NewNop(), usecase.Config{
		SecretKey:    "secret",
		PasswordSalt: "salt",
	})
	r := gin.New()
	RegisterRoutes(r.Group("/api"), New(log.NewNop(), uc), middleware.New(log.NewNop(), uc, middleware.Config{}))
	return r
}

func do(r *gin.Engine, method, path, token, body string) (*httptest.ResponseRecorder, map[string]any) {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Forwarded-For", "10.0.0.7")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var out map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &out)
	return w, out
}

func login(t *testing.T, r *gin.Engine, user, pass string) string {
	t.Helper()
	w, body := do(r, http.MethodPost, "/api/auth/login", "", `{"username":"`+user+`","password":"`+pass+`"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	return body["token"].(string)
}

func TestLogin(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		r := newRouter()
		w, body := do(r, http.MethodPost, "/api/auth/login", "", `{"username":"admin","password":"admin123"}`)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "admin", body["username"])
		assert.Equal(t, "admin", body["role"])
		assert.EqualValues(t, 86400, body["expires_in"])
		assert.NotEmpty(t, body["token"])
	})

	t.Run("Missing Fields", func(t *testing.T) {
		r := newRouter()
		w, body := do(r, http.MethodPost, "/api/auth/login", "", `{"username":"admin"}`)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, "Username and password are required", body["error"])
	})

	t.Run("Wrong Password Then Throttled", func(t *testing.T) {
		r := newRouter()
		for i := 0; i < 5; i++ {
			w, body := do(r, http.MethodPost, "/api/auth/login", "", `{"username":"user","password":"nope"}`)
			require.Equal(t, http.StatusUnauthorized, w.Code)
			assert.Equal(t, "Invalid credentials", body["error"])
		}

		w, body := do(r, http.MethodPost, "/api/auth/login", "", `{"username":"user","password":"user123"}`)
		assert.Equal(t, http.StatusTooManyRequests, w.Code)
		assert.Equal(t, "Too many login attempts. Please try again later.", body["error"])
		assert.EqualValues(t, 300, body["wait_time"])
	})
}

func TestChangePassword(t *testing.T) {
	r := newRouter()

	w, body := do(r, http.MethodPost, "/api/auth/change-password", "", `{}`)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Token is missing", body["error"])

	token := login(t, r, "user", "user123")

	w, body = do(r, http.MethodPost, "/api/auth/change-password", token, `{"old_password":"user123"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Missing required fields", body["error"])

	w, body = do(r, http.MethodPost, "/api/auth/change-password", token, `{"old_password":"x","new_password":"y"}`)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Invalid current password", body["error"])

	w, body = do(r, http.MethodPost, "/api/auth/change-password", token, `{"old_password":"user123","new_password":"y"}`)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Password updated successfully", body["message"])

	login(t, r, "user", "y")
}

func TestAdminRoutes(t *testing.T) {
	r := newRouter()
	userToken := login(t, r, "user", "user123")
	adminToken := login(t, r, "admin", "admin123")

	t.Run("Forbidden For Users", func(t *testing.T) {
		w, body := do(r, http.MethodGet, "/api/admin/users", userToken, "")
		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Equal(t, "Admin access required", body["error"])
	})

	t.Run("Users", func(t *testing.T) {
		w, _ := do(r, http.MethodGet, "/api/admin/users", adminToken, "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `[{"username":"admin","role":"admin"},{"username":"user","role":"user"}]`, w.Body.String())
	})

	t.Run("History", func(t *testing.T) {
		w, _ := do(r, http.MethodGet, "/api/admin/login-history?success=true&limit=1", adminToken, "")
		require.Equal(t, http.StatusOK, w.Code)

		var events []map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &events))
		require.Len(t, events, 1)
		assert.Equal(t, "admin", events[0]["username"])
		assert.Equal(t, "10.0.0.7", events[0]["ip_address"])
		assert.Equal(t, true, events[0]["success"])

		ts, ok := events[0]["timestamp"].(string)
		require.True(t, ok)
		_, err := time.Parse(response.DateTimeFormat, ts)
		assert.NoError(t, err, ts)
	})

	t.Run("History Bad Limit", func(t *testing.T) {
		w, _ := do(r, http.MethodGet, "/api/admin/login-history?limit=abc", adminToken, "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Stats", func(t *testing.T) {
		w, body := do(r, http.MethodGet, "/api/admin/stats", adminToken, "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.EqualValues(t, 2, body["total_attempts"])
		assert.EqualValues(t, 2, body["successful_attempts"])
		assert.Equal(t, map[string]any{}, body["potentially_malicious_ips"])
	})
}
