package httpserver

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"invoice-assistant/pkg/response"
)

// Health response constants (single source for version and service identity).
const (
	HealthMessage = "Invoice assistant is up"
	HealthVersion = "1.0.0"
	ServiceName   = "invoice-assistant"

	dbProbeTimeout = 5 * time.Second
)

// healthCheck handles health check requests
// @Summary Health Check
// @Description Check if the API is healthy
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "API is healthy"
// @Router /health [get]
func (srv HTTPServer) healthCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "healthy",
		"message": HealthMessage,
		"version": HealthVersion,
		"service": ServiceName,
	})
}

// readyCheck handles readiness check. Returns ready if server is up.
// @Summary Readiness Check
// @Description Check if the API is ready to serve traffic
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "API is ready"
// @Router /ready [get]
func (srv HTTPServer) readyCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "ready",
		"message": HealthMessage,
		"version": HealthVersion,
		"service": ServiceName,
	})
}

// liveCheck handles liveness check requests
// @Summary Liveness Check
// @Description Check if the API is alive
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "API is alive"
// @Router /live [get]
func (srv HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "alive",
		"message": HealthMessage,
		"version": HealthVersion,
		"service": ServiceName,
	})
}

// apiHealthCheck probes the database the assistant queries.
// @Summary Database health
// @Description Runs SELECT 1 and reports the server version
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "Database reachable"
// @Failure 500 {object} map[string]interface{} "Database unreachable"
// @Router /api/health [get]
func (srv HTTPServer) apiHealthCheck(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), dbProbeTimeout)
	defer cancel()

	version, err := srv.dbVersion(ctx)
	now := time.Now().Format(time.RFC3339)
	if err != nil {
		srv.l.Errorf(ctx, "httpserver.apiHealthCheck: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":    "unhealthy",
			"database":  gin.H{"connected": false, "error": err.Error()},
			"timestamp": now,
		})
		return
	}

	response.OK(c, gin.H{
		"status":    "healthy",
		"database":  gin.H{"connected": true, "version": version},
		"timestamp": now,
	})
}

func (srv HTTPServer) dbVersion(ctx context.Context) (string, error) {
	var one int
	if err := srv.db.QueryRowContext(ctx, "SELECT 1").Scan(&one); err != nil {
		return "", err
	}
	var version string
	if err := srv.db.QueryRowContext(ctx, "SELECT version()").Scan(&version); err != nil {
		return "", err
	}
	return version, nil
}

// debugConfig shows which database the service is pointed at.
// @Summary Database target
// @Tags Health
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} response.ErrorResp
// @Router /api/debug/config [get]
func (srv HTTPServer) debugConfig(c *gin.Context) {
	pg := srv.config.Postgres
	response.OK(c, gin.H{
		"DB_HOST": pg.Host,
		"DB_NAME": pg.Name,
		"DB_USER": pg.User,
	})
}
