package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"invoice-assistant/pkg/log"
)

const requestIDHeader = "X-Request-ID"

// RequestID tags the request context so every log line carries the id.
func (m Middleware) RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Request = c.Request.WithContext(log.WithRequestID(c.Request.Context(), id))
		c.Header(requestIDHeader, id)
		c.Next()
	}
}
