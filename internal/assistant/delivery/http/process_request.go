package http

import (
	"github.com/gin-gonic/gin"

	"invoice-assistant/internal/middleware"
)

// processChatReq binds the chat body and attaches the caller's session.
func (h *handler) processChatReq(c *gin.Context) (chatReq, error) {
	var req chatReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, errInvalidBody
	}
	req.SessionID = middleware.SessionID(c)
	return req, nil
}
