package http

import (
	"strings"

	"github.com/gin-gonic/gin"

	"invoice-assistant/internal/auth"
	"invoice-assistant/internal/middleware"
)

// processLoginReq tolerates a missing or malformed body; empty fields are
// rejected by the use case so the attempt still lands in the history.
func (h *handler) processLoginReq(c *gin.Context) auth.LoginInput {
	var req loginReq
	_ = c.ShouldBindJSON(&req)
	return req.toInput(middleware.ClientIP(c.Request))
}

func (h *handler) processChangePasswordReq(c *gin.Context) (auth.ChangePasswordInput, error) {
	var req changePasswordReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return auth.ChangePasswordInput{}, auth.ErrMissingFields
	}
	claims, _ := middleware.Claims(c)
	return auth.ChangePasswordInput{
		Username:    claims.Username,
		OldPassword: req.OldPassword,
		NewPassword: req.NewPassword,
	}, nil
}

func (h *handler) processLoginHistoryReq(c *gin.Context) (auth.LoginHistoryInput, error) {
	var req loginHistoryReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return auth.LoginHistoryInput{}, errInvalidLimit
	}

	in := auth.LoginHistoryInput{Username: req.Username, Limit: req.Limit}
	if _, ok := c.GetQuery("success"); ok {
		success := strings.EqualFold(req.Success, "true")
		in.Success = &success
	}
	return in, nil
}
