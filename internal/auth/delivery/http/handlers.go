package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"invoice-assistant/internal/auth"
	pkgErrors "invoice-assistant/pkg/errors"
	"invoice-assistant/pkg/response"
)

// Login godoc
// @Summary     Log in
// @Description Issues a 24h bearer token. Failures are rate limited per client IP and lock the account after repeated attempts.
// @Tags        Auth
// @Accept      json
// @Produce     json
// @Param       body body     loginReq true "Credentials"
// @Success     200  {object} loginResp
// @Failure     401  {object} response.ErrorResp "Missing or invalid credentials"
// @Failure     429  {object} object "error and wait_time in seconds"
// @Failure     500  {object} response.ErrorResp "Internal Server Error"
// @Router      /api/auth/login [POST]
func (h *handler) Login(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.Login(ctx, h.processLoginReq(c))
	if err != nil {
		mapped := h.mapError(err)
		var we *auth.WaitError
		if errors.As(err, &we) {
			he, _ := pkgErrors.AsHTTPError(mapped)
			response.ErrorWithData(c, he.Code, he.Message, map[string]any{"wait_time": we.Wait})
			return
		}
		response.Error(c, mapped)
		return
	}

	response.OK(c, newLoginResp(output))
}

// ChangePassword godoc
// @Summary     Change password
// @Tags        Auth
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       body body     changePasswordReq true "Old and new password"
// @Success     200  {object} messageResp
// @Failure     400  {object} response.ErrorResp "Missing required fields"
// @Failure     401  {object} response.ErrorResp "Invalid current password"
// @Failure     404  {object} response.ErrorResp "User not found"
// @Router      /api/auth/change-password [POST]
func (h *handler) ChangePassword(c *gin.Context) {
	ctx := c.Request.Context()

	input, err := h.processChangePasswordReq(c)
	if err == nil {
		err = h.uc.ChangePassword(ctx, input)
	}
	if err != nil {
		h.l.Warnf(ctx, "uc.ChangePassword: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, messageResp{Message: "Password updated successfully"})
}

// LoginHistory godoc
// @Summary     Login history
// @Description Most recent events first.
// @Tags        Admin
// @Produce     json
// @Security    BearerAuth
// @Param       username query string false "Exact username"
// @Param       success  query bool   false "Filter by outcome"
// @Param       limit    query int    false "Max events (default 50)"
// @Success     200 {array}  loginEventResp
// @Failure     403 {object} response.ErrorResp "Admin access required"
// @Router      /api/admin/login-history [GET]
func (h *handler) LoginHistory(c *gin.Context) {
	ctx := c.Request.Context()

	input, err := h.processLoginHistoryReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	events, err := h.uc.LoginHistory(ctx, input)
	if err != nil {
		h.l.Errorf(ctx, "uc.LoginHistory: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newLoginEventsResp(events))
}

// Users godoc
// @Summary     List accounts
// @Tags        Admin
// @Produce     json
// @Security    BearerAuth
// @Success     200 {array}  userResp
// @Failure     403 {object} response.ErrorResp "Admin access required"
// @Router      /api/admin/users [GET]
func (h *handler) Users(c *gin.Context) {
	ctx := c.Request.Context()

	users, err := h.uc.Users(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.Users: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newUsersResp(users))
}

// Stats godoc
// @Summary     Login statistics
// @Tags        Admin
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} statsResp
// @Failure     403 {object} response.ErrorResp "Admin access required"
// @Router      /api/admin/stats [GET]
func (h *handler) Stats(c *gin.Context) {
	ctx := c.Request.Context()

	st, err := h.uc.Stats(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.Stats: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newStatsResp(st))
}
