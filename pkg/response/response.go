package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	pkgErrors "invoice-assistant/pkg/errors"
)

// OK sends 200 JSON with data as the whole body. The browser client reads
// bare arrays and objects, so nothing is wrapped.
func OK(c *gin.Context, data any) {
	if data == nil {
		data = gin.H{"message": MessageSuccess}
	}
	c.JSON(http.StatusOK, data)
}

// Error sends err as {"error": msg}. HTTPErrors carry their own status,
// anything else is answered with 400.
func Error(c *gin.Context, err error) {
	if he, ok := pkgErrors.AsHTTPError(err); ok {
		c.JSON(he.Code, ErrorResp{Error: he.Message})
		return
	}
	c.JSON(http.StatusBadRequest, ErrorResp{Error: err.Error()})
}

// ErrorWithData sends an error body with extra fields next to "error",
// e.g. wait_time on a rate-limited login.
func ErrorWithData(c *gin.Context, code int, msg string, data map[string]any) {
	body := gin.H{"error": msg}
	for k, v := range data {
		body[k] = v
	}
	c.JSON(code, body)
}

// InternalError sends 500 internal server error.
func InternalError(c *gin.Context, err error) {
	c.JSON(http.StatusInternalServerError, ErrorResp{Error: DefaultErrorMessage})
}

// Unauthorized sends 401 response.
func Unauthorized(c *gin.Context, msg string) {
	if msg == "" {
		msg = "Unauthorized"
	}
	c.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResp{Error: msg})
}

// Forbidden sends 403 response.
func Forbidden(c *gin.Context, msg string) {
	if msg == "" {
		msg = "Forbidden"
	}
	c.AbortWithStatusJSON(http.StatusForbidden, ErrorResp{Error: msg})
}
