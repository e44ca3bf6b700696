package response

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	pkgErrors "honorly/pkg/errors"
)

// OK sends 200 JSON with data.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, Resp{Success: true, Data: data})
}

// OKWithWarning sends 200 for an operation whose primary effect succeeded
// while a secondary effect (usually an email) did not.
func OKWithWarning(c *gin.Context, data any, warning string) {
	c.JSON(http.StatusOK, Resp{Success: true, Warning: warning, Data: data})
}

// Error sends an error body. HTTPErrors carry their own status; anything
// else is reported as a 500 with a generic message.
func Error(c *gin.Context, err error) {
	he, ok := pkgErrors.As(err)
	if !ok {
		InternalError(c, err)
		return
	}

	body := ErrResp{Error: he.Message}
	if len(he.Fields) > 0 {
		body.Details = he.Fields
	}
	c.JSON(he.Code, body)
}

// InternalError sends 500 internal server error.
func InternalError(c *gin.Context, err error) {
	c.JSON(http.StatusInternalServerError, ErrResp{Error: DefaultErrorMessage})
}

// Unauthorized sends 401 response.
func Unauthorized(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, ErrResp{Error: "Unauthorized"})
}

// Forbidden sends 403 response.
func Forbidden(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusForbidden, ErrResp{Error: "Forbidden"})
}

// RateLimited aborts with 429 and a Retry-After header.
func RateLimited(c *gin.Context, retryAfterSeconds int) {
	if retryAfterSeconds < 1 {
		retryAfterSeconds = 1
	}
	c.Header("Retry-After", strconv.Itoa(retryAfterSeconds))
	c.AbortWithStatusJSON(http.StatusTooManyRequests, ErrResp{
		Error:       "Too many requests. Please try again later.",
		RateLimited: true,
		RetryAfter:  retryAfterSeconds,
	})
}
