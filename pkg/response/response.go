package response

import (
	"errors"
	"io"
	"net/http"

	"github.com/fekuna/omnipos-report-service/pkg/middleware"
	"github.com/gin-gonic/gin"
)

// Error writes {message, request_id} and, for client errors, the cause under "error".
// Server-side causes are never echoed back; callers log them.
func Error(c *gin.Context, statusCode int, message string, err error) {
	body := gin.H{
		"message":    message,
		"request_id": middleware.GetRequestID(c),
	}
	if statusCode < http.StatusInternalServerError {
		errMsg := ""
		if err != nil {
			errMsg = err.Error()
		}
		body["error"] = errMsg
	}
	if err != nil {
		_ = c.Error(err)
	}
	c.AbortWithStatusJSON(statusCode, body)
}

// Bind fills obj from query parameters and then from a JSON body when one is sent.
// Body fields win over query fields. An empty body is not an error.
func Bind(c *gin.Context, obj any) error {
	if err := c.ShouldBindQuery(obj); err != nil {
		return err
	}
	if c.Request.Body == nil || c.Request.ContentLength == 0 {
		return nil
	}
	if err := c.ShouldBindJSON(obj); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}
