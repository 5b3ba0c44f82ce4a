package middleware

import (
	"log/slog"
	"net/http"

	"sauna-reservation/internal/handler/httperr"
	"sauna-reservation/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

// ErrorHandler renders errors that handlers recorded without writing a body,
// and logs the cause of every 5xx response.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		logServerErrors(c)

		if c.Writer.Written() {
			return
		}
		// latest error wins
		for i := len(c.Errors) - 1; i >= 0; i-- {
			err := c.Errors[i]

			if err.IsType(gin.ErrorTypePublic) {
				if resp, ok := err.Meta.(httperr.Response); ok {
					c.JSON(resp.Status, resp)
					return
				}
			}
		}
		if status := c.Writer.Status(); status != http.StatusOK {
			c.Status(status)
			c.Writer.WriteHeaderNow()
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": gin.H{"message": "Internal server error"}})
	}
}

func logServerErrors(c *gin.Context) {
	if len(c.Errors) == 0 {
		return
	}
	status := c.Writer.Status()
	if !c.Writer.Written() && status == http.StatusOK {
		status = http.StatusInternalServerError
	}
	for _, err := range c.Errors {
		if resp, ok := err.Meta.(httperr.Response); ok {
			status = resp.Status
		}
		if status < http.StatusInternalServerError {
			continue
		}
		slog.Error("request failed",
			"request_id", GetRequestID(c),
			"method", c.Request.Method,
			"path", c.FullPath(),
			"status", status,
			"error", err.Err.Error(),
			"stack", errs.ExtractStackLines(err.Err, 12),
		)
	}
}

func CustomRecovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				slog.Error("recovered from panic", "error", err, "method", c.Request.Method, "path", c.Request.URL.Path)

				resp := httperr.Response{Status: http.StatusInternalServerError}
				resp.Error.Message = "Internal server error"

				c.AbortWithStatusJSON(http.StatusInternalServerError, resp)
			}
		}()
		c.Next()
	}
}
