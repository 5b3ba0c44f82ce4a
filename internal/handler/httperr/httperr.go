package httperr

import (
	"github.com/gin-gonic/gin"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// ReasonDetail carries a machine readable code next to the human message,
// e.g. "too_late" on a refused cancellation.
type ReasonDetail struct {
	Reason string `json:"reason"`
}

// AbortWithError keeps err on the gin context for the logging middleware; clients only see msg and detail.
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

func AbortWithReason(c *gin.Context, status int, err error, msg, reason string) {
	AbortWithError(c, status, err, msg, ReasonDetail{Reason: reason})
}
