package httperr

import (
	"github.com/gin-gonic/gin"
)

// Response is the flat error envelope every endpoint returns.
type Response struct {
	Status int    `json:"-"`
	Error  string `json:"error"`
}

// Abort writes the error body and records the cause on the context so the
// logging middleware can report it.
func Abort(c *gin.Context, status int, err error, msg string) {
	if err == nil {
		panic("httperr.Abort: err cannot be nil")
	}

	resp := Response{Status: status, Error: msg}
	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

// AbortWithFields is Abort with extra top-level body fields, for responses
// that carry data alongside the message (e.g. remaining capacity).
func AbortWithFields(c *gin.Context, status int, err error, msg string, fields gin.H) {
	if err == nil {
		panic("httperr.AbortWithFields: err cannot be nil")
	}

	body := gin.H{"error": msg}
	for k, v := range fields {
		body[k] = v
	}
	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: Response{Status: status, Error: msg},
	})
	c.AbortWithStatusJSON(status, body)
}
