// Package httperr defines the JSON error envelope shared by every endpoint.
package httperr

import (
	"github.com/gin-gonic/gin"
)

// Code is the machine-readable half of an error; clients branch on it
// instead of parsing Message.
type Code string

const (
	CodeInvalidArgument Code = "invalid_argument"
	CodeUnauthorized    Code = "unauthorized"
	CodeForbidden       Code = "forbidden"
	CodeNotFound        Code = "not_found"
	CodeConflict        Code = "conflict"
	CodeRateLimited     Code = "rate_limited"
	CodeUnavailable     Code = "unavailable"
	CodeInternal        Code = "internal"
)

// RequestIDKey is the gin context key holding the request id.
const RequestIDKey = "request_id"

type Body struct {
	Code    Code   `json:"code" example:"conflict"`
	Message string `json:"message" example:"slot A1 held until 2025-03-01T10:00:00Z: slot is currently held"`
}

type Response struct {
	Status    int    `json:"-"`
	Error     Body   `json:"error"`
	RequestID string `json:"requestId,omitempty"`
}

func New(c *gin.Context, status int, code Code, msg string) Response {
	return Response{
		Status:    status,
		Error:     Body{Code: code, Message: msg},
		RequestID: c.GetString(RequestIDKey),
	}
}

// AbortWithError writes the envelope and records err on the context, where
// the request logger picks it up.
func AbortWithError(c *gin.Context, status int, code Code, err error, msg string) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := New(c, status, code, msg)
	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}
