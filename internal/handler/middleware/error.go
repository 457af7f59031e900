package middleware

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"parking-reservation/internal/handler/httperr"

	"github.com/gin-gonic/gin"
)

var errNoResponse = errors.New("handler finished without writing a response")

// ErrorHandler turns the last public error into the JSON envelope when the
// handler did not write a body itself.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() {
			return
		}
		for i := len(c.Errors) - 1; i >= 0; i-- {
			err := c.Errors[i]
			if !err.IsType(gin.ErrorTypePublic) {
				continue
			}
			if resp, ok := err.Meta.(httperr.Response); ok {
				c.JSON(resp.Status, resp)
				return
			}
		}
		if status := c.Writer.Status(); status != http.StatusOK {
			c.Status(status)
			c.Writer.WriteHeaderNow()
			return
		}
		_ = c.Error(errNoResponse)
		c.JSON(http.StatusInternalServerError,
			httperr.New(c, http.StatusInternalServerError, httperr.CodeInternal, "Internal server error"))
	}
}

// CustomRecovery answers a panicking request with the internal error
// envelope. It logs the panic with its request id.
func CustomRecovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				slog.Error("recovered from panic",
					"error", fmt.Sprint(rec),
					"method", c.Request.Method,
					"route", c.FullPath(),
					"request_id", GetRequestID(c),
				)

				c.AbortWithStatusJSON(http.StatusInternalServerError,
					httperr.New(c, http.StatusInternalServerError, httperr.CodeInternal, "Internal server error"))
			}
		}()
		c.Next()
	}
}
