package api

import (
	"net/http"

	"parking-reservation/internal/handler/httperr"
	"parking-reservation/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

// classify maps an error category to its HTTP status and envelope code.
// Categories are disjoint, so the first match wins.
func classify(err error) (int, httperr.Code) {
	switch errs.Category(err) {
	case errs.ErrInvalidArgument:
		return http.StatusBadRequest, httperr.CodeInvalidArgument
	case errs.ErrNotFound:
		return http.StatusNotFound, httperr.CodeNotFound
	case errs.ErrConflict:
		return http.StatusConflict, httperr.CodeConflict
	case errs.ErrUnavailable:
		return http.StatusServiceUnavailable, httperr.CodeUnavailable
	default:
		return http.StatusInternalServerError, httperr.CodeInternal
	}
}

func abortWithUseCaseError(c *gin.Context, err error) {
	status, code := classify(err)

	var msg string
	switch status {
	case http.StatusServiceUnavailable:
		msg = "Service temporarily unavailable"
	case http.StatusInternalServerError:
		msg = "Internal server error"
	default:
		// domain messages carry no storage detail
		msg = err.Error()
	}
	httperr.AbortWithError(c, status, code, err, msg)
}

func abortBadRequest(c *gin.Context, err error) {
	httperr.AbortWithError(c, http.StatusBadRequest, httperr.CodeInvalidArgument, err, "Invalid request format")
}
