package middleware

import (
	"net/http"
	"strings"

	"parking-reservation/internal/domain/auth"
	"parking-reservation/internal/handler/httperr"
	"parking-reservation/internal/pkg/errs"
	"parking-reservation/internal/usecase"

	"github.com/gin-gonic/gin"
)

var (
	errMissingToken     = errs.New("missing bearer token")
	errRoleNotResolved  = errs.New("role checked before authentication")
	errInsufficientRole = errs.New("role below required level")
)

type AuthMiddleware struct {
	tokenValidator usecase.TokenValidator
}

const (
	ctxSubjectKey = "auth_subject"
	ctxRoleKey    = "auth_role"
)

func NewAuthMiddleware(tokenValidator usecase.TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{
		tokenValidator: tokenValidator,
	}
}

func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		return ""
	}
	return strings.TrimSpace(header[len("Bearer "):])
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			httperr.AbortWithError(c, http.StatusUnauthorized, httperr.CodeUnauthorized,
				errMissingToken, "Access token required")
			return
		}

		subject, role, err := m.tokenValidator.ValidateToken(token)
		if err != nil {
			httperr.AbortWithError(c, http.StatusUnauthorized, httperr.CodeUnauthorized,
				errs.Wrap(err, "validate token"), "Invalid or expired token")
			return
		}

		c.Set(ctxSubjectKey, subject)
		c.Set(ctxRoleKey, role)
		c.Next()
	}
}

// RequireRoleAtLeast must run after RequireAuth.
func (m *AuthMiddleware) RequireRoleAtLeast(minRole auth.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, ok := GetRole(c)
		if !ok {
			httperr.AbortWithError(c, http.StatusInternalServerError, httperr.CodeInternal,
				errRoleNotResolved, "Internal server error")
			return
		}

		if !role.AtLeast(minRole) {
			httperr.AbortWithError(c, http.StatusForbidden, httperr.CodeForbidden,
				errs.Wrapf(errInsufficientRole, "%s < %s", role, minRole), "Insufficient permissions")
			return
		}

		c.Next()
	}
}

func GetSubject(c *gin.Context) (string, bool) {
	v, exists := c.Get(ctxSubjectKey)
	if !exists {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

func GetRole(c *gin.Context) (auth.Role, bool) {
	v, exists := c.Get(ctxRoleKey)
	if !exists {
		return "", false
	}
	role, ok := v.(auth.Role)
	return role, ok
}
