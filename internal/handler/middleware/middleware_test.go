//go:build unit

package middleware_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"parking-reservation/internal/domain/auth"
	"parking-reservation/internal/handler/httperr"
	"parking-reservation/internal/handler/middleware"
	"parking-reservation/internal/pkg/config"
	testhttp "parking-reservation/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

type stubValidator struct {
	subject string
	role    auth.Role
	err     error
}

func (s stubValidator) ValidateToken(string) (string, auth.Role, error) {
	return s.subject, s.role, s.err
}

type AuthMiddlewareTestSuite struct {
	suite.Suite
}

func TestAuthMiddlewareSuite(t *testing.T) {
	suite.Run(t, new(AuthMiddlewareTestSuite))
}

func (s *AuthMiddlewareTestSuite) router(v stubValidator) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	m := middleware.NewAuthMiddleware(v)
	r.GET("/admin", m.RequireAuth(), m.RequireRoleAtLeast(auth.RoleAdmin), func(c *gin.Context) {
		subject, _ := middleware.GetSubject(c)
		c.String(http.StatusOK, subject)
	})
	return r
}

func (s *AuthMiddlewareTestSuite) do(r *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func (s *AuthMiddlewareTestSuite) TestRequireAdmin() {
	cases := []struct {
		name   string
		v      stubValidator
		header string
		want   int
	}{
		{name: "missing header", v: stubValidator{}, header: "", want: http.StatusUnauthorized},
		{name: "not a bearer token", v: stubValidator{}, header: "Basic abc", want: http.StatusUnauthorized},
		{name: "invalid token", v: stubValidator{err: errors.New("bad")}, header: "Bearer x", want: http.StatusUnauthorized},
		{name: "operator is forbidden", v: stubValidator{subject: "op", role: auth.RoleOperator}, header: "Bearer x", want: http.StatusForbidden},
		{name: "admin passes", v: stubValidator{subject: "root", role: auth.RoleAdmin}, header: "Bearer x", want: http.StatusOK},
	}
	for _, tc := range cases {
		s.Run(tc.name, func() {
			w := s.do(s.router(tc.v), tc.header)
			s.Equal(tc.want, w.Code)
			switch tc.want {
			case http.StatusOK:
				s.Equal("root", w.Body.String())
			case http.StatusUnauthorized:
				testhttp.AssertErrorCode(s.T(), w, tc.want, httperr.CodeUnauthorized)
			case http.StatusForbidden:
				testhttp.AssertErrorCode(s.T(), w, tc.want, httperr.CodeForbidden)
			}
		})
	}
}

func TestLoggingMiddleware_PropagatesRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	logger := middleware.NewLogger(config.NewTestConfig().Log)
	r := gin.New()
	r.Use(logger.LoggingMiddleware())
	r.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, middleware.GetRequestID(c))
	})

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("X-Request-ID", "req-123")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, "req-123", w.Body.String())
	testhttp.AssertHeaders(t, w, map[string]string{"X-Request-ID": "req-123"})

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestRecovery_ReturnsEnvelopeWithRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	logger := middleware.NewLogger(config.NewTestConfig().Log)
	r := gin.New()
	r.Use(middleware.CustomRecovery(), logger.LoggingMiddleware())
	r.GET("/boom", func(*gin.Context) { panic("boom") })

	req := httptest.NewRequest(http.MethodGet, "/boom", nil)
	req.Header.Set("X-Request-ID", "req-boom")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	resp := testhttp.AssertErrorResponse(t, w, http.StatusInternalServerError, "Internal server error")
	assert.Equal(t, httperr.CodeInternal, resp.Error.Code)
	assert.Equal(t, "req-boom", resp.RequestID)
}

func TestCORS_ExposesRequestHeaders(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cfg := config.CORSConfig{
		AllowOrigins: []string{"http://localhost:3000"},
		AllowMethods: []string{"GET", "POST"},
		AllowHeaders: []string{"Content-Type"},
	}
	r := gin.New()
	r.Use(middleware.NewCORSMiddleware(cfg))
	r.GET("/api/slots/reserved-slots", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/api/slots/reserved-slots", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))
	exposed := strings.ToLower(w.Header().Get("Access-Control-Expose-Headers"))
	assert.Contains(t, exposed, "x-request-id")
	assert.Contains(t, exposed, "retry-after")
}
