//go:build unit

package middleware_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"shopcompare/internal/handler/httperr"
	"shopcompare/internal/handler/middleware"
	"shopcompare/internal/pkg/config"
	"shopcompare/internal/pkg/cookie"
	usecasemock "shopcompare/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AuthMiddlewareTestSuite struct {
	suite.Suite
	router        *gin.Engine
	mockCtrl      *gomock.Controller
	mockValidator *usecasemock.MockTokenValidator
	userID        uuid.UUID
}

func (s *AuthMiddlewareTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.mockCtrl = gomock.NewController(s.T())
	s.mockValidator = usecasemock.NewMockTokenValidator(s.mockCtrl)
	s.userID = uuid.New()

	m := middleware.NewAuthMiddleware(s.mockValidator)
	whoami := func(c *gin.Context) {
		id, ok := middleware.GetUserID(c)
		c.JSON(http.StatusOK, gin.H{"authenticated": ok, "userId": id, "email": middleware.GetEmail(c)})
	}
	s.router.GET("/private", m.RequireAuth(), whoami)
	s.router.GET("/public", m.OptionalAuth(), whoami)
}

func (s *AuthMiddlewareTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAuthMiddlewareSuite(t *testing.T) {
	suite.Run(t, new(AuthMiddlewareTestSuite))
}

func (s *AuthMiddlewareTestSuite) do(path string, mutate func(r *http.Request)) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if mutate != nil {
		mutate(req)
	}
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func bearer(token string) func(r *http.Request) {
	return func(r *http.Request) { r.Header.Set("Authorization", "Bearer "+token) }
}

func (s *AuthMiddlewareTestSuite) TestRequireAuth() {
	s.Run("bearer header", func() {
		s.mockValidator.EXPECT().ValidateToken("good").Return(s.userID, "a@example.com", nil).Times(1)

		rec := s.do("/private", bearer("good"))
		s.Equal(http.StatusOK, rec.Code)
		s.Contains(rec.Body.String(), s.userID.String())
		s.Contains(rec.Body.String(), "a@example.com")
	})

	s.Run("cookie wins over header", func() {
		s.mockValidator.EXPECT().ValidateToken("from-cookie").Return(s.userID, "a@example.com", nil).Times(1)

		rec := s.do("/private", func(r *http.Request) {
			r.AddCookie(&http.Cookie{Name: cookie.AccessTokenCookieName, Value: "from-cookie"})
			r.Header.Set("Authorization", "Bearer from-header")
		})
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("missing token", func() {
		rec := s.do("/private", nil)
		s.Equal(http.StatusUnauthorized, rec.Code)
		s.Contains(rec.Body.String(), "Access token required")
	})

	s.Run("non-bearer header is ignored", func() {
		rec := s.do("/private", func(r *http.Request) { r.Header.Set("Authorization", "Basic Zm9vOmJhcg==") })
		s.Equal(http.StatusUnauthorized, rec.Code)
	})

	s.Run("invalid token", func() {
		s.mockValidator.EXPECT().ValidateToken("bad").Return(uuid.Nil, "", errors.New("expired")).Times(1)

		rec := s.do("/private", bearer("bad"))
		s.Equal(http.StatusUnauthorized, rec.Code)
		s.Contains(rec.Body.String(), "Invalid or expired token")
	})
}

func (s *AuthMiddlewareTestSuite) TestOptionalAuth() {
	s.Run("anonymous passes through", func() {
		rec := s.do("/public", nil)
		s.Equal(http.StatusOK, rec.Code)
		s.Contains(rec.Body.String(), `"authenticated":false`)
	})

	s.Run("invalid token is treated as anonymous", func() {
		s.mockValidator.EXPECT().ValidateToken("bad").Return(uuid.Nil, "", errors.New("bad signature")).Times(1)

		rec := s.do("/public", bearer("bad"))
		s.Equal(http.StatusOK, rec.Code)
		s.Contains(rec.Body.String(), `"authenticated":false`)
	})

	s.Run("valid token sets the user", func() {
		s.mockValidator.EXPECT().ValidateToken("good").Return(s.userID, "a@example.com", nil).Times(1)

		rec := s.do("/public", bearer("good"))
		s.Equal(http.StatusOK, rec.Code)
		s.Contains(rec.Body.String(), `"authenticated":true`)
	})
}

func TestGetUserIDPtr(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	assert.Nil(t, middleware.GetUserIDPtr(c))

	id := uuid.New()
	c.Set("user_id", id)
	require.NotNil(t, middleware.GetUserIDPtr(c))
	assert.Equal(t, id, *middleware.GetUserIDPtr(c))

	c.Set("user_id", "not-a-uuid")
	assert.Nil(t, middleware.GetUserIDPtr(c))
}

func TestErrorHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.CustomRecovery(), middleware.ErrorHandler())
	r.GET("/public-error", func(c *gin.Context) {
		resp := httperr.Response{Status: http.StatusConflict}
		resp.Error.Code = httperr.CodeConflict
		resp.Error.Message = "taken"
		_ = c.Error(&gin.Error{Err: errors.New("taken"), Type: gin.ErrorTypePublic, Meta: resp})
	})
	r.GET("/private-error", func(c *gin.Context) {
		_ = c.Error(errors.New("hidden detail"))
	})
	r.GET("/ok", func(c *gin.Context) { c.String(http.StatusOK, "fine") })
	r.GET("/panic", func(c *gin.Context) { panic("kaboom") })

	serve := func(path string) *httptest.ResponseRecorder {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		return rec
	}

	t.Run("public error renders its response", func(t *testing.T) {
		rec := serve("/public-error")
		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.JSONEq(t, `{"error":{"code":"CONFLICT","message":"taken"}}`, rec.Body.String())
	})

	t.Run("private error is masked", func(t *testing.T) {
		rec := serve("/private-error")
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.NotContains(t, rec.Body.String(), "hidden detail")
		assert.Contains(t, rec.Body.String(), httperr.CodeInternal)
	})

	t.Run("written responses are left alone", func(t *testing.T) {
		rec := serve("/ok")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "fine", rec.Body.String())
	})

	t.Run("panic is recovered", func(t *testing.T) {
		rec := serve("/panic")
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Contains(t, rec.Body.String(), "Internal server error")
	})
}

func TestLogger(t *testing.T) {
	gin.SetMode(gin.TestMode)
	path := filepath.Join(t.TempDir(), "api.log")
	cfg := config.NewTestConfig().Log
	cfg.Level = "info"
	cfg.File = path
	cfg.FileMaxSizeMB = 1

	logger := middleware.NewLogger(cfg)
	t.Cleanup(func() { _ = logger.Close() })

	var requestID string
	r := gin.New()
	r.Use(logger.LoggingMiddleware())
	r.GET("/ping", func(c *gin.Context) {
		requestID = middleware.GetRequestID(c)
		c.String(http.StatusTeapot, "pong")
	})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))
	require.Equal(t, http.StatusTeapot, rec.Code)
	require.NotEmpty(t, requestID)

	require.NoError(t, logger.Close())
	out, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(out), "Request completed")
	assert.Contains(t, string(out), requestID)
	assert.Contains(t, string(out), "status_code=418")
}
