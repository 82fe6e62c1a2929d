//go:build unit || e2e

package authtest

import (
	"net/http"
	"testing"

	"shopcompare/internal/handler/dto/request"
	"shopcompare/internal/pkg/cookie"
	"shopcompare/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

const defaultPassword = "password123"

// RegisterUser signs up through the API and returns the access token cookie.
func RegisterUser(t *testing.T, router *gin.Engine, name, email string) *http.Cookie {
	t.Helper()

	w := httptest.PerformRequest(t, router, http.MethodPost, "/api/auth/register",
		request.RegisterRequest{Name: name, Email: email, Password: defaultPassword}, "")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	return httptest.RequireCookie(t, w, cookie.AccessTokenCookieName)
}

func LoginUser(t *testing.T, router *gin.Engine, email, password string) *http.Cookie {
	t.Helper()

	w := httptest.PerformRequest(t, router, http.MethodPost, "/api/auth/login",
		request.LoginRequest{Email: email, Password: password}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	return httptest.RequireCookie(t, w, cookie.AccessTokenCookieName)
}

func LogoutUser(t *testing.T, router *gin.Engine, cookies []*http.Cookie) {
	t.Helper()

	w := httptest.PerformRequestWithCookies(t, router, http.MethodPost, "/api/auth/logout", nil, cookies, "")
	require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())
}
