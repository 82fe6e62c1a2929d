package cookie

import (
	"net/http"
	"time"

	"shopcompare/internal/pkg/config"

	"github.com/gin-gonic/gin"
)

const (
	AccessTokenCookieName = "access_token"
	SessionCookieName     = "sessionId"
)

func SetAccessToken(c *gin.Context, cfg config.CookieConfig, token string, expiry time.Duration) {
	c.SetSameSite(getSameSite(cfg.SameSite))
	c.SetCookie(
		AccessTokenCookieName,
		token,
		int(expiry.Seconds()),
		"/",
		cfg.Domain,
		cfg.Secure,
		true, // HttpOnly
	)
}

func ClearAccessToken(c *gin.Context, cfg config.CookieConfig) {
	c.SetSameSite(getSameSite(cfg.SameSite))
	c.SetCookie(AccessTokenCookieName, "", -1, "/", cfg.Domain, cfg.Secure, true)
}

func GetAccessToken(c *gin.Context) string {
	token, _ := c.Cookie(AccessTokenCookieName)
	return token
}

// SetSessionID issues the anonymous session cookie used for search history.
func SetSessionID(c *gin.Context, cfg config.CookieConfig, sessionID string) {
	c.SetSameSite(getSameSite(cfg.SameSite))
	c.SetCookie(
		SessionCookieName,
		sessionID,
		int(cfg.SessionMaxAge.Seconds()),
		"/",
		cfg.Domain,
		cfg.Secure,
		true,
	)
}

func GetSessionID(c *gin.Context) string {
	id, _ := c.Cookie(SessionCookieName)
	return id
}

func getSameSite(sameSite string) http.SameSite {
	switch sameSite {
	case "Strict":
		return http.SameSiteStrictMode
	case "Lax":
		return http.SameSiteLaxMode
	case "None":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}
