package middleware

import (
	"log/slog"
	"strings"

	"shopcompare/internal/handler/httperr"
	"shopcompare/internal/pkg/cookie"
	"shopcompare/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	ctxUserIDKey    = "user_id"
	ctxEmailKey     = "user_email"
	ctxRequestIDKey = "request_id"
)

type AuthMiddleware struct {
	tokenValidator usecase.TokenValidator
}

func NewAuthMiddleware(tokenValidator usecase.TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{
		tokenValidator: tokenValidator,
	}
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			httperr.Unauthorized(c, "Access token required")
			return
		}

		userID, email, err := m.tokenValidator.ValidateToken(token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			httperr.Unauthorized(c, "Invalid or expired token")
			return
		}

		c.Set(ctxUserIDKey, userID)
		c.Set(ctxEmailKey, email)
		c.Next()
	}
}

// OptionalAuth authenticates the request if a valid token is present and
// otherwise lets it through anonymously.
func (m *AuthMiddleware) OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			c.Next()
			return
		}

		userID, email, err := m.tokenValidator.ValidateToken(token)
		if err != nil {
			c.Next()
			return
		}

		c.Set(ctxUserIDKey, userID)
		c.Set(ctxEmailKey, email)
		c.Next()
	}
}

// Cookie first, then the Authorization header.
func extractToken(c *gin.Context) string {
	if token := cookie.GetAccessToken(c); token != "" {
		return token
	}
	authHeader := c.GetHeader("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimSpace(authHeader[len("Bearer "):])
	}
	return ""
}

func GetUserID(c *gin.Context) (uuid.UUID, bool) {
	userID, exists := c.Get(ctxUserIDKey)
	if !exists {
		return uuid.Nil, false
	}

	id, ok := userID.(uuid.UUID)
	return id, ok
}

// GetUserIDPtr is GetUserID for handlers that accept anonymous callers.
func GetUserIDPtr(c *gin.Context) *uuid.UUID {
	id, ok := GetUserID(c)
	if !ok {
		return nil
	}
	return &id
}

func GetEmail(c *gin.Context) string {
	return c.GetString(ctxEmailKey)
}
