package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Amarhadpad/artistgrade/internal/domain/model"
	"github.com/Amarhadpad/artistgrade/internal/pkg/session"
)

const (
	// UserIDContextKey is a gin context key for authenticated user identifier.
	UserIDContextKey  = "userID"
	sessionCookieName = "artistgrade_session"
)

// SessionParser resolves a session token into a user identifier.
type SessionParser interface {
	ParseSession(token string) (int64, error)
}

// UserProvider loads users for admin checks.
type UserProvider interface {
	User(ctx context.Context, id int64) (*model.User, error)
}

// AuthRequired ensures the request carries a valid session.
func AuthRequired(parser SessionParser) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}

		userID, err := parser.ParseSession(token)
		if err != nil {
			if errors.Is(err, session.ErrInvalidSession) {
				c.AbortWithStatus(http.StatusUnauthorized)
				return
			}
			c.AbortWithStatus(http.StatusInternalServerError)
			return
		}

		c.Set(UserIDContextKey, userID)
		c.Next()
	}
}

// AdminRequired ensures the authenticated user has admin privileges.
// Must run after AuthRequired.
func AdminRequired(users UserProvider) gin.HandlerFunc {
	return func(c *gin.Context) {
		val, ok := c.Get(UserIDContextKey)
		if !ok {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}
		id, _ := val.(int64)
		user, err := users.User(c.Request.Context(), id)
		if err != nil {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}
		if !user.IsAdmin {
			c.AbortWithStatus(http.StatusForbidden)
			return
		}
		c.Next()
	}
}

func extractToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if strings.HasPrefix(strings.ToLower(authHeader), "bearer ") {
		return strings.TrimSpace(authHeader[7:])
	}

	if cookie, err := c.Cookie(sessionCookieName); err == nil {
		return cookie
	}
	return ""
}

// SetSessionCookie writes session token cookie to response.
func SetSessionCookie(c *gin.Context, token string) {
	c.SetCookie(sessionCookieName, token, 0, "/", "", false, true)
	c.Header("Authorization", "Bearer "+token)
}

// ClearSessionCookie removes the session cookie from the client.
func ClearSessionCookie(c *gin.Context) {
	c.SetCookie(sessionCookieName, "", -1, "/", "", false, true)
}
