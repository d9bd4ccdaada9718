package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	pkgAuth "github.com/quickfuel/fuelquote/internal/pkg/auth"
)

const (
	// UserIDContextKey is a gin context key for authenticated user identifier.
	UserIDContextKey  = "userID"
	sessionCookieName = "fuelquote_session"
)

// TokenParser validates session tokens for the auth middleware.
type TokenParser interface {
	ParseToken(token string) (int64, error)
}

// AuthRequired ensures the request carries a valid session before reaching
// the handler. Anonymous requests are redirected to the login page, matching
// the browser form flow.
func AuthRequired(parser TokenParser) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			redirectToLogin(c)
			return
		}

		userID, err := parser.ParseToken(token)
		if err != nil {
			if err == pkgAuth.ErrInvalidToken {
				redirectToLogin(c)
				return
			}
			c.AbortWithStatus(http.StatusInternalServerError)
			return
		}

		c.Set(UserIDContextKey, userID)
		c.Next()
	}
}

func redirectToLogin(c *gin.Context) {
	c.Redirect(http.StatusSeeOther, "/login")
	c.Abort()
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

// SetSessionCookie writes the session token cookie to the response.
func SetSessionCookie(c *gin.Context, token string) {
	c.SetCookie(sessionCookieName, token, 0, "/", "", false, true)
	c.Header("Authorization", "Bearer "+token)
}

// ClearSessionCookie removes the session cookie. Safe to call when no
// session exists.
func ClearSessionCookie(c *gin.Context) {
	c.SetCookie(sessionCookieName, "", -1, "/", "", false, true)
}
