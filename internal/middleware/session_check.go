package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"io.resqforce.server/internal/session"
)

// contextSessionKey is where RequireSession stores the resolved session.
const contextSessionKey = "session"

// contextTokenKey is where RequireSession stores the raw session token.
const contextTokenKey = "session_token"

// RequireSession resolves the session cookie and aborts with 401 when it is
// missing or stale. Handlers behind it can rely on SessionFrom.
func RequireSession(sessions *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(session.CookieName)
		if err != nil || token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			c.Abort()
			return
		}

		sess, err := sessions.Get(c.Request.Context(), token)
		if err != nil {
			if errors.Is(err, session.ErrNotFound) {
				c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			}
			c.Abort()
			return
		}

		c.Set(contextSessionKey, sess)
		c.Set(contextTokenKey, token)
		c.Next()
	}
}

// SessionFrom returns the session placed in the context by RequireSession.
func SessionFrom(c *gin.Context) (session.Session, bool) {
	v, exists := c.Get(contextSessionKey)
	if !exists {
		return session.Session{}, false
	}
	s, ok := v.(session.Session)
	return s, ok
}

// TokenFrom returns the raw session token for handlers that rewrite the
// session (for example after a location update).
func TokenFrom(c *gin.Context) string {
	return c.GetString(contextTokenKey)
}
