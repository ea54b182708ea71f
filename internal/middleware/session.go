package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"safari_tours/internal/session"
)

// SessionUserKey is where the resolved session identity is stored on
// the gin context.
const SessionUserKey = "session_user"

// RequireSession aborts with 401 unless the request carries a valid
// session.
func RequireSession(sessions *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		data, ok := sessions.Current(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Not authenticated"})
			return
		}
		c.Set(SessionUserKey, data)
		c.Next()
	}
}

// RequireAdmin aborts with 401 when no session is present and 403 when
// the session lacks the admin role.
func RequireAdmin(sessions *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		data, ok := sessions.Current(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Not authenticated"})
			return
		}
		if data.Role != "admin" {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "Admin access required"})
			return
		}
		c.Set(SessionUserKey, data)
		c.Next()
	}
}
