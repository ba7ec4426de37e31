package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/om607397-wq/namaa/internal/core"
)

// RequireSession guards routes that only make sense with a signed-in
// identity (the cloud sync operations). The service holds at most one
// session; requests arriving without one are rejected before any handler
// logic runs.
func RequireSession(sessions *core.SessionManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := sessions.Current()
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "no signed-in user",
			})
			return
		}
		c.Set("identity", id)
		c.Next()
	}
}
