package middleware

import (
	"net/http"

	"echovault/vault-api/pkg/session"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// NewSessionMiddleware resolves the session cookie against the store
// and sets userID for downstream handlers. Aborts with 401 when the
// cookie is missing, expired or unknown.
func NewSessionMiddleware(sessions session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.MustGet("requestID").(string)

		sid, err := c.Cookie(session.Cookie)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error":     "Unauthorized",
				"requestID": requestID,
			})
			return
		}

		data, err := sessions.Get(c.Request.Context(), sid)
		if err != nil {
			if err != session.ErrNotFound {
				zap.L().Error("Failed to look up session", zap.Error(err), zap.String("requestID", requestID))
			}

			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error":     "Unauthorized",
				"requestID": requestID,
			})
			return
		}

		c.Set("sessionID", sid)
		c.Set("userID", data.UserID)
		c.Next()
	}
}
