package api

import (
	"echovault/vault-api/pkg/session"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

func (a *API) AuthLogout(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)

	sid, err := c.Cookie(session.Cookie)
	if err == nil && sid != "" {
		if err := a.Sessions.Delete(c.Request.Context(), sid); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"error":     "Internal server error",
				"requestID": requestID,
			})

			zap.L().Error("Failed to delete session", zap.Error(err), zap.String("requestID", requestID))
			return
		}
	}

	c.SetCookie(session.Cookie, "", -1, "/", "", viper.GetBool("host.ssl.enabled"), true)
	c.JSON(http.StatusOK, gin.H{
		"message": "Logged out successfully",
	})
}
