package api

import (
	"echovault/vault-api/pkg/session"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// AuthSession reports session state without requiring one, so the
// frontend can probe it on load.
func (a *API) AuthSession(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)

	sid, err := c.Cookie(session.Cookie)
	if err != nil {
		c.JSON(http.StatusOK, gin.H{"isAuthenticated": false})
		return
	}

	data, err := a.Sessions.Get(c.Request.Context(), sid)
	if err != nil {
		c.JSON(http.StatusOK, gin.H{"isAuthenticated": false})
		return
	}

	user, err := a.Store.GetUser(data.UserID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusOK, gin.H{"isAuthenticated": false})
			return
		}

		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"isAuthenticated": true,
		"user":            user,
	})
}
