package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// VaultFetchBulk lists a user's vaults. An unknown userId yields an
// empty list, not an error.
func (a *API) VaultFetchBulk(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)

	userID, ok := uintQuery(c, "userId")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "Invalid user ID",
			"requestID": requestID,
		})
		return
	}

	vaults, err := a.Store.GetVaultsByUserID(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to fetch vaults", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusOK, vaults)
}
