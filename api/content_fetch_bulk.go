package api

import (
	"echovault/vault-api/model"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ContentFetchBulk lists content items for a vault or for a user,
// depending on which query parameter is present. vaultId wins when
// both are given.
func (a *API) ContentFetchBulk(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)

	var items []model.ContentItem
	var err error

	if vaultID, ok := uintQuery(c, "vaultId"); ok {
		items, err = a.Store.GetContentItemsByVaultID(vaultID)
	} else if userID, ok := uintQuery(c, "userId"); ok {
		items, err = a.Store.GetContentItemsByUserID(userID)
	} else {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "Invalid vault or user ID",
			"requestID": requestID,
		})
		return
	}

	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to fetch content items", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusOK, items)
}
