package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func (a *API) RecipientFetchBulk(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)

	userID, ok := uintQuery(c, "userId")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "Invalid user ID",
			"requestID": requestID,
		})
		return
	}

	recipients, err := a.Store.GetRecipientsByUserID(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to fetch recipients", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusOK, recipients)
}
