package api

import (
	"echovault/vault-api/model"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// DeliveryFetchBulk lists deliveries for a user, a recipient, or a
// content item, whichever query parameter is present.
func (a *API) DeliveryFetchBulk(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)

	var deliveries []model.Delivery
	var err error

	if userID, ok := uintQuery(c, "userId"); ok {
		deliveries, err = a.Store.GetDeliveriesByUserID(userID)
	} else if recipientID, ok := uintQuery(c, "recipientId"); ok {
		deliveries, err = a.Store.GetDeliveriesByRecipientID(recipientID)
	} else if contentItemID, ok := uintQuery(c, "contentItemId"); ok {
		deliveries, err = a.Store.GetDeliveriesByContentItemID(contentItemID)
	} else {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "Invalid user, recipient or content item ID",
			"requestID": requestID,
		})
		return
	}

	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to fetch deliveries", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusOK, deliveries)
}
