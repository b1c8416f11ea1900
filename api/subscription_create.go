package api

import (
	"echovault/vault-api/billing"
	"echovault/vault-api/config"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type subscriptionCreateBody struct {
	TierName string `json:"tierName" binding:"required"`
}

func (a *API) SubscriptionCreate(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)

	if !config.BillingConfigured() || a.Billing == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"error":     "Subscription service is not configured",
			"requestID": requestID,
		})
		return
	}

	var data subscriptionCreateBody
	if err := c.ShouldBindJSON(&data); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     err.Error(),
			"requestID": requestID,
		})
		return
	}

	userID := c.MustGet("userID").(uint)

	clientSecret, subscriptionID, err := a.Billing.CreateSubscription(userID, data.TierName)
	if err != nil {
		if err == billing.ErrTierUnknown {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":     "Unknown subscription tier",
				"requestID": requestID,
			})
			return
		}

		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Failed to create subscription",
			"requestID": requestID,
		})

		zap.L().Error("Failed to create subscription", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"clientSecret":   clientSecret,
		"subscriptionId": subscriptionID,
	})
}
