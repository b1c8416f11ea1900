package api

import (
	"echovault/vault-api/config"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func (a *API) SubscriptionCancel(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)

	if !config.BillingConfigured() || a.Billing == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"error":     "Subscription service is not configured",
			"requestID": requestID,
		})
		return
	}

	userID := c.MustGet("userID").(uint)

	if err := a.Billing.CancelSubscription(userID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Failed to cancel subscription",
			"requestID": requestID,
		})

		zap.L().Error("Failed to cancel subscription", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Subscription canceled successfully",
	})
}
