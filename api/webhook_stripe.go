package api

import (
	"echovault/vault-api/config"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// WebhookStripe verifies the event signature against the raw body and
// mirrors subscription lifecycle changes onto the user row.
func (a *API) WebhookStripe(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)

	if !config.BillingConfigured() || a.Billing == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"error":     "Webhook service is not configured",
			"requestID": requestID,
		})
		return
	}

	payload, err := io.ReadAll(io.LimitReader(c.Request.Body, 1<<20))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "Failed to read request body",
			"requestID": requestID,
		})
		return
	}

	event, err := a.Billing.VerifyEvent(payload, c.GetHeader("Stripe-Signature"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "Webhook signature verification failed",
			"requestID": requestID,
		})

		zap.L().Warn("Webhook signature rejected", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	if err := a.Billing.HandleEvent(event); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Error handling webhook event",
			"requestID": requestID,
		})

		zap.L().Error("Failed to handle webhook event", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"received": true,
	})
}
