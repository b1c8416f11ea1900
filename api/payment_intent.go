package api

import (
	"echovault/vault-api/config"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type paymentIntentBody struct {
	// Amount in cents
	Amount   int64  `json:"amount" binding:"required,gt=0"`
	Currency string `json:"currency"`
}

func (a *API) PaymentIntentCreate(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)

	if !config.BillingConfigured() || a.Billing == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"error":     "Payment service is not configured",
			"requestID": requestID,
		})
		return
	}

	var data paymentIntentBody
	if err := c.ShouldBindJSON(&data); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     err.Error(),
			"requestID": requestID,
		})
		return
	}

	currency := data.Currency
	if currency == "" {
		currency = "usd"
	}

	userID := c.MustGet("userID").(uint)

	clientSecret, err := a.Billing.CreatePaymentIntent(userID, data.Amount, currency)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Failed to create payment intent",
			"requestID": requestID,
		})

		zap.L().Error("Failed to create payment intent", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"clientSecret": clientSecret,
	})
}
