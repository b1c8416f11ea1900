package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SubscriptionTiers lists the purchasable tiers. Public so the
// pricing page works without a session.
func (a *API) SubscriptionTiers(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)

	tiers, err := a.Store.GetActiveTiers()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to fetch subscription tiers", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusOK, tiers)
}
