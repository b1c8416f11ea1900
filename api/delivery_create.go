package api

import (
	"echovault/vault-api/model"
	"echovault/vault-api/validators"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type deliveryCreateBody struct {
	ContentItemID    uint       `json:"contentItemId" binding:"required"`
	RecipientID      uint       `json:"recipientId" binding:"required"`
	UserID           uint       `json:"userId" binding:"required"`
	ScheduledDate    *time.Time `json:"scheduledDate"`
	TriggerCondition string     `json:"triggerCondition"`
	DeliveryMethod   string     `json:"deliveryMethod"`
	AdditionalNotes  string     `json:"additionalNotes"`
}

// DeliveryCreate records a scheduling row. The trigger is exactly one
// of a scheduled date or a condition string; nothing in this system
// ever executes it.
func (a *API) DeliveryCreate(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)

	var data deliveryCreateBody
	if err := c.ShouldBindJSON(&data); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     err.Error(),
			"requestID": requestID,
		})
		return
	}

	triggerType, err := validators.DeliveryTrigger(data.ScheduledDate, data.TriggerCondition)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     err.Error(),
			"requestID": requestID,
		})
		return
	}

	if err := validators.DeliveryMethodValidator(data.DeliveryMethod); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     err.Error(),
			"requestID": requestID,
		})
		return
	}

	method := data.DeliveryMethod
	if method == "" {
		method = "email"
	}

	delivery := model.Delivery{
		ContentItemID:    data.ContentItemID,
		RecipientID:      data.RecipientID,
		UserID:           data.UserID,
		TriggerType:      triggerType,
		ScheduledDate:    data.ScheduledDate,
		TriggerCondition: data.TriggerCondition,
		DeliveryMethod:   method,
		AdditionalNotes:  data.AdditionalNotes,
	}

	if err := a.Store.CreateDelivery(&delivery); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to create delivery", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusCreated, delivery)
}
