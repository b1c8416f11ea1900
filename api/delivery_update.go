package api

import (
	"echovault/vault-api/model"
	"echovault/vault-api/validators"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type deliveryUpdateBody struct {
	RecipientID      *uint      `json:"recipientId"`
	ScheduledDate    *time.Time `json:"scheduledDate"`
	TriggerCondition *string    `json:"triggerCondition"`
	IsDelivered      *bool      `json:"isDelivered"`
	DeliveredAt      *time.Time `json:"deliveredAt"`
	DeliveryMethod   *string    `json:"deliveryMethod"`
	AdditionalNotes  *string    `json:"additionalNotes"`
}

// DeliveryUpdate is the only path that can mark a delivery delivered;
// there is no automated process doing it. Sending a trigger field
// switches the row to that variant and clears the other side; sending
// both at once is rejected as ambiguous.
func (a *API) DeliveryUpdate(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)

	id, ok := uintParam(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "Invalid delivery ID",
			"requestID": requestID,
		})
		return
	}

	var data deliveryUpdateBody
	if err := c.ShouldBindJSON(&data); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     err.Error(),
			"requestID": requestID,
		})
		return
	}

	current, err := a.Store.GetDelivery(id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{
				"error":     "Delivery not found",
				"requestID": requestID,
			})
			return
		}

		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to look up delivery", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	fields := map[string]any{}

	if data.ScheduledDate != nil || data.TriggerCondition != nil {
		condition := ""
		if data.TriggerCondition != nil {
			condition = *data.TriggerCondition
		}

		triggerType, err := validators.DeliveryTrigger(data.ScheduledDate, condition)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":     err.Error(),
				"requestID": requestID,
			})
			return
		}

		// Switching variants clears the other side of the trigger
		fields["trigger_type"] = triggerType
		if triggerType == model.TriggerScheduled {
			fields["scheduled_date"] = data.ScheduledDate
			fields["trigger_condition"] = ""
		} else {
			fields["scheduled_date"] = nil
			fields["trigger_condition"] = condition
		}
	}

	if data.DeliveryMethod != nil {
		if err := validators.DeliveryMethodValidator(*data.DeliveryMethod); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":     err.Error(),
				"requestID": requestID,
			})
			return
		}

		fields["delivery_method"] = *data.DeliveryMethod
	}

	if data.RecipientID != nil {
		fields["recipient_id"] = *data.RecipientID
	}
	if data.AdditionalNotes != nil {
		fields["additional_notes"] = *data.AdditionalNotes
	}
	if data.IsDelivered != nil {
		fields["is_delivered"] = *data.IsDelivered

		if *data.IsDelivered && data.DeliveredAt == nil && current.DeliveredAt == nil {
			fields["delivered_at"] = time.Now()
		}
	}
	if data.DeliveredAt != nil {
		fields["delivered_at"] = *data.DeliveredAt
	}

	delivery, err := a.Store.UpdateDelivery(id, fields)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to update delivery", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusOK, delivery)
}
