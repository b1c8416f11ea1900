package api

import (
	"echovault/vault-api/model"
	"echovault/vault-api/validators"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type recipientUpdateBody struct {
	Name                    *string        `json:"name"`
	Email                   *string        `json:"email"`
	Phone                   *string        `json:"phone"`
	IsVerified              *bool          `json:"isVerified"`
	NotificationPreferences *model.JSONMap `json:"notificationPreferences"`
}

func (a *API) RecipientUpdate(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)

	id, ok := uintParam(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "Invalid recipient ID",
			"requestID": requestID,
		})
		return
	}

	var data recipientUpdateBody
	if err := c.ShouldBindJSON(&data); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     err.Error(),
			"requestID": requestID,
		})
		return
	}

	if data.Email != nil {
		if err := validators.EmailValidator(*data.Email); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":     err.Error(),
				"requestID": requestID,
			})
			return
		}
	}

	fields := map[string]any{}
	if data.Name != nil {
		fields["name"] = *data.Name
	}
	if data.Email != nil {
		fields["email"] = *data.Email
	}
	if data.Phone != nil {
		fields["phone"] = *data.Phone
	}
	if data.IsVerified != nil {
		fields["is_verified"] = *data.IsVerified
	}
	if data.NotificationPreferences != nil {
		fields["notification_preferences"] = *data.NotificationPreferences
	}

	recipient, err := a.Store.UpdateRecipient(id, fields)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{
				"error":     "Recipient not found",
				"requestID": requestID,
			})
			return
		}

		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to update recipient", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusOK, recipient)
}
