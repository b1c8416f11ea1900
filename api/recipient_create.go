package api

import (
	"echovault/vault-api/model"
	"echovault/vault-api/validators"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type recipientCreateBody struct {
	Name                    string        `json:"name" binding:"required"`
	Email                   string        `json:"email" binding:"required"`
	Phone                   string        `json:"phone"`
	UserID                  uint          `json:"userId" binding:"required"`
	IsVerified              *bool         `json:"isVerified"`
	NotificationPreferences model.JSONMap `json:"notificationPreferences"`
}

func (a *API) RecipientCreate(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)

	var data recipientCreateBody
	if err := c.ShouldBindJSON(&data); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     err.Error(),
			"requestID": requestID,
		})
		return
	}

	if err := validators.EmailValidator(data.Email); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     err.Error(),
			"requestID": requestID,
		})
		return
	}

	recipient := model.Recipient{
		Name:                    data.Name,
		Email:                   data.Email,
		Phone:                   data.Phone,
		UserID:                  data.UserID,
		NotificationPreferences: data.NotificationPreferences,
	}

	if data.IsVerified != nil {
		recipient.IsVerified = *data.IsVerified
	}

	if err := a.Store.CreateRecipient(&recipient); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to create recipient", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusCreated, recipient)
}
