package api

import (
	"echovault/vault-api/model"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type activityCreateBody struct {
	UserID     uint          `json:"userId" binding:"required"`
	Action     string        `json:"action" binding:"required"`
	EntityType string        `json:"entityType" binding:"required"`
	EntityID   *uint         `json:"entityId"`
	Details    model.JSONMap `json:"details"`
}

// ActivityCreate appends an audit record. There is no update or
// delete endpoint for activities.
func (a *API) ActivityCreate(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)

	var data activityCreateBody
	if err := c.ShouldBindJSON(&data); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     err.Error(),
			"requestID": requestID,
		})
		return
	}

	activity := model.Activity{
		UserID:     data.UserID,
		Action:     data.Action,
		EntityType: data.EntityType,
		EntityID:   data.EntityID,
		Details:    data.Details,
	}

	if err := a.Store.CreateActivity(&activity); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to create activity", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusCreated, activity)
}
