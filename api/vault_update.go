package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type vaultUpdateBody struct {
	Name            *string `json:"name"`
	Description     *string `json:"description"`
	CoverImage      *string `json:"coverImage"`
	EncryptionLevel *string `json:"encryptionLevel"`
	IsActive        *bool   `json:"isActive"`
}

func (a *API) VaultUpdate(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)

	id, ok := uintParam(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "Invalid vault ID",
			"requestID": requestID,
		})
		return
	}

	var data vaultUpdateBody
	if err := c.ShouldBindJSON(&data); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     err.Error(),
			"requestID": requestID,
		})
		return
	}

	fields := map[string]any{}
	if data.Name != nil {
		fields["name"] = *data.Name
	}
	if data.Description != nil {
		fields["description"] = *data.Description
	}
	if data.CoverImage != nil {
		fields["cover_image"] = *data.CoverImage
	}
	if data.EncryptionLevel != nil {
		fields["encryption_level"] = *data.EncryptionLevel
	}
	if data.IsActive != nil {
		fields["is_active"] = *data.IsActive
	}

	vault, err := a.Store.UpdateVault(id, fields)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{
				"error":     "Vault not found",
				"requestID": requestID,
			})
			return
		}

		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to update vault", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusOK, vault)
}
