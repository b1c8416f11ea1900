package api

import (
	"echovault/vault-api/model"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type vaultCreateBody struct {
	Name            string `json:"name" binding:"required"`
	Description     string `json:"description"`
	CoverImage      string `json:"coverImage"`
	UserID          uint   `json:"userId" binding:"required"`
	EncryptionLevel string `json:"encryptionLevel" binding:"required"`
	IsActive        *bool  `json:"isActive"`
}

func (a *API) VaultCreate(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)

	var data vaultCreateBody
	if err := c.ShouldBindJSON(&data); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     err.Error(),
			"requestID": requestID,
		})
		return
	}

	vault := model.Vault{
		Name:            data.Name,
		Description:     data.Description,
		CoverImage:      data.CoverImage,
		UserID:          data.UserID,
		EncryptionLevel: data.EncryptionLevel,
		IsActive:        true,
	}

	if data.IsActive != nil {
		vault.IsActive = *data.IsActive
	}

	if err := a.Store.CreateVault(&vault); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to create vault", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusCreated, vault)
}
