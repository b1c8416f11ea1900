package api

import (
	"echovault/vault-api/model"
	"echovault/vault-api/pkg/security"
	"echovault/vault-api/validators"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type contentCreateBody struct {
	Title         string        `json:"title" binding:"required"`
	Description   string        `json:"description"`
	ContentType   string        `json:"contentType" binding:"required"`
	ContentPath   string        `json:"contentPath" binding:"required"`
	VaultID       uint          `json:"vaultId" binding:"required"`
	UserID        uint          `json:"userId" binding:"required"`
	EncryptionKey string        `json:"encryptionKey"`
	ThumbnailURL  string        `json:"thumbnailUrl"`
	Metadata      model.JSONMap `json:"metadata"`
}

func (a *API) ContentCreate(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)

	var data contentCreateBody
	if err := c.ShouldBindJSON(&data); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     err.Error(),
			"requestID": requestID,
		})
		return
	}

	if err := validators.ContentValidator(data.Title, data.ContentType, data.ContentPath); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     err.Error(),
			"requestID": requestID,
		})
		return
	}

	key := data.EncryptionKey
	if key == "" {
		var err error

		key, err = security.NewContentKey()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"error":     "Internal server error",
				"requestID": requestID,
			})

			zap.L().Error("Failed to generate content key", zap.Error(err), zap.String("requestID", requestID))
			return
		}
	}

	item := model.ContentItem{
		Title:         data.Title,
		Description:   data.Description,
		ContentType:   data.ContentType,
		ContentPath:   data.ContentPath,
		VaultID:       data.VaultID,
		UserID:        data.UserID,
		EncryptionKey: key,
		ThumbnailURL:  data.ThumbnailURL,
		Metadata:      data.Metadata,
	}

	if err := a.Store.CreateContentItem(&item); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to create content item", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusCreated, item)
}
