package api

import (
	"echovault/vault-api/model"
	"echovault/vault-api/validators"
	"net/http"
	"slices"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type contentUpdateBody struct {
	Title        *string        `json:"title"`
	Description  *string        `json:"description"`
	ContentType  *string        `json:"contentType"`
	ContentPath  *string        `json:"contentPath"`
	ThumbnailURL *string        `json:"thumbnailUrl"`
	Metadata     *model.JSONMap `json:"metadata"`
}

func (a *API) ContentUpdate(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)

	id, ok := uintParam(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "Invalid content ID",
			"requestID": requestID,
		})
		return
	}

	var data contentUpdateBody
	if err := c.ShouldBindJSON(&data); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     err.Error(),
			"requestID": requestID,
		})
		return
	}

	if data.ContentType != nil && !slices.Contains(model.ContentTypes, *data.ContentType) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     validators.ErrContentTypeInvalid.Error(),
			"requestID": requestID,
		})
		return
	}

	fields := map[string]any{}
	if data.Title != nil {
		fields["title"] = *data.Title
	}
	if data.Description != nil {
		fields["description"] = *data.Description
	}
	if data.ContentType != nil {
		fields["content_type"] = *data.ContentType
	}
	if data.ContentPath != nil {
		fields["content_path"] = *data.ContentPath
	}
	if data.ThumbnailURL != nil {
		fields["thumbnail_url"] = *data.ThumbnailURL
	}
	if data.Metadata != nil {
		fields["metadata"] = *data.Metadata
	}

	item, err := a.Store.UpdateContentItem(id, fields)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{
				"error":     "Content item not found",
				"requestID": requestID,
			})
			return
		}

		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to update content item", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusOK, item)
}
