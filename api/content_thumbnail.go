package api

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ContentThumbnail accepts a small multipart image and stores it as
// the item's thumbnail object.
func (a *API) ContentThumbnail(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)

	if a.Objects == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"error":     "Object storage is not configured",
			"requestID": requestID,
		})
		return
	}

	id, ok := uintParam(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "Invalid content ID",
			"requestID": requestID,
		})
		return
	}

	item, err := a.Store.GetContentItem(id)
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

		zap.L().Error("Failed to look up content item", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	fileHeader, err := c.FormFile("thumbnail")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "No thumbnail file provided",
			"requestID": requestID,
		})
		return
	}

	contentType := fileHeader.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "Thumbnail must be an image",
			"requestID": requestID,
		})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to open multipart file", zap.Error(err), zap.String("requestID", requestID))
		return
	}
	defer file.Close()

	key := "thumbnail_" + item.ContentPath

	if err := a.Objects.Upload(c.Request.Context(), key, contentType, file); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to upload thumbnail", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	updated, err := a.Store.UpdateContentItem(id, map[string]any{"thumbnail_url": key})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to save thumbnail key", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusOK, updated)
}
