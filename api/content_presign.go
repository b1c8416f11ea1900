package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	gonanoid "github.com/matoous/go-nanoid/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const keyCharset = "abcdefghijklmnopqrstuvwxyz0123456789"

// ContentUploadURL hands out a presigned PUT for the item's payload
// and pins the generated object key on the row. Messages keep their
// text inline in content_path, so presigning one would overwrite the
// only copy - they are rejected up front.
func (a *API) ContentUploadURL(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)

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

	if item.ContentType == "message" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "Messages store their text inline, there is no payload to upload",
			"requestID": requestID,
		})
		return
	}

	if a.Objects == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"error":     "Object storage is not configured",
			"requestID": requestID,
		})
		return
	}

	key := item.ContentPath
	if key == "" {
		suffix, err := gonanoid.Generate(keyCharset, 16)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"error":     "Internal server error",
				"requestID": requestID,
			})
			return
		}

		key = suffix

		if _, err := a.Store.UpdateContentItem(id, map[string]any{"content_path": key}); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"error":     "Internal server error",
				"requestID": requestID,
			})

			zap.L().Error("Failed to pin object key", zap.Error(err), zap.String("requestID", requestID))
			return
		}
	}

	url, err := a.Objects.UploadURL(c.Request.Context(), key)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to presign upload", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"uploadUrl": url,
		"objectKey": key,
	})
}

// ContentDownloadURL hands out a presigned GET for the item's payload.
func (a *API) ContentDownloadURL(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)

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

	if item.ContentType == "message" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "Messages store their text inline, there is no payload to download",
			"requestID": requestID,
		})
		return
	}

	if a.Objects == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"error":     "Object storage is not configured",
			"requestID": requestID,
		})
		return
	}

	url, err := a.Objects.DownloadURL(c.Request.Context(), item.ContentPath)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to presign download", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"downloadUrl": url,
	})
}
