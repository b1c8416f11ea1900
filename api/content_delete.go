package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ContentDelete removes an item and its deliveries, then best-effort
// deletes the stored payload and thumbnail objects. Messages keep
// their text inline so there is nothing to delete for them.
func (a *API) ContentDelete(c *gin.Context) {
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
	if err != nil && err != gorm.ErrRecordNotFound {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to look up content item", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	if err := a.Store.DeleteContentItem(id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to delete content item", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	if a.Objects != nil && item != nil && item.ContentType != "message" {
		err := a.Objects.Delete(c.Request.Context(), item.ContentPath, "thumbnail_"+item.ContentPath)
		if err != nil {
			zap.L().Warn("Failed to delete stored objects", zap.Error(err), zap.String("requestID", requestID))
		}
	}

	c.Status(http.StatusNoContent)
}
