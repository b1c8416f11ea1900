package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Heartbeat answers uptime probes. HEAD only, no body.
func (a *API) Heartbeat(c *gin.Context) {
	c.Status(http.StatusOK)
}
