package handlers

import (
	"net/http"

	"branchaudit/utils"

	"github.com/gin-gonic/gin"
)

type HealthHandler struct{}

// HealthCheckHandler reports the last snapshot taken by the health monitor.
func (h *HealthHandler) HealthCheckHandler(c *gin.Context) {
	status := utils.GetHealthStatus()
	code := http.StatusOK
	state := "ok"
	if !status.Store {
		code = http.StatusServiceUnavailable
		state = "degraded"
	}
	c.JSON(code, gin.H{"status": state, "health": status})
}
