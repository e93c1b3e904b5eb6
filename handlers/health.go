package handlers

import (
	"net/http"

	"smarthome/utils"

	"github.com/gin-gonic/gin"
)

// HealthReporter exposes the latest dependency snapshot.
type HealthReporter interface {
	Status() utils.HealthStatus
}

type HealthHandler struct {
	monitor HealthReporter
}

func NewHealthHandler(monitor HealthReporter) *HealthHandler {
	return &HealthHandler{monitor: monitor}
}

func (h *HealthHandler) Health(c *gin.Context) {
	status := h.monitor.Status()
	state := "ok"
	if !status.Healthy() {
		state = "degraded"
	}
	c.JSON(http.StatusOK, gin.H{"status": state, "checks": status})
}

func Root(c *gin.Context) {
	c.String(http.StatusOK, "Smart Home API is running!")
}
