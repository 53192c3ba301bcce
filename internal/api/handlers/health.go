package handlers

import (
	"net/http"

	"github.com/Conceptual-Machines/songbook-api/internal/services"
	"github.com/gin-gonic/gin"
)

type HealthHandler struct {
	svc *services.ChordService
}

func NewHealthHandler(svc *services.ChordService) *HealthHandler {
	return &HealthHandler{svc: svc}
}

// HealthCheck returns the health status of the API
func (h *HealthHandler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "healthy",
		"chord_cache": gin.H{
			"enabled": h.svc.Enabled(),
		},
	})
}
