package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Version is the reported API version.
const Version = "1.0.0"

// HealthHandler handles health check endpoints
type HealthHandler struct{}

// NewHealthHandler creates a new health handler
func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

// Health returns the health status of the service
func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"service":   "kanji-ocr-api",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"version":   Version,
	})
}
