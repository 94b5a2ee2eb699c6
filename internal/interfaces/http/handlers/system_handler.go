package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SystemHandler serves the health and test endpoints
type SystemHandler struct {
	db *gorm.DB
}

func NewSystemHandler(db *gorm.DB) *SystemHandler {
	return &SystemHandler{db: db}
}

// Health reports store connectivity
// GET /api/health
func (h *SystemHandler) Health(c *gin.Context) {
	sqlDB, err := h.db.DB()
	if err == nil {
		err = sqlDB.PingContext(c.Request.Context())
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":   "error",
			"database": "disconnected",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":   "ok",
		"database": "connected",
	})
}

// Test echoes a liveness message with the current timestamp
// GET /api/test
func (h *SystemHandler) Test(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message":   "API is working",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
