package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/justsurfingit/job-board/internal/database"
	"gorm.io/gorm"
)

type HealthHandler struct {
	DB *gorm.DB
}

func NewHealthHandler(db *gorm.DB) *HealthHandler {
	return &HealthHandler{DB: db}
}

// Health is GET /api/health
func (h *HealthHandler) Health(c *gin.Context) {
	ok(c, http.StatusOK, gin.H{"message": "Service is running"})
}

// DatabaseCheck is GET /api/test
func (h *HealthHandler) DatabaseCheck(c *gin.Context) {
	if err := database.Ping(c.Request.Context(), h.DB); err != nil {
		fail(c, http.StatusInternalServerError, err.Error())
		return
	}
	ok(c, http.StatusOK, gin.H{"message": "Database connection successful"})
}
