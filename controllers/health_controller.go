package controllers

import (
	"net/http"
	"time"

	"nextparkapi/config"
	"nextparkapi/utils"

	"github.com/gin-gonic/gin"
)

// GetHealth reports service health
// @Summary Health check
// @Description Reports API and database health
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]string "Service healthy"
// @Failure 503 {object} map[string]string "Database unreachable"
// @Router /health [get]
func getHealth(c *gin.Context) {
	sqlDB, err := config.DB.DB()
	if err == nil {
		err = sqlDB.PingContext(c.Request.Context())
	}
	if err != nil {
		utils.JSONResponse(c, http.StatusServiceUnavailable, gin.H{
			"status":   "unhealthy",
			"database": err.Error(),
			"time":     time.Now().UTC().Format(time.RFC3339),
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, gin.H{
		"status":   "healthy",
		"database": "up",
		"time":     time.Now().UTC().Format(time.RFC3339),
	})
}

// RegisterHealthRoutes registers the health check endpoint.
func RegisterHealthRoutes(r *gin.Engine) {
	r.GET("/health", getHealth)
}
