package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lufergio/clipcode/internal/database"
)

// Health handles GET /api/health
func Health(c *gin.Context) {
	if err := database.Redis.Ping(database.Ctx).Err(); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
