package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/lufergio/clipcode/internal/handlers"
	"github.com/lufergio/clipcode/internal/middleware"
)

func RegisterNearbyRoutes(rg *gin.RouterGroup) {
	nearby := rg.Group("/nearby")

	// Poll is deliberately unlimited: receivers hit it on a backoff
	// loop while waiting for a share.
	nearby.GET("/poll", handlers.PollNearby)
	nearby.POST("/ack", middleware.RateLimit(middleware.NearbyAckLimit), handlers.AckNearby)
}
