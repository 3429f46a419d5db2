package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/lufergio/clipcode/internal/handlers"
	"github.com/lufergio/clipcode/internal/middleware"
)

func RegisterPairingRoutes(rg *gin.RouterGroup) {
	pair := rg.Group("/pair")

	pair.POST("/create", middleware.RateLimit(middleware.PairCreateLimit), handlers.CreatePairCode)
	pair.POST("/confirm", middleware.RateLimit(middleware.PairConfirmLimit), handlers.ConfirmPair)
	pair.POST("/unlink", middleware.RateLimit(middleware.PairUnlinkLimit), handlers.UnlinkPair)
	pair.GET("/status", handlers.PairStatus)
}
