package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/lufergio/clipcode/internal/handlers"
	"github.com/lufergio/clipcode/internal/middleware"
)

func RegisterClipRoutes(rg *gin.RouterGroup) {
	rg.POST("/share", middleware.RateLimit(middleware.ShareLimit), handlers.ShareClip)
	rg.GET("/fetch/:code", middleware.RateLimit(middleware.FetchLimit), handlers.FetchClip)
}
