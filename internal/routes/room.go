package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/lufergio/clipcode/internal/handlers"
	"github.com/lufergio/clipcode/internal/middleware"
)

func RegisterRoomRoutes(rg *gin.RouterGroup) {
	room := rg.Group("/room")

	room.POST("/create", middleware.RateLimit(middleware.RoomCreateLimit), handlers.CreateRoom)
	room.POST("/join", middleware.RateLimit(middleware.RoomJoinLimit), handlers.JoinRoom)
}
