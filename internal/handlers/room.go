package handlers

import (
	"errors"
	"math"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/lufergio/clipcode/internal/services"
	"github.com/lufergio/clipcode/pkg/logger"
	"github.com/lufergio/clipcode/pkg/utils"
)

// CreateRoom handles POST /api/room/create
func CreateRoom(c *gin.Context) {
	var input struct {
		HostDeviceID    string `json:"hostDeviceId"`
		HostDeviceLabel string `json:"hostDeviceLabel"`
	}
	if err := c.ShouldBindJSON(&input); err != nil || !utils.IsDeviceID(input.HostDeviceID) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid hostDeviceId"})
		return
	}

	roomCode, err := services.CreateRoom(input.HostDeviceID, input.HostDeviceLabel)
	if err != nil {
		if errors.Is(err, services.ErrCodeGenerationExhausted) {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not allocate a code, please retry"})
			return
		}
		logger.Error().Err(err).Msg("Failed to create room")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"roomCode":    roomCode,
		"expiresIn":   int(services.RoomTTL.Seconds()),
		"memberCount": 1,
	})
}

// JoinRoom handles POST /api/room/join. Idempotent per device.
func JoinRoom(c *gin.Context) {
	var input struct {
		RoomCode    string `json:"roomCode"`
		DeviceID    string `json:"deviceId"`
		DeviceLabel string `json:"deviceLabel"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}
	input.RoomCode = strings.TrimSpace(input.RoomCode)
	if !numericCodePattern.MatchString(input.RoomCode) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid roomCode"})
		return
	}
	if !utils.IsDeviceID(input.DeviceID) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid deviceId"})
		return
	}

	room, remaining, err := services.JoinRoom(input.RoomCode, input.DeviceID, input.DeviceLabel)
	if errors.Is(err, services.ErrRoomNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Room not found or expired"})
		return
	}
	if err != nil {
		logger.Error().Err(err).Msg("Failed to join room")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"roomCode":    input.RoomCode,
		"expiresIn":   int(math.Ceil(remaining.Seconds())),
		"memberCount": len(room.Members),
	})
}
