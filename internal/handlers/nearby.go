package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lufergio/clipcode/internal/services"
	"github.com/lufergio/clipcode/pkg/logger"
	"github.com/lufergio/clipcode/pkg/utils"
)

// PollNearby handles GET /api/nearby/poll?receiverDeviceId=
// Non-destructive: the same item is returned until it is acked, so
// clients can poll on a backoff loop without losing messages.
func PollNearby(c *gin.Context) {
	receiverID := c.Query("receiverDeviceId")
	if !utils.IsDeviceID(receiverID) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid receiverDeviceId"})
		return
	}

	found, msg, err := services.PollNearby(receiverID)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to poll mailbox")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	if !found {
		c.JSON(http.StatusOK, gin.H{"found": false})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"found": true,
		"item":  msg,
	})
}

// AckNearby handles POST /api/nearby/ack. Acking an unknown message
// id reports consumed:false and is safe to retry.
func AckNearby(c *gin.Context) {
	var input struct {
		ReceiverDeviceID string `json:"receiverDeviceId"`
		MessageID        string `json:"messageId"`
	}
	if err := c.ShouldBindJSON(&input); err != nil || !utils.IsDeviceID(input.ReceiverDeviceID) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid receiverDeviceId"})
		return
	}
	if input.MessageID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "messageId is required"})
		return
	}

	consumed, err := services.AckNearby(input.ReceiverDeviceID, input.MessageID)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to ack mailbox entry")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "consumed": consumed})
}
