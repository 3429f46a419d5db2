package handlers

import (
	"errors"
	"net/http"
	"regexp"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/lufergio/clipcode/internal/services"
	"github.com/lufergio/clipcode/pkg/logger"
	"github.com/lufergio/clipcode/pkg/utils"
)

var numericCodePattern = regexp.MustCompile(`^[0-9]{4,12}$`)

// CreatePairCode handles POST /api/pair/create. Called by the
// receiver; the returned code is typed on the sender.
func CreatePairCode(c *gin.Context) {
	var input struct {
		ReceiverDeviceID    string `json:"receiverDeviceId"`
		ReceiverDeviceLabel string `json:"receiverDeviceLabel"`
	}
	if err := c.ShouldBindJSON(&input); err != nil || !utils.IsDeviceID(input.ReceiverDeviceID) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid receiverDeviceId"})
		return
	}

	pairCode, err := services.CreatePairCode(input.ReceiverDeviceID, input.ReceiverDeviceLabel)
	if err != nil {
		if errors.Is(err, services.ErrCodeGenerationExhausted) {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not allocate a code, please retry"})
			return
		}
		logger.Error().Err(err).Msg("Failed to create pair code")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"pairCode":  pairCode,
		"expiresIn": int(services.PairCodeTTL.Seconds()),
	})
}

// ConfirmPair handles POST /api/pair/confirm
func ConfirmPair(c *gin.Context) {
	var input struct {
		PairCode          string `json:"pairCode"`
		SenderDeviceID    string `json:"senderDeviceId"`
		SenderDeviceLabel string `json:"senderDeviceLabel"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}
	input.PairCode = strings.TrimSpace(input.PairCode)
	if !numericCodePattern.MatchString(input.PairCode) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid pairCode"})
		return
	}
	if !utils.IsDeviceID(input.SenderDeviceID) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid senderDeviceId"})
		return
	}

	pairing, err := services.ConfirmPair(input.PairCode, input.SenderDeviceID, input.SenderDeviceLabel)
	if errors.Is(err, services.ErrPairCodeNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Pair code not found or expired"})
		return
	}
	if err != nil {
		logger.Error().Err(err).Msg("Failed to confirm pairing")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	resp := gin.H{
		"linked":           true,
		"receiverDeviceId": pairing.ReceiverDeviceID,
		"expiresIn":        int(services.SenderPairingTTL.Seconds()),
	}
	if pairing.ReceiverDeviceLabel != "" {
		resp["receiverDeviceLabel"] = pairing.ReceiverDeviceLabel
	}
	c.JSON(http.StatusOK, resp)
}

// UnlinkPair handles POST /api/pair/unlink. Idempotent.
func UnlinkPair(c *gin.Context) {
	var input struct {
		SenderDeviceID   string `json:"senderDeviceId"`
		ReceiverDeviceID string `json:"receiverDeviceId"`
	}
	if err := c.ShouldBindJSON(&input); err != nil || !utils.IsDeviceID(input.SenderDeviceID) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid senderDeviceId"})
		return
	}
	if input.ReceiverDeviceID != "" && !utils.IsDeviceID(input.ReceiverDeviceID) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid receiverDeviceId"})
		return
	}

	if err := services.Unlink(input.SenderDeviceID, input.ReceiverDeviceID); err != nil {
		logger.Error().Err(err).Msg("Failed to unlink pairing")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// PairStatus handles GET /api/pair/status?deviceId=
func PairStatus(c *gin.Context) {
	deviceID := c.Query("deviceId")
	if !utils.IsDeviceID(deviceID) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid deviceId"})
		return
	}

	linked, pairing, err := services.PairingStatus(deviceID)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to read pairing status")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	if !linked {
		c.JSON(http.StatusOK, gin.H{"linked": false})
		return
	}
	resp := gin.H{
		"linked":           true,
		"receiverDeviceId": pairing.ReceiverDeviceID,
	}
	if pairing.ReceiverDeviceLabel != "" {
		resp["receiverDeviceLabel"] = pairing.ReceiverDeviceLabel
	}
	c.JSON(http.StatusOK, resp)
}
