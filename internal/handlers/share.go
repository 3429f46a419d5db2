package handlers

import (
	"errors"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/lufergio/clipcode/internal/models"
	"github.com/lufergio/clipcode/internal/services"
	"github.com/lufergio/clipcode/pkg/logger"
	"github.com/lufergio/clipcode/pkg/utils"
)

var shareCodePattern = regexp.MustCompile(`^[A-Z0-9]{4,12}$`)

// ShareClip handles POST /api/share
func ShareClip(c *gin.Context) {
	// 1. Parse input
	var input struct {
		Links             []string `json:"links"`
		Text              string   `json:"text"`
		TTLSeconds        int      `json:"ttlSeconds"`
		SenderDeviceID    string   `json:"senderDeviceId"`
		SenderDeviceLabel string   `json:"senderDeviceLabel"`
		RoomCode          string   `json:"roomCode"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}
	if !services.IsAllowedTTL(input.TTLSeconds) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ttlSeconds is not an allowed duration"})
		return
	}
	if input.SenderDeviceID != "" && !utils.IsDeviceID(input.SenderDeviceID) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid senderDeviceId"})
		return
	}
	if input.Links == nil {
		input.Links = []string{}
	}

	// 2. Persist the clip under a fresh code
	code, err := services.CreateClip(input.Links, input.Text, input.TTLSeconds)
	if err != nil {
		var ve *services.ValidationError
		switch {
		case errors.Is(err, services.ErrTextTooLarge):
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "Text too large"})
		case errors.As(err, &ve):
			c.JSON(http.StatusBadRequest, gin.H{"error": ve.Message})
		case errors.Is(err, services.ErrCodeGenerationExhausted):
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not allocate a code, please retry"})
		default:
			logger.Error().Err(err).Msg("Failed to store clip")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	// 3. Relay to paired / room devices, best effort. The clip stays
	// fetchable by code even if nothing could be queued.
	nearbyQueued := false
	targets, reason, err := services.ResolveNearbyTargets(input.SenderDeviceID, input.RoomCode)
	if err != nil {
		logger.Error().Err(err).Str("code", code).Msg("Nearby target resolution failed")
	} else if len(targets) > 0 {
		msg := models.NearbyMessage{
			MessageID:         uuid.New().String(),
			Code:              code,
			Links:             input.Links,
			Text:              input.Text,
			SenderDeviceLabel: input.SenderDeviceLabel,
			CreatedAt:         time.Now().Unix(),
		}
		ttl := time.Duration(input.TTLSeconds) * time.Second
		if err := services.PublishNearby(targets, msg, ttl); err != nil {
			logger.Error().Err(err).Str("code", code).Msg("Nearby publish failed")
		} else {
			nearbyQueued = true
		}
	}

	resp := gin.H{
		"code":         code,
		"expiresIn":    input.TTLSeconds,
		"nearbyQueued": nearbyQueued,
	}
	if !nearbyQueued && reason != "" {
		resp["nearbyReason"] = reason
	}
	c.JSON(http.StatusOK, resp)
}

// FetchClip handles GET /api/fetch/:code. Fetching consumes: the
// first successful fetch deletes the clip.
func FetchClip(c *gin.Context) {
	code := strings.ToUpper(strings.TrimSpace(c.Param("code")))
	if !shareCodePattern.MatchString(code) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid code"})
		return
	}

	clip, err := services.ConsumeClip(code)
	if errors.Is(err, services.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Code not found or expired"})
		return
	}
	if err != nil {
		logger.Error().Err(err).Str("code", code).Msg("Failed to consume clip")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"code":  code,
		"links": clip.Links,
		"text":  clip.Text,
	})
}
