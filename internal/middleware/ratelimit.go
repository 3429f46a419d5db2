package middleware

import (
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/lufergio/clipcode/internal/database"
	"github.com/lufergio/clipcode/pkg/logger"
)

// RateLimitRule is one fixed-window budget keyed by caller IP. The
// counter lives in Redis so every stateless instance shares it.
type RateLimitRule struct {
	Prefix string
	Limit  int
	Window time.Duration
}

// Per-endpoint budgets
var (
	ShareLimit       = RateLimitRule{Prefix: "share", Limit: 20, Window: time.Minute}
	FetchLimit       = RateLimitRule{Prefix: "fetch", Limit: 60, Window: time.Minute}
	PairCreateLimit  = RateLimitRule{Prefix: "pair_create", Limit: 10, Window: time.Minute}
	PairConfirmLimit = RateLimitRule{Prefix: "pair_confirm", Limit: 15, Window: time.Minute}
	PairUnlinkLimit  = RateLimitRule{Prefix: "pair_unlink", Limit: 15, Window: time.Minute}
	RoomCreateLimit  = RateLimitRule{Prefix: "room_create", Limit: 10, Window: time.Minute}
	RoomJoinLimit    = RateLimitRule{Prefix: "room_join", Limit: 30, Window: time.Minute}
	NearbyAckLimit   = RateLimitRule{Prefix: "nearby_ack", Limit: 120, Window: time.Minute}
)

// RateLimit enforces a rule against the client IP. Over-budget calls
// get 429 with a Retry-After header carrying the window reset.
func RateLimit(rule RateLimitRule) gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := c.ClientIP()

		allowed, remaining, reset, err := database.CheckRateLimit(rule.Prefix, ip, rule.Limit, rule.Window)
		if err != nil {
			logger.Error().Err(err).Str("prefix", rule.Prefix).Msg("Rate limit check failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			c.Abort()
			return
		}

		if !allowed {
			resetSeconds := int(math.Ceil(reset.Seconds()))
			logger.Warn().
				Str("ip", ip).
				Str("prefix", rule.Prefix).
				Int("retry_after", resetSeconds).
				Msg("Rate limit exceeded")

			c.Header("Retry-After", strconv.Itoa(resetSeconds))
			c.Header("X-RateLimit-Remaining", "0")
			c.JSON(http.StatusTooManyRequests, gin.H{
				"error":      "Too many requests",
				"retryAfter": resetSeconds,
			})
			c.Abort()
			return
		}

		c.Header("X-RateLimit-Remaining", strconv.Itoa(remaining))
		c.Next()
	}
}
