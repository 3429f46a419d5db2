package services

import (
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/lufergio/clipcode/internal/database"
	"github.com/lufergio/clipcode/pkg/logger"
	"github.com/redis/go-redis/v9"
)

// setupTestRedis points the global store client at a fresh in-memory
// redis for one test.
func setupTestRedis(t *testing.T) *miniredis.Miniredis {
	t.Helper()
	logger.Init("test")
	mr := miniredis.RunT(t)
	database.Redis = redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return mr
}
