package database

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/lufergio/clipcode/internal/config"
	"github.com/lufergio/clipcode/pkg/logger"
	"github.com/redis/go-redis/v9"
)

var Redis *redis.Client
var Ctx = context.Background()

func InitRedis() {
	Redis = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       0,
	})

	_, err := Redis.Ping(Ctx).Result()
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	logger.Info().Str("addr", config.AppConfig.RedisAddr).Msg("Connected to Redis")
}

// Rate limiting: fixed window, one counter per (prefix, identity).
// The first increment of a window arms the TTL; later callers skip it.
func CheckRateLimit(prefix, identity string, limit int, window time.Duration) (allowed bool, remaining int, reset time.Duration, err error) {
	key := fmt.Sprintf("rl:%s:%s", prefix, identity)

	count, err := Redis.Incr(Ctx, key).Result()
	if err != nil {
		return false, 0, 0, err
	}

	if count == 1 {
		Redis.Expire(Ctx, key, window)
	}

	if count > int64(limit) {
		reset, err = Redis.TTL(Ctx, key).Result()
		if err != nil || reset < 0 {
			reset = window
		}
		return false, 0, reset, nil
	}
	return true, limit - int(count), window, nil
}

// SetJSON stores a JSON-serialized record with a TTL.
func SetJSON(key string, value interface{}, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return Redis.Set(Ctx, key, data, ttl).Err()
}

// SetJSONNX stores a record only if the key does not already exist.
// Returns false when the key was already live.
func SetJSONNX(key string, value interface{}, ttl time.Duration) (bool, error) {
	data, err := json.Marshal(value)
	if err != nil {
		return false, err
	}
	return Redis.SetNX(Ctx, key, data, ttl).Result()
}

// GetRaw fetches the raw stored value. found is false when the key is
// absent or expired.
func GetRaw(key string) (value string, found bool, err error) {
	value, err = Redis.Get(Ctx, key).Result()
	if err == redis.Nil {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return value, true, nil
}

// GetDelRaw atomically fetches and deletes a value, so two concurrent
// readers can never both observe the same record.
func GetDelRaw(key string) (value string, found bool, err error) {
	value, err = Redis.GetDel(Ctx, key).Result()
	if err == redis.Nil {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return value, true, nil
}

func Delete(key string) error {
	return Redis.Del(Ctx, key).Err()
}

func Exists(key string) (bool, error) {
	n, err := Redis.Exists(Ctx, key).Result()
	return n > 0, err
}

// TTL returns the remaining lifetime of a key. Negative values follow
// Redis semantics (-1 no TTL, -2 no key).
func TTL(key string) (time.Duration, error) {
	return Redis.TTL(Ctx, key).Result()
}

func Expire(key string, ttl time.Duration) error {
	return Redis.Expire(Ctx, key, ttl).Err()
}

// KeyType reports the Redis value type of a key ("none", "string",
// "list", ...). Used to tell legacy single-object mailboxes apart
// from list-backed ones.
func KeyType(key string) (string, error) {
	return Redis.Type(Ctx, key).Result()
}

// ListPush appends an element to a list and re-arms the key's TTL.
// RPUSH is atomic, so concurrent publishers never lose each other's
// entries.
func ListPush(key, value string, ttl time.Duration) error {
	if err := Redis.RPush(Ctx, key, value).Err(); err != nil {
		return err
	}
	return Redis.Expire(Ctx, key, ttl).Err()
}

// ListHead returns the first element of a list without removing it.
func ListHead(key string) (value string, found bool, err error) {
	value, err = Redis.LIndex(Ctx, key, 0).Result()
	if err == redis.Nil {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return value, true, nil
}

// ListAll returns every element of a list, head first.
func ListAll(key string) ([]string, error) {
	return Redis.LRange(Ctx, key, 0, -1).Result()
}

// ListRemove removes the first element equal to value. Returns how
// many elements were removed (0 or 1). Redis drops the key itself
// once the list empties, keeping its TTL intact otherwise.
func ListRemove(key, value string) (int64, error) {
	return Redis.LRem(Ctx, key, 1, value).Result()
}
