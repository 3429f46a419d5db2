package services

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/lufergio/clipcode/internal/database"
	"github.com/lufergio/clipcode/internal/models"
	"github.com/lufergio/clipcode/pkg/logger"
)

func mailboxKey(receiverDeviceID string) string {
	return fmt.Sprintf("mailbox:%s", receiverDeviceID)
}

// PublishNearby appends the message to each target device's mailbox.
// The mailbox key's TTL follows the most recently enqueued message.
// Delivery is best effort per target; the clip itself stays fetchable
// by code regardless.
func PublishNearby(targets []string, msg models.NearbyMessage, ttl time.Duration) error {
	data, err := json.Marshal(msg)
	if err != nil {
		return err
	}
	for _, target := range targets {
		if err := database.ListPush(mailboxKey(target), string(data), ttl); err != nil {
			return err
		}
	}
	return nil
}

// PollNearby returns the first pending message without removing it,
// so clients can poll retry-safely and acknowledge separately. Legacy
// single-object mailboxes (no messageId, stored as a plain value)
// cannot be acknowledged and are consumed on this read instead.
func PollNearby(receiverDeviceID string) (found bool, msg models.NearbyMessage, err error) {
	key := mailboxKey(receiverDeviceID)

	kind, err := database.KeyType(key)
	if err != nil {
		return false, models.NearbyMessage{}, err
	}

	switch kind {
	case "list":
		raw, ok, err := database.ListHead(key)
		if err != nil || !ok {
			return false, models.NearbyMessage{}, err
		}
		msg, err := models.ParseNearbyMessage(raw)
		if err != nil {
			return false, models.NearbyMessage{}, err
		}
		return true, msg, nil

	case "string":
		raw, ok, err := database.GetDelRaw(key)
		if err != nil || !ok {
			return false, models.NearbyMessage{}, err
		}
		msg, err := models.ParseNearbyMessage(raw)
		if err != nil {
			logger.Warn().Str("receiver", receiverDeviceID).Msg("Dropping unreadable legacy mailbox value")
			return false, models.NearbyMessage{}, nil
		}
		return true, msg, nil

	default:
		return false, models.NearbyMessage{}, nil
	}
}

// AckNearby removes the queue entry carrying the given messageId,
// matching by value rather than position since the queue may have
// mutated since the poll. Acknowledging a message that is not present
// reports consumed=false and is not an error, so retries are safe.
func AckNearby(receiverDeviceID, messageID string) (consumed bool, err error) {
	key := mailboxKey(receiverDeviceID)

	kind, err := database.KeyType(key)
	if err != nil {
		return false, err
	}
	if kind != "list" {
		return false, nil
	}

	entries, err := database.ListAll(key)
	if err != nil {
		return false, err
	}
	for _, raw := range entries {
		msg, err := models.ParseNearbyMessage(raw)
		if err != nil || msg.MessageID != messageID {
			continue
		}
		n, err := database.ListRemove(key, raw)
		if err != nil {
			return false, err
		}
		return n > 0, nil
	}
	return false, nil
}
