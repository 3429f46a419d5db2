package services

import (
	"fmt"
	"time"

	"github.com/lufergio/clipcode/internal/database"
	"github.com/lufergio/clipcode/internal/models"
)

const (
	PairCodeTTL      = 10 * time.Minute
	SenderPairingTTL = 30 * 24 * time.Hour
)

func pairCodeKey(code string) string {
	return fmt.Sprintf("pair:code:%s", code)
}

func senderPairingKey(deviceID string) string {
	return fmt.Sprintf("pair:sender:%s", deviceID)
}

// CreatePairCode mints a one-time numeric code a sender can type to
// link to this receiver. The code lives 10 minutes.
func CreatePairCode(receiverDeviceID, receiverLabel string) (string, error) {
	record := models.PairingCode{
		ReceiverDeviceID:    receiverDeviceID,
		ReceiverDeviceLabel: receiverLabel,
	}
	return mintRecord(pairCodeKey, DigitAlphabet, PairCodeLength, record, PairCodeTTL)
}

// ConfirmPair resolves a pairing code to its receiver, writes the
// durable sender→receiver edge and burns the code. A code confirms at
// most once.
func ConfirmPair(pairCode, senderDeviceID, senderLabel string) (models.SenderPairing, error) {
	raw, found, err := database.GetRaw(pairCodeKey(pairCode))
	if err != nil {
		return models.SenderPairing{}, err
	}
	if !found {
		return models.SenderPairing{}, ErrPairCodeNotFound
	}

	pc := models.ParsePairingCode(raw)
	pairing := models.SenderPairing{
		ReceiverDeviceID:    pc.ReceiverDeviceID,
		ReceiverDeviceLabel: pc.ReceiverDeviceLabel,
		SenderDeviceLabel:   senderLabel,
	}
	if err := database.SetJSON(senderPairingKey(senderDeviceID), pairing, SenderPairingTTL); err != nil {
		return models.SenderPairing{}, err
	}

	// One-time use: burn the code now that the edge exists.
	if err := database.Delete(pairCodeKey(pairCode)); err != nil {
		return models.SenderPairing{}, err
	}
	return pairing, nil
}

// PairingStatus reports whether a device currently has a confirmed
// receiver.
func PairingStatus(deviceID string) (linked bool, pairing models.SenderPairing, err error) {
	raw, found, err := database.GetRaw(senderPairingKey(deviceID))
	if err != nil || !found {
		return false, models.SenderPairing{}, err
	}
	return true, models.ParseSenderPairing(raw), nil
}

// Unlink removes the sender's pairing edge. If the (known or
// resolved) receiver holds a reciprocal edge pointing back at this
// sender, that edge is removed too, so neither side keeps a stale
// half-link. Absent records are not an error.
func Unlink(senderDeviceID, receiverDeviceID string) error {
	raw, found, err := database.GetRaw(senderPairingKey(senderDeviceID))
	if err != nil {
		return err
	}
	if found {
		pairing := models.ParseSenderPairing(raw)
		if receiverDeviceID == "" {
			receiverDeviceID = pairing.ReceiverDeviceID
		}
		if err := database.Delete(senderPairingKey(senderDeviceID)); err != nil {
			return err
		}
	}

	if receiverDeviceID == "" {
		return nil
	}

	raw, found, err = database.GetRaw(senderPairingKey(receiverDeviceID))
	if err != nil || !found {
		return err
	}
	if models.ParseSenderPairing(raw).ReceiverDeviceID == senderDeviceID {
		return database.Delete(senderPairingKey(receiverDeviceID))
	}
	return nil
}

// RefreshPairing re-arms the sender edge's TTL to the full 30-day
// window. Called on every share that used the pairing, so active
// pairs stay alive and dormant ones lapse.
func RefreshPairing(senderDeviceID string) error {
	return database.Expire(senderPairingKey(senderDeviceID), SenderPairingTTL)
}
