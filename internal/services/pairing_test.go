package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

const (
	receiverID = "receiver-device-01"
	senderID   = "sender-device-01"
)

func TestPairingLifecycle(t *testing.T) {
	setupTestRedis(t)

	code, err := CreatePairCode(receiverID, "Kitchen laptop")
	assert.NoError(t, err)
	assert.Len(t, code, PairCodeLength)

	pairing, err := ConfirmPair(code, senderID, "Phone")
	assert.NoError(t, err)
	assert.Equal(t, receiverID, pairing.ReceiverDeviceID)
	assert.Equal(t, "Kitchen laptop", pairing.ReceiverDeviceLabel)

	linked, status, err := PairingStatus(senderID)
	assert.NoError(t, err)
	assert.True(t, linked)
	assert.Equal(t, receiverID, status.ReceiverDeviceID)
}

func TestPairCodeIsOneTimeUse(t *testing.T) {
	setupTestRedis(t)

	code, err := CreatePairCode(receiverID, "")
	assert.NoError(t, err)

	_, err = ConfirmPair(code, senderID, "")
	assert.NoError(t, err)

	_, err = ConfirmPair(code, "another-sender-9", "")
	assert.ErrorIs(t, err, ErrPairCodeNotFound)
}

func TestConfirmUnknownPairCode(t *testing.T) {
	setupTestRedis(t)

	_, err := ConfirmPair("000000", senderID, "")
	assert.ErrorIs(t, err, ErrPairCodeNotFound)
}

func TestPairCodeExpires(t *testing.T) {
	mr := setupTestRedis(t)

	code, err := CreatePairCode(receiverID, "")
	assert.NoError(t, err)

	mr.FastForward(PairCodeTTL + time.Second)

	_, err = ConfirmPair(code, senderID, "")
	assert.ErrorIs(t, err, ErrPairCodeNotFound)
}

func TestUnlinkIsIdempotent(t *testing.T) {
	setupTestRedis(t)

	// Nothing to delete is not an error.
	assert.NoError(t, Unlink(senderID, ""))

	code, _ := CreatePairCode(receiverID, "")
	_, err := ConfirmPair(code, senderID, "")
	assert.NoError(t, err)

	assert.NoError(t, Unlink(senderID, ""))
	linked, _, err := PairingStatus(senderID)
	assert.NoError(t, err)
	assert.False(t, linked)

	assert.NoError(t, Unlink(senderID, ""))
}

func TestUnlinkClearsReciprocalEdge(t *testing.T) {
	setupTestRedis(t)

	// Pair both directions: sender → receiver and receiver → sender.
	code, _ := CreatePairCode(receiverID, "")
	_, err := ConfirmPair(code, senderID, "")
	assert.NoError(t, err)

	code, _ = CreatePairCode(senderID, "")
	_, err = ConfirmPair(code, receiverID, "")
	assert.NoError(t, err)

	assert.NoError(t, Unlink(senderID, ""))

	linked, _, _ := PairingStatus(senderID)
	assert.False(t, linked)
	linked, _, _ = PairingStatus(receiverID)
	assert.False(t, linked, "reciprocal edge should be cleared")
}

func TestUnlinkKeepsUnrelatedReceiverEdge(t *testing.T) {
	setupTestRedis(t)

	code, _ := CreatePairCode(receiverID, "")
	_, err := ConfirmPair(code, senderID, "")
	assert.NoError(t, err)

	// The receiver is paired onward to a third device, not back to
	// the sender; that edge must survive.
	code, _ = CreatePairCode("third-device-99", "")
	_, err = ConfirmPair(code, receiverID, "")
	assert.NoError(t, err)

	assert.NoError(t, Unlink(senderID, ""))

	linked, status, _ := PairingStatus(receiverID)
	assert.True(t, linked)
	assert.Equal(t, "third-device-99", status.ReceiverDeviceID)
}

func TestPairingStatusLegacyBareDeviceID(t *testing.T) {
	mr := setupTestRedis(t)

	// Pre-label schema stored just the device id.
	mr.Set(senderPairingKey(senderID), receiverID)

	linked, status, err := PairingStatus(senderID)
	assert.NoError(t, err)
	assert.True(t, linked)
	assert.Equal(t, receiverID, status.ReceiverDeviceID)
	assert.Empty(t, status.ReceiverDeviceLabel)
}

func TestRefreshPairingRearmsTTL(t *testing.T) {
	mr := setupTestRedis(t)

	code, _ := CreatePairCode(receiverID, "")
	_, err := ConfirmPair(code, senderID, "")
	assert.NoError(t, err)

	// Age the edge, then refresh; TTL returns to the full window.
	mr.SetTTL(senderPairingKey(senderID), time.Hour)
	assert.NoError(t, RefreshPairing(senderID))
	assert.Equal(t, SenderPairingTTL, mr.TTL(senderPairingKey(senderID)))
}
