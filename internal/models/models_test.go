package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseClipVersionedRecord(t *testing.T) {
	clip := ParseClip(`{"links":["https://a.example"],"text":"hi","createdAt":1700000000}`)
	assert.Equal(t, []string{"https://a.example"}, clip.Links)
	assert.Equal(t, "hi", clip.Text)
	assert.Equal(t, int64(1700000000), clip.CreatedAt)
}

func TestParseClipLegacyBareString(t *testing.T) {
	clip := ParseClip("just some text")
	assert.Equal(t, "just some text", clip.Text)
	assert.Empty(t, clip.Links)
}

func TestParseClipMalformedJSONFallsBackToText(t *testing.T) {
	clip := ParseClip("{not json")
	assert.Equal(t, "{not json", clip.Text)
}

func TestParseSenderPairingLegacy(t *testing.T) {
	sp := ParseSenderPairing("receiver-device-01")
	assert.Equal(t, "receiver-device-01", sp.ReceiverDeviceID)
	assert.Empty(t, sp.ReceiverDeviceLabel)

	sp = ParseSenderPairing(`{"receiverDeviceId":"receiver-device-01","receiverDeviceLabel":"Laptop"}`)
	assert.Equal(t, "receiver-device-01", sp.ReceiverDeviceID)
	assert.Equal(t, "Laptop", sp.ReceiverDeviceLabel)
}

func TestParsePairingCodeLegacy(t *testing.T) {
	pc := ParsePairingCode("receiver-device-01")
	assert.Equal(t, "receiver-device-01", pc.ReceiverDeviceID)
}

func TestRoomUpsertMember(t *testing.T) {
	room := Room{HostDeviceID: "host-device-01"}
	room.UpsertMember("host-device-01", "Desk", 1)
	room.UpsertMember("guest-device-01", "Tablet", 2)
	room.UpsertMember("guest-device-01", "Renamed", 3)

	assert.Len(t, room.Members, 2)
	assert.Equal(t, "Renamed", room.Members[1].DeviceLabel)
	assert.Equal(t, []string{"guest-device-01"}, room.OtherMemberIDs("host-device-01"))
}

func TestParseNearbyMessage(t *testing.T) {
	msg, err := ParseNearbyMessage(`{"messageId":"m1","code":"ABC234","text":"hi"}`)
	assert.NoError(t, err)
	assert.Equal(t, "m1", msg.MessageID)
	assert.NotNil(t, msg.Links)

	_, err = ParseNearbyMessage("{broken")
	assert.Error(t, err)
}
