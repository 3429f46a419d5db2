package services

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/lufergio/clipcode/internal/database"
	"github.com/lufergio/clipcode/internal/models"
)

const RoomTTL = 2 * time.Hour

func roomKey(code string) string {
	return fmt.Sprintf("room:%s", code)
}

// CreateRoom mints a numeric room code and seeds the room with the
// host as its sole member.
func CreateRoom(hostDeviceID, hostLabel string) (string, error) {
	now := time.Now().Unix()
	room := models.Room{
		HostDeviceID:    hostDeviceID,
		HostDeviceLabel: hostLabel,
		CreatedAt:       now,
		Members: []models.RoomMember{
			{DeviceID: hostDeviceID, DeviceLabel: hostLabel, JoinedAt: now},
		},
	}
	return mintRecord(roomKey, DigitAlphabet, RoomCodeLength, room, RoomTTL)
}

// GetRoom loads a live room. Absent or expired codes fail
// ErrRoomNotFound.
func GetRoom(roomCode string) (models.Room, error) {
	raw, found, err := database.GetRaw(roomKey(roomCode))
	if err != nil {
		return models.Room{}, err
	}
	if !found {
		return models.Room{}, ErrRoomNotFound
	}

	var room models.Room
	if err := json.Unmarshal([]byte(raw), &room); err != nil {
		return models.Room{}, ErrRoomNotFound
	}
	return room, nil
}

// JoinRoom upserts the caller into the room's member list and writes
// it back with the room's *remaining* TTL, so joining never extends
// the room past its original two-hour budget. Idempotent per device.
func JoinRoom(roomCode, deviceID, label string) (models.Room, time.Duration, error) {
	room, err := GetRoom(roomCode)
	if err != nil {
		return models.Room{}, 0, err
	}

	remaining, err := database.TTL(roomKey(roomCode))
	if err != nil {
		return models.Room{}, 0, err
	}
	if remaining <= 0 {
		// Expired between the read and now.
		return models.Room{}, 0, ErrRoomNotFound
	}

	room.UpsertMember(deviceID, label, time.Now().Unix())
	if err := database.SetJSON(roomKey(roomCode), room, remaining); err != nil {
		return models.Room{}, 0, err
	}
	return room, remaining, nil
}
