package services

import (
	"errors"

	"github.com/lufergio/clipcode/internal/database"
	"github.com/lufergio/clipcode/internal/models"
	"github.com/lufergio/clipcode/pkg/utils"
)

// Reasons a share produced no nearby delivery. Clients surface these
// to explain silent failures.
const (
	ReasonNoSenderDevice = "no_sender_device"
	ReasonNotPaired      = "not_paired"
	ReasonInvalidPairing = "invalid_pairing"
	ReasonRoomNotFound   = "room_not_found"
	ReasonRoomEmpty      = "room_empty"
)

// ResolveNearbyTargets unions the sender's paired receiver with the
// other members of the given room. When the result is empty, reason
// tells the caller why; pairing problems win over room problems when
// both paths failed.
func ResolveNearbyTargets(senderDeviceID, roomCode string) (targets []string, reason string, err error) {
	if senderDeviceID == "" && roomCode == "" {
		return nil, ReasonNoSenderDevice, nil
	}

	seen := map[string]bool{}
	var pairReason, roomReason string

	if senderDeviceID != "" {
		raw, found, err := database.GetRaw(senderPairingKey(senderDeviceID))
		if err != nil {
			return nil, "", err
		}
		if !found {
			pairReason = ReasonNotPaired
		} else {
			pairing := parseSenderPairingTarget(raw)
			if pairing == "" {
				pairReason = ReasonInvalidPairing
			} else {
				seen[pairing] = true
				targets = append(targets, pairing)
				// Successful use keeps the pair alive for another
				// full window.
				if err := RefreshPairing(senderDeviceID); err != nil {
					return nil, "", err
				}
			}
		}
	}

	if roomCode != "" {
		room, err := GetRoom(roomCode)
		if errors.Is(err, ErrRoomNotFound) {
			roomReason = ReasonRoomNotFound
		} else if err != nil {
			return nil, "", err
		} else {
			others := room.OtherMemberIDs(senderDeviceID)
			if len(others) == 0 {
				roomReason = ReasonRoomEmpty
			}
			for _, id := range others {
				if !seen[id] {
					seen[id] = true
					targets = append(targets, id)
				}
			}
		}
	}

	if len(targets) > 0 {
		return targets, "", nil
	}
	if pairReason != "" {
		return nil, pairReason, nil
	}
	return nil, roomReason, nil
}

func parseSenderPairingTarget(raw string) string {
	receiver := models.ParseSenderPairing(raw).ReceiverDeviceID
	if !utils.IsDeviceID(receiver) {
		return ""
	}
	return receiver
}
