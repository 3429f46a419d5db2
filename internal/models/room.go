package models

// RoomMember is one device inside a broadcast room.
type RoomMember struct {
	DeviceID    string `json:"deviceId"`
	DeviceLabel string `json:"deviceLabel,omitempty"`
	JoinedAt    int64  `json:"joinedAt"`
}

// Room is an ephemeral multi-device group a share can broadcast to.
type Room struct {
	HostDeviceID    string       `json:"hostDeviceId"`
	HostDeviceLabel string       `json:"hostDeviceLabel,omitempty"`
	CreatedAt       int64        `json:"createdAt"`
	Members         []RoomMember `json:"members"`
}

// UpsertMember adds a device to the room or, if it is already a
// member, updates its label in place. Membership is deduplicated by
// device id, so re-joining is idempotent.
func (r *Room) UpsertMember(deviceID, label string, joinedAt int64) {
	for i := range r.Members {
		if r.Members[i].DeviceID == deviceID {
			r.Members[i].DeviceLabel = label
			return
		}
	}
	r.Members = append(r.Members, RoomMember{
		DeviceID:    deviceID,
		DeviceLabel: label,
		JoinedAt:    joinedAt,
	})
}

// OtherMemberIDs returns every member device id except the given one.
func (r *Room) OtherMemberIDs(exceptDeviceID string) []string {
	ids := make([]string, 0, len(r.Members))
	for _, m := range r.Members {
		if m.DeviceID != exceptDeviceID {
			ids = append(ids, m.DeviceID)
		}
	}
	return ids
}
