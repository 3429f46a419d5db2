package models

import "encoding/json"

// NearbyMessage is one pending relay entry in a receiver's mailbox.
// MessageID is empty only for legacy single-object mailbox values,
// which have no ack round trip and are consumed on first poll.
type NearbyMessage struct {
	MessageID         string   `json:"messageId,omitempty"`
	Code              string   `json:"code"`
	Links             []string `json:"links"`
	Text              string   `json:"text,omitempty"`
	SenderDeviceLabel string   `json:"senderDeviceLabel,omitempty"`
	CreatedAt         int64    `json:"createdAt"`
}

// ParseNearbyMessage decodes one mailbox entry.
func ParseNearbyMessage(raw string) (NearbyMessage, error) {
	var msg NearbyMessage
	err := json.Unmarshal([]byte(raw), &msg)
	if msg.Links == nil {
		msg.Links = []string{}
	}
	return msg, err
}
