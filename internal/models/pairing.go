package models

import (
	"encoding/json"
	"strings"
)

// PairingCode is the short-lived record a receiver creates so that a
// sender can link to it. One-time use.
type PairingCode struct {
	ReceiverDeviceID    string `json:"receiverDeviceId"`
	ReceiverDeviceLabel string `json:"receiverDeviceLabel,omitempty"`
}

// SenderPairing is the durable, directed "sender trusts receiver"
// edge written when a pairing code is confirmed.
type SenderPairing struct {
	ReceiverDeviceID    string `json:"receiverDeviceId"`
	ReceiverDeviceLabel string `json:"receiverDeviceLabel,omitempty"`
	SenderDeviceLabel   string `json:"senderDeviceLabel,omitempty"`
}

// ParsePairingCode normalizes a stored pairing-code value. The
// pre-label schema stored just the receiver device id as a bare
// string.
func ParsePairingCode(raw string) PairingCode {
	if strings.HasPrefix(strings.TrimSpace(raw), "{") {
		var pc PairingCode
		if err := json.Unmarshal([]byte(raw), &pc); err == nil {
			return pc
		}
	}
	return PairingCode{ReceiverDeviceID: raw}
}

// ParseSenderPairing normalizes a stored sender-pairing value,
// accepting the same bare-device-id legacy shape.
func ParseSenderPairing(raw string) SenderPairing {
	if strings.HasPrefix(strings.TrimSpace(raw), "{") {
		var sp SenderPairing
		if err := json.Unmarshal([]byte(raw), &sp); err == nil {
			return sp
		}
	}
	return SenderPairing{ReceiverDeviceID: raw}
}
