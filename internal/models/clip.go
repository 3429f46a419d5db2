package models

import (
	"encoding/json"
	"strings"
)

// Clip is the ephemeral payload one share code resolves to.
type Clip struct {
	Links     []string `json:"links"`
	Text      string   `json:"text,omitempty"`
	CreatedAt int64    `json:"createdAt"`
	Reads     int      `json:"reads"`
}

// ParseClip normalizes a stored clip value. Early deployments stored
// the payload as a bare string; those are treated as text-only clips.
func ParseClip(raw string) Clip {
	if strings.HasPrefix(strings.TrimSpace(raw), "{") {
		var clip Clip
		if err := json.Unmarshal([]byte(raw), &clip); err == nil {
			if clip.Links == nil {
				clip.Links = []string{}
			}
			return clip
		}
	}
	return Clip{Links: []string{}, Text: raw}
}
