package services

import (
	"fmt"
	"time"

	"github.com/lufergio/clipcode/internal/database"
	"github.com/lufergio/clipcode/internal/models"
	"github.com/lufergio/clipcode/pkg/utils"
)

const (
	MaxLinks      = 10
	MaxLinkLength = 2000
	MaxTextLength = 5000
)

// AllowedTTLs enumerates the clip lifetimes a caller may request, in
// seconds.
var AllowedTTLs = []int{60, 180, 300, 600, 1800, 3600, 86400}

func IsAllowedTTL(ttlSeconds int) bool {
	for _, t := range AllowedTTLs {
		if t == ttlSeconds {
			return true
		}
	}
	return false
}

func clipKey(code string) string {
	return fmt.Sprintf("clip:%s", code)
}

// ValidateClipPayload enforces payload bounds before the store is
// ever touched.
func ValidateClipPayload(links []string, text string) error {
	if len(links) == 0 && text == "" {
		return validation("Nothing to share: provide links or text")
	}
	if len(links) > MaxLinks {
		return validation(fmt.Sprintf("Too many links (max %d)", MaxLinks))
	}
	for _, link := range links {
		if len(link) > MaxLinkLength {
			return validation(fmt.Sprintf("Link exceeds %d characters", MaxLinkLength))
		}
		if !utils.IsShareableURL(link) {
			return validation("Links must be absolute http or https URLs")
		}
	}
	if len(text) > MaxTextLength {
		return ErrTextTooLarge
	}
	return nil
}

// CreateClip validates the payload, mints a fresh share code and
// persists the clip under it with the requested TTL.
func CreateClip(links []string, text string, ttlSeconds int) (string, error) {
	if err := ValidateClipPayload(links, text); err != nil {
		return "", err
	}
	if links == nil {
		links = []string{}
	}

	clip := models.Clip{
		Links:     links,
		Text:      text,
		CreatedAt: time.Now().Unix(),
	}
	return mintRecord(clipKey, ShareCodeAlphabet, ShareCodeLength, clip, time.Duration(ttlSeconds)*time.Second)
}

// ConsumeClip fetches a clip and deletes it in the same store
// operation, so a code resolves at most once even under concurrent
// fetchers.
func ConsumeClip(code string) (models.Clip, error) {
	raw, found, err := database.GetDelRaw(clipKey(code))
	if err != nil {
		return models.Clip{}, err
	}
	if !found {
		return models.Clip{}, ErrNotFound
	}

	clip := models.ParseClip(raw)
	clip.Reads++
	return clip, nil
}
