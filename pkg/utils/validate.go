package utils

import (
	"net/url"
	"regexp"
)

var deviceIDPattern = regexp.MustCompile(`^[A-Za-z0-9_-]{8,64}$`)

// IsDeviceID checks that a client-minted device identifier has the
// expected opaque format. The server never generates these.
func IsDeviceID(s string) bool {
	return deviceIDPattern.MatchString(s)
}

// IsShareableURL reports whether a link may be stored in a clip.
// Only absolute http/https URLs are accepted.
func IsShareableURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return false
	}
	return u.Host != ""
}
