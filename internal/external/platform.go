package external

import (
	"net/url"
	"strings"
)

// Known apply-link platforms. A job whose apply URL lands on one of these
// domains gets a platform tag and counts as verified.
const (
	PlatformInternshala = "Internshala"
	PlatformUnstop      = "Unstop"
	PlatformMicrosoft   = "Microsoft"
)

// DetectPlatform identifies a known platform from an apply URL. The
// second return is false for unrecognized, empty, or unparseable URLs.
func DetectPlatform(applyURL string) (string, bool) {
	if applyURL == "" || applyURL == "#" {
		return "", false
	}
	parsed, err := url.Parse(applyURL)
	if err != nil {
		return "", false
	}

	host := strings.ToLower(parsed.Host)
	path := strings.ToLower(parsed.Path)

	switch {
	case strings.Contains(host, "internshala.com"):
		return PlatformInternshala, true
	case strings.Contains(host, "unstop.com"):
		return PlatformUnstop, true
	case strings.Contains(host, "careers.microsoft.com"),
		strings.Contains(host, "microsoft.com") && strings.Contains(path, "career"):
		return PlatformMicrosoft, true
	}
	return "", false
}
