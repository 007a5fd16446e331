// Package resolve turns candidate references into absolute http(s) URLs.
package resolve

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/rojanmagar2001/siteicons/internal/domain"
)

// ParseBase validates a page URL given by the caller.
func ParseBase(raw string) (*url.URL, error) {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", domain.ErrInvalidURL, raw, err)
	}
	if !u.IsAbs() || !isHTTP(u.Scheme) || u.Host == "" {
		return nil, fmt.Errorf("%w: %q: absolute http(s) url required", domain.ErrInvalidURL, raw)
	}
	return u, nil
}

// Resolve joins candidate against base with RFC 3986 reference resolution.
// Only http and https results are accepted.
func Resolve(base *url.URL, candidate string) (*url.URL, error) {
	ref, err := url.Parse(strings.TrimSpace(candidate))
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", domain.ErrInvalidURL, candidate, err)
	}

	u := base.ResolveReference(ref)
	if !isHTTP(u.Scheme) {
		return nil, fmt.Errorf("%w: %q: unsupported scheme %q", domain.ErrInvalidURL, candidate, u.Scheme)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("%w: %q: missing host", domain.ErrInvalidURL, candidate)
	}
	return u, nil
}

func isHTTP(scheme string) bool {
	switch strings.ToLower(scheme) {
	case "http", "https":
		return true
	}
	return false
}
