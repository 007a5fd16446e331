package store

import (
	"net/url"
	"strings"
	"sync"
)

// Memory keeps URLs in first-seen order.
type Memory struct {
	mu sync.Mutex

	seen  map[string]struct{}
	order []string
}

func NewMemory() *Memory {
	return &Memory{seen: make(map[string]struct{})}
}

func (m *Memory) MarkSeen(raw string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	k := NormalizeForKey(raw)
	if _, ok := m.seen[k]; ok {
		return false
	}
	m.seen[k] = struct{}{}
	m.order = append(m.order, k)
	return true
}

func (m *Memory) SeenCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.seen)
}

func (m *Memory) All() []string {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]string, len(m.order))
	copy(out, m.order)
	return out
}

// NormalizeForKey strips the fragment and lowercases scheme and host so that
// spellings of the same resource collapse to one probe. Path and query are
// case-sensitive and kept as is.
func NormalizeForKey(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return raw
	}
	u.Fragment = ""
	u.RawFragment = ""
	u.Scheme = strings.ToLower(u.Scheme)
	if u.Host != "" {
		// url.URL doesn't have Hostname setter, so normalize via Host field.
		host := strings.ToLower(u.Hostname())
		port := u.Port()
		if (u.Scheme == "http" && port == "80") || (u.Scheme == "https" && port == "443") {
			port = ""
		}
		if strings.Contains(host, ":") {
			host = "[" + host + "]"
		}
		if port != "" {
			u.Host = host + ":" + port
		} else {
			u.Host = host
		}
	}
	return u.String()
}
