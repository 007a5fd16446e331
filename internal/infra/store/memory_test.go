package store

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeForKey(t *testing.T) {
	tests := map[string]string{
		"https://Example.COM/a.png":      "https://example.com/a.png",
		"https://example.com/a.png#frag": "https://example.com/a.png",
		"https://example.com:443/a.png":  "https://example.com/a.png",
		"http://example.com:80/a.png":    "http://example.com/a.png",
		"http://example.com:8080/a.png":  "http://example.com:8080/a.png",
		"https://example.com/A.png?v=1":  "https://example.com/A.png?v=1",
		"http://[::1]:8080/i.ico":        "http://[::1]:8080/i.ico",
		"http://[::1]/i.ico":             "http://[::1]/i.ico",
	}
	for in, want := range tests {
		assert.Equal(t, want, NormalizeForKey(in), in)
	}
}

func TestMemory_MarkSeen(t *testing.T) {
	m := NewMemory()

	assert.True(t, m.MarkSeen("https://example.com/favicon.ico"))
	assert.False(t, m.MarkSeen("https://EXAMPLE.com/favicon.ico#x"))
	assert.True(t, m.MarkSeen("https://example.com/Favicon.ico"))

	assert.Equal(t, 2, m.SeenCount())
	assert.Equal(t, []string{"https://example.com/favicon.ico", "https://example.com/Favicon.ico"}, m.All())
}

func TestMemory_ConcurrentMarkSeen(t *testing.T) {
	m := NewMemory()

	var wg sync.WaitGroup
	var mu sync.Mutex
	fresh := 0
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if m.MarkSeen("https://example.com/same.png") {
				mu.Lock()
				fresh++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, fresh)
	assert.Equal(t, 1, m.SeenCount())
}
