package limiter

import (
	"context"
	"net/url"
	"strings"
	"sync"

	"golang.org/x/time/rate"

	"github.com/rojanmagar2001/siteicons/internal/ports"
)

const (
	DefaultGlobalRate  = 20
	DefaultPerHostRate = 10
)

// PerHost applies a global limit and then a limit per target host.
type PerHost struct {
	global *rate.Limiter

	mu   sync.Mutex
	rate int
	host map[string]*rate.Limiter
}

func New(globalRate, perHostRate int) ports.Limiter {
	if globalRate <= 0 {
		globalRate = DefaultGlobalRate
	}
	if perHostRate <= 0 {
		perHostRate = DefaultPerHostRate
	}
	return &PerHost{
		global: rate.NewLimiter(rate.Limit(globalRate), globalRate),
		rate:   perHostRate,
		host:   make(map[string]*rate.Limiter),
	}
}

func (h *PerHost) Take(ctx context.Context, rawURL string) error {
	if err := h.global.Wait(ctx); err != nil {
		return err
	}

	u, err := url.Parse(rawURL)
	if err != nil {
		return nil // invalid URL already handled elsewhere
	}
	host := strings.ToLower(u.Hostname())
	if host == "" {
		return nil
	}

	h.mu.Lock()
	l, ok := h.host[host]
	if !ok {
		l = rate.NewLimiter(rate.Limit(h.rate), h.rate)
		h.host[host] = l
	}
	h.mu.Unlock()

	return l.Wait(ctx)
}

// Unlimited never blocks.
type Unlimited struct{}

func (Unlimited) Take(context.Context, string) error { return nil }
