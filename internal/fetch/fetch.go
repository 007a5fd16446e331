// Package fetch issues the two kinds of GET the pipeline needs: a full page
// download and a range-limited prefix download for image probing.
package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"

	"github.com/rojanmagar2001/siteicons/internal/domain"
	"github.com/rojanmagar2001/siteicons/internal/ports"
)

const (
	DefaultPrefixBytes  = 100
	DefaultMaxPageBytes = 5 << 20
)

type Fetcher struct {
	Client       ports.HTTPClient
	UserAgent    string
	Timeout      time.Duration
	PrefixBytes  int64
	MaxPageBytes int64
}

func NewFetcher(client ports.HTTPClient, userAgent string, timeout time.Duration) *Fetcher {
	return &Fetcher{
		Client:       client,
		UserAgent:    userAgent,
		Timeout:      timeout,
		PrefixBytes:  DefaultPrefixBytes,
		MaxPageBytes: DefaultMaxPageBytes,
	}
}

// StatusError is a completed exchange with a non-2xx status.
type StatusError struct {
	URL        string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s: unexpected status %d", e.URL, e.StatusCode)
}

func (e *StatusError) Unwrap() error {
	return domain.ErrFetch
}

type Page struct {
	// URL is the final URL after redirects; relative references resolve against it.
	URL         string
	ContentType string
	Body        []byte
	Elapsed     time.Duration
}

// IsHTML matches Content-Type values starting with text/html.
func (p *Page) IsHTML() bool {
	return strings.HasPrefix(strings.ToLower(strings.TrimSpace(p.ContentType)), "text/html")
}

type Prefix struct {
	URL        string
	StatusCode int
	Header     http.Header
	Bytes      []byte
	Elapsed    time.Duration
}

// ContentType prefers the server's header and falls back to sniffing the bytes.
func (p *Prefix) ContentType() string {
	if ct := p.Header.Get("Content-Type"); ct != "" {
		return ct
	}
	if len(p.Bytes) == 0 {
		return ""
	}
	return mimetype.Detect(p.Bytes).String()
}

// FetchPage downloads the page body without a Range header, up to MaxPageBytes.
func (f *Fetcher) FetchPage(ctx context.Context, link string) (*Page, error) {
	resp, elapsed, cancel, err := f.do(ctx, link, nil)
	if err != nil {
		return nil, err
	}
	defer cancel()
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, orDefault(f.MaxPageBytes, DefaultMaxPageBytes)))
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %v", domain.ErrFetch, link, err)
	}

	return &Page{
		URL:         resp.Request.URL.String(),
		ContentType: resp.Header.Get("Content-Type"),
		Body:        body,
		Elapsed:     elapsed,
	}, nil
}

// FetchPrefix asks for the first PrefixBytes bytes. Servers that ignore the
// Range header still only have PrefixBytes read from them.
func (f *Fetcher) FetchPrefix(ctx context.Context, link string) (*Prefix, error) {
	n := orDefault(f.PrefixBytes, DefaultPrefixBytes)
	hdr := http.Header{}
	hdr.Set("Range", fmt.Sprintf("bytes=0-%d", n-1))

	resp, elapsed, cancel, err := f.do(ctx, link, hdr)
	if err != nil {
		return nil, err
	}
	defer cancel()
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, n))
	if err != nil && len(data) == 0 {
		return nil, fmt.Errorf("%w: read %s: %v", domain.ErrFetch, link, err)
	}

	return &Prefix{
		URL:        link,
		StatusCode: resp.StatusCode,
		Header:     resp.Header,
		Bytes:      data,
		Elapsed:    elapsed,
	}, nil
}

// do sends a GET bounded by f.Timeout. On success the caller owns the body and
// must call cancel after reading it.
func (f *Fetcher) do(ctx context.Context, link string, hdr http.Header) (*http.Response, time.Duration, context.CancelFunc, error) {
	reqCtx, cancel := ctx, context.CancelFunc(func() {})
	if f.Timeout > 0 {
		reqCtx, cancel = context.WithTimeout(ctx, f.Timeout)
	}

	req, err := http.NewRequestWithContext(reqCtx, http.MethodGet, link, http.NoBody)
	if err != nil {
		cancel()
		return nil, 0, nil, fmt.Errorf("%w: new request: %v", domain.ErrInvalidURL, err)
	}
	for k, v := range hdr {
		req.Header[k] = v
	}
	if f.UserAgent != "" {
		req.Header.Set("User-Agent", f.UserAgent)
	}

	start := time.Now()
	resp, err := f.Client.Do(req)
	elapsed := time.Since(start)
	if err != nil {
		cancel()
		return nil, elapsed, nil, fmt.Errorf("%w: GET %s: %v", domain.ErrFetch, link, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.CopyN(io.Discard, resp.Body, 4<<10)
		resp.Body.Close()
		cancel()
		return nil, elapsed, nil, &StatusError{URL: link, StatusCode: resp.StatusCode}
	}

	return resp, elapsed, cancel, nil
}

func orDefault(v, def int64) int64 {
	if v <= 0 {
		return def
	}
	return v
}
