package httpclient

import (
	"net/http"
	"time"
)

const (
	DefaultMaxIdleConns        = 64
	DefaultMaxIdleConnsPerHost = 8
	DefaultIdleConnTimeout     = 30 * time.Second
	DefaultTLSHandshakeTimeout = 10 * time.Second
)

type Client struct {
	c *http.Client
}

// New returns a client whose transport is tuned for many short, small
// requests to a handful of hosts. timeout bounds each request end to end.
func New(timeout time.Duration, maxConnsPerHost int) *Client {
	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.MaxIdleConns = DefaultMaxIdleConns
	transport.MaxIdleConnsPerHost = DefaultMaxIdleConnsPerHost
	transport.IdleConnTimeout = DefaultIdleConnTimeout
	transport.TLSHandshakeTimeout = DefaultTLSHandshakeTimeout
	transport.ResponseHeaderTimeout = timeout
	if maxConnsPerHost > 0 {
		transport.MaxConnsPerHost = maxConnsPerHost
	}

	return &Client{c: &http.Client{Timeout: timeout, Transport: transport}}
}

func (c *Client) Do(req *http.Request) (*http.Response, error) {
	return c.c.Do(req)
}

// CloseIdleConnections releases pooled connections once a run is over.
func (c *Client) CloseIdleConnections() {
	c.c.CloseIdleConnections()
}
