// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package httputil provides the page fetcher shared by the scraping and
// translation stages. Failures are classified into a NetworkError so callers
// can tell timeouts, connection failures and HTTP status errors apart.
package httputil

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	"golang.org/x/time/rate"
)

// Kind classifies a NetworkError.
type Kind int

const (
	KindTimeout Kind = iota + 1
	KindConnection
	KindHTTPStatus
)

func (k Kind) String() string {
	switch k {
	case KindTimeout:
		return "timeout"
	case KindConnection:
		return "connection"
	case KindHTTPStatus:
		return "http_status"
	default:
		return "unknown"
	}
}

// NetworkError reports a failed fetch.
type NetworkError struct {
	Kind Kind
	URL  string

	// StatusCode is set for KindHTTPStatus.
	StatusCode int

	Err error
}

func (e *NetworkError) Error() string {
	switch e.Kind {
	case KindHTTPStatus:
		return fmt.Sprintf("HTTP %d from %s", e.StatusCode, e.URL)
	case KindTimeout:
		return fmt.Sprintf("timed out fetching %s: %v", e.URL, e.Err)
	default:
		return fmt.Sprintf("fetching %s: %v", e.URL, e.Err)
	}
}

func (e *NetworkError) Unwrap() error { return e.Err }

// IsTimeout reports whether err is a NetworkError of KindTimeout.
func IsTimeout(err error) bool {
	var ne *NetworkError
	return errors.As(err, &ne) && ne.Kind == KindTimeout
}

// Response is a successful (2xx) fetch.
type Response struct {
	URL        string
	StatusCode int
	Body       []byte
}

// Fetcher performs a single HTTP GET bounded by timeout.
type Fetcher interface {
	Get(ctx context.Context, url string, timeout time.Duration) (*Response, error)
}

// Client is the production Fetcher backed by resty.
type Client struct {
	rc        *resty.Client
	limiter   *rate.Limiter
	userAgent string
}

// Option configures a Client.
type Option func(*Client)

// WithUserAgent sets the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		c.userAgent = ua
	}
}

// WithDelay spaces consecutive requests at least d apart. The first request
// is not delayed.
func WithDelay(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.limiter = rate.NewLimiter(rate.Every(d), 1)
		}
	}
}

// WithHTTPClient replaces the underlying transport client. Tests pass
// httptest server clients here.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.rc = resty.NewWithClient(hc)
	}
}

// NewClient returns a Client. Redirects are followed by the transport.
func NewClient(opts ...Option) *Client {
	c := &Client{}
	for _, opt := range opts {
		opt(c)
	}
	if c.rc == nil {
		c.rc = resty.New()
	}
	return c
}

// Get fetches url. Any status outside 2xx is returned as a NetworkError of
// KindHTTPStatus; the body is discarded in that case.
func (c *Client) Get(ctx context.Context, url string, timeout time.Duration) (*Response, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, classify(url, err)
		}
	}

	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	req := c.rc.R().SetContext(ctx)
	if c.userAgent != "" {
		req.SetHeader("User-Agent", c.userAgent)
	}

	resp, err := req.Get(url)
	if err != nil {
		return nil, classify(url, err)
	}

	code := resp.StatusCode()
	if code < http.StatusOK || code >= http.StatusMultipleChoices {
		return nil, &NetworkError{Kind: KindHTTPStatus, URL: url, StatusCode: code}
	}
	return &Response{URL: url, StatusCode: code, Body: resp.Body()}, nil
}

func classify(url string, err error) *NetworkError {
	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
		return &NetworkError{Kind: KindTimeout, URL: url, Err: err}
	}
	return &NetworkError{Kind: KindConnection, URL: url, Err: err}
}
