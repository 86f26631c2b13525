// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package scrape

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/pdiddy/patent-report/internal/httputil"
	"github.com/pdiddy/patent-report/internal/metrics"
)

// Errors returned by Extractor. Missing titles or links inside a single
// block are not errors; the block is skipped.
var (
	ErrInvalidURL        = errors.New("invalid url")
	ErrNetworkTimeout    = errors.New("network timeout")
	ErrNetwork           = errors.New("network error")
	ErrNoStructuralMatch = errors.New("no report blocks found")
)

func fetchError(err error) error {
	if httputil.IsTimeout(err) {
		return fmt.Errorf("%w: %w", ErrNetworkTimeout, err)
	}
	return fmt.Errorf("%w: %w", ErrNetwork, err)
}

// resultLabel maps an Extractor error to its metrics result label.
func resultLabel(err error) string {
	switch {
	case err == nil:
		return metrics.ResultOK
	case errors.Is(err, ErrInvalidURL):
		return metrics.ResultInvalidURL
	case errors.Is(err, ErrNoStructuralMatch):
		return metrics.ResultNoMatch
	case errors.Is(err, ErrNetworkTimeout):
		return metrics.ResultTimeout
	case errors.Is(err, ErrNetwork):
		return metrics.ResultNetwork
	default:
		return metrics.ResultParse
	}
}

// parseHTTPURL accepts only absolute http(s) URLs with a host.
func parseHTTPURL(raw string) (*url.URL, error) {
	if !hasHTTPScheme(raw) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidURL, raw)
	}
	u, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidURL, err)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("%w: %q has no host", ErrInvalidURL, raw)
	}
	return u, nil
}

func hasHTTPScheme(s string) bool {
	l := strings.ToLower(s)
	return strings.HasPrefix(l, "http://") || strings.HasPrefix(l, "https://")
}
