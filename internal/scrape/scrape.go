// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package scrape extracts report records from the regulator's listing page
// and resolves a representative image for arbitrary pages.
//
// Extractor returns classified errors for diagnostics. Safe (and the
// ExtractReports and ResolveImage shortcuts) turn every error into an empty
// result plus a log entry, which is what the presentation layer consumes.
package scrape

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/pdiddy/patent-report/internal/httputil"
	"github.com/pdiddy/patent-report/internal/metrics"
	"github.com/pdiddy/patent-report/pkg/types"
)

// Default request timeouts. Image resolution gets the shorter one.
const (
	DefaultListingTimeout = 10 * time.Second
	DefaultImageTimeout   = 5 * time.Second
)

// Source is anything that can produce reports and images with errors
// attached. Extractor implements it, as does the memoizing wrapper in
// internal/cache.
type Source interface {
	Reports(ctx context.Context, listingURL string) ([]types.ReportRecord, error)
	Image(ctx context.Context, pageURL string) (string, error)
}

// Extractor runs both scraping pipelines over a Fetcher. It holds no
// per-call state and is safe for concurrent use.
type Extractor struct {
	fetcher        httputil.Fetcher
	imageFetcher   httputil.Fetcher
	log            *zap.Logger
	metrics        *metrics.Scrape
	listingTimeout time.Duration
	imageTimeout   time.Duration
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithLogger sets the advisory logger. A nil logger is ignored.
func WithLogger(log *zap.Logger) Option {
	return func(e *Extractor) {
		if log != nil {
			e.log = log
		}
	}
}

// WithImageFetcher sends image page requests through f instead of the
// listing fetcher, so each can keep its own request spacing.
func WithImageFetcher(f httputil.Fetcher) Option {
	return func(e *Extractor) { e.imageFetcher = f }
}

// WithMetrics records scrape outcomes in m.
func WithMetrics(m *metrics.Scrape) Option {
	return func(e *Extractor) { e.metrics = m }
}

// WithListingTimeout bounds the listing fetch. Non-positive values keep the default.
func WithListingTimeout(d time.Duration) Option {
	return func(e *Extractor) {
		if d > 0 {
			e.listingTimeout = d
		}
	}
}

// WithImageTimeout bounds the image page fetch. Non-positive values keep the default.
func WithImageTimeout(d time.Duration) Option {
	return func(e *Extractor) {
		if d > 0 {
			e.imageTimeout = d
		}
	}
}

// New returns an Extractor that fetches through f.
func New(f httputil.Fetcher, opts ...Option) *Extractor {
	e := &Extractor{
		fetcher:        f,
		log:            zap.NewNop(),
		listingTimeout: DefaultListingTimeout,
		imageTimeout:   DefaultImageTimeout,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.imageFetcher == nil {
		e.imageFetcher = f
	}
	return e
}

// ExtractReports is Reports with errors reduced to a nil result and a log
// entry.
func (e *Extractor) ExtractReports(ctx context.Context, listingURL string) []types.ReportRecord {
	return NewSafe(e, e.log).ExtractReports(ctx, listingURL)
}

// ResolveImage is Image with errors reduced to "" and a log entry.
func (e *Extractor) ResolveImage(ctx context.Context, pageURL string) string {
	return NewSafe(e, e.log).ResolveImage(ctx, pageURL)
}
