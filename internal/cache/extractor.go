// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/pdiddy/patent-report/internal/metrics"
	"github.com/pdiddy/patent-report/internal/scrape"
	"github.com/pdiddy/patent-report/pkg/types"
)

const (
	reportsKeyPrefix = "reports:"
	imageKeyPrefix   = "image:"
)

type reportsEntry struct {
	Records []types.ReportRecord `json:"records"`
	NoMatch bool                 `json:"no_match,omitempty"`
}

type imageEntry struct {
	Image string `json:"image"`
}

// Extractor memoizes a scrape.Source by URL. Successful results and
// listings without report blocks are stored; every other error passes
// through uncached so the next call retries the network. A failing Store
// degrades to direct calls.
type Extractor struct {
	src     scrape.Source
	store   Store
	log     *zap.Logger
	metrics *metrics.Scrape
}

// NewExtractor wraps src with store. log and m may be nil.
func NewExtractor(src scrape.Source, store Store, log *zap.Logger, m *metrics.Scrape) *Extractor {
	if log == nil {
		log = zap.NewNop()
	}
	return &Extractor{src: src, store: store, log: log, metrics: m}
}

func (c *Extractor) Reports(ctx context.Context, listingURL string) ([]types.ReportRecord, error) {
	key := reportsKeyPrefix + listingURL

	var entry reportsEntry
	if c.load(ctx, metrics.OpReports, key, &entry) {
		if entry.NoMatch {
			return nil, fmt.Errorf("%w at %s", scrape.ErrNoStructuralMatch, listingURL)
		}
		return entry.Records, nil
	}

	records, err := c.src.Reports(ctx, listingURL)
	switch {
	case err == nil:
		c.save(ctx, key, reportsEntry{Records: records})
	case errors.Is(err, scrape.ErrNoStructuralMatch):
		c.save(ctx, key, reportsEntry{NoMatch: true})
	}
	return records, err
}

func (c *Extractor) Image(ctx context.Context, pageURL string) (string, error) {
	key := imageKeyPrefix + pageURL

	var entry imageEntry
	if c.load(ctx, metrics.OpImage, key, &entry) {
		return entry.Image, nil
	}

	img, err := c.src.Image(ctx, pageURL)
	if err == nil {
		c.save(ctx, key, imageEntry{Image: img})
	}
	return img, err
}

func (c *Extractor) load(ctx context.Context, op, key string, v any) bool {
	data, ok, err := c.store.Get(ctx, key)
	if err != nil {
		c.metrics.CacheLookup(op, metrics.CacheError)
		c.log.Warn("cache read failed", zap.String("key", key), zap.Error(err))
		return false
	}
	if !ok {
		c.metrics.CacheLookup(op, metrics.CacheMiss)
		return false
	}
	if err := json.Unmarshal(data, v); err != nil {
		c.metrics.CacheLookup(op, metrics.CacheError)
		c.log.Warn("cache entry unreadable", zap.String("key", key), zap.Error(err))
		return false
	}
	c.metrics.CacheLookup(op, metrics.CacheHit)
	return true
}

func (c *Extractor) save(ctx context.Context, key string, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		c.log.Warn("cache entry not encodable", zap.String("key", key), zap.Error(err))
		return
	}
	if err := c.store.Set(ctx, key, data); err != nil {
		c.log.Warn("cache write failed", zap.String("key", key), zap.Error(err))
	}
}
