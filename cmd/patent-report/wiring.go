// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"

	"go.uber.org/zap"

	"github.com/pdiddy/patent-report/internal/cache"
	"github.com/pdiddy/patent-report/internal/httputil"
	"github.com/pdiddy/patent-report/internal/scrape"
	"github.com/pdiddy/patent-report/internal/translate"
)

// newScraper builds the fail-soft scraper. Listing and image pages get
// separate clients so each keeps its own request spacing; results are
// memoized when a cache store is given.
func newScraper(store cache.Store) *scrape.Safe {
	listing := httputil.NewClient(
		httputil.WithUserAgent(cfg.Scrape.UserAgent),
		httputil.WithDelay(cfg.Scrape.RequestDelay),
	)
	images := httputil.NewClient(
		httputil.WithUserAgent(cfg.Scrape.UserAgent),
		httputil.WithDelay(cfg.Scrape.ImageDelay),
	)

	ext := scrape.New(listing,
		scrape.WithImageFetcher(images),
		scrape.WithLogger(log),
		scrape.WithMetrics(scrapeMetrics),
		scrape.WithListingTimeout(cfg.Scrape.Timeout),
		scrape.WithImageTimeout(cfg.Scrape.ImageTimeout),
	)

	var src scrape.Source = ext
	if store != nil {
		src = cache.NewExtractor(ext, store, log, scrapeMetrics)
	}
	return scrape.NewSafe(src, log)
}

// newTranslation returns the translation service, or nil when translation
// is disabled.
func newTranslation(store cache.Store) *translate.Service {
	tc := cfg.Translation
	if !tc.Enabled {
		return nil
	}

	client := httputil.NewClient(httputil.WithUserAgent(tc.UserAgent))
	var tr translate.Translator = translate.NewGoogle(client, tc.Source, tc.Target, tc.Timeout)
	if store != nil {
		tr = translate.NewCached(tr, store, tc.Source, tc.Target, log)
	}
	return translate.NewService(tr, log, tc.Workers)
}

// openStore opens the configured cache. A store that cannot be opened is
// logged and skipped; commands still work without one. The returned func
// closes the store and logs any close error.
func openStore(ctx context.Context) (cache.Store, func()) {
	store, closeFn, err := cache.Open(ctx, cfg.Cache)
	closeStore := func() {
		if err := closeFn(); err != nil {
			log.Debug("closing cache", zap.Error(err))
		}
	}
	if err != nil {
		log.Warn("cache disabled", zap.Error(err))
		return nil, closeStore
	}
	return store, closeStore
}
