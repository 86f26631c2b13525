// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package scrape

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/pdiddy/patent-report/pkg/types"
)

// Safe adapts a Source to the fail-soft contract used by the presentation
// layer: every error becomes an empty result and a log entry. Callers that
// need to tell "nothing found" from "failed" read the log or the metrics.
type Safe struct {
	src Source
	log *zap.Logger
}

// NewSafe wraps src. A nil log discards advisories.
func NewSafe(src Source, log *zap.Logger) *Safe {
	if log == nil {
		log = zap.NewNop()
	}
	return &Safe{src: src, log: log}
}

// ExtractReports returns the listing's records, or nil on any error.
func (s *Safe) ExtractReports(ctx context.Context, listingURL string) []types.ReportRecord {
	records, err := s.src.Reports(ctx, listingURL)
	if err == nil {
		return records
	}

	fields := []zap.Field{zap.String("url", listingURL), zap.Error(err)}
	switch {
	case errors.Is(err, ErrNoStructuralMatch):
		s.log.Warn("no report blocks found", fields...)
	case errors.Is(err, ErrInvalidURL):
		s.log.Warn("invalid listing url", fields...)
	default:
		s.log.Error("listing unavailable", fields...)
	}
	return nil
}

// ResolveImage returns the page's image URL, or "" on any error.
func (s *Safe) ResolveImage(ctx context.Context, pageURL string) string {
	img, err := s.src.Image(ctx, pageURL)
	if err == nil {
		return img
	}

	if errors.Is(err, ErrInvalidURL) {
		s.log.Debug("invalid image page url", zap.String("url", pageURL), zap.Error(err))
	} else {
		s.log.Warn("image page unavailable", zap.String("url", pageURL), zap.Error(err))
	}
	return ""
}

// ResolveImages resolves pageURLs with at most workers in flight. The
// result is index-aligned with pageURLs.
func (s *Safe) ResolveImages(ctx context.Context, pageURLs []string, workers int) []string {
	out := make([]string, len(pageURLs))

	g, gctx := errgroup.WithContext(ctx)
	if workers > 0 {
		g.SetLimit(workers)
	}
	for i, u := range pageURLs {
		g.Go(func() error {
			out[i] = s.ResolveImage(gctx, u)
			return nil
		})
	}
	_ = g.Wait()
	return out
}
