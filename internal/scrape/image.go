// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package scrape

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/pdiddy/patent-report/internal/markup"
	"github.com/pdiddy/patent-report/internal/metrics"
)

// OGImageProperty marks the social preview image meta tag.
const OGImageProperty = "og:image"

// Image fetches pageURL and returns its representative image URL. The
// og:image meta content wins, verbatim; otherwise the first img whose src
// is an absolute http(s) URL. A page with neither returns "" and no error.
func (e *Extractor) Image(ctx context.Context, pageURL string) (img string, err error) {
	defer func() {
		result := resultLabel(err)
		if err == nil && img == "" {
			result = metrics.ResultNoMatch
		}
		e.metrics.Outcome(metrics.OpImage, result)
	}()

	if _, err := parseHTTPURL(pageURL); err != nil {
		return "", err
	}

	resp, err := e.imageFetcher.Get(ctx, pageURL, e.imageTimeout)
	if err != nil {
		return "", fetchError(err)
	}

	page, err := markup.ParseBytes(resp.Body)
	if err != nil {
		return "", fmt.Errorf("page %s: %w", pageURL, err)
	}

	if metas := page.FindAttr("meta", "property", OGImageProperty); len(metas) > 0 {
		if content, _ := metas[0].Attr("content"); strings.TrimSpace(content) != "" {
			e.log.Debug("image from og:image", zap.String("url", pageURL))
			return content, nil
		}
	}

	for _, el := range page.FindAll("img") {
		if src, ok := el.Attr("src"); ok && hasHTTPScheme(src) {
			e.log.Debug("image from img src", zap.String("url", pageURL))
			return src, nil
		}
	}
	return "", nil
}
