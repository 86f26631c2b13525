// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package scrape

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"go.uber.org/zap"

	"github.com/pdiddy/patent-report/internal/markup"
	"github.com/pdiddy/patent-report/internal/metrics"
	"github.com/pdiddy/patent-report/pkg/types"
)

// ReportBlockSignature is the set of class tokens carried by every report
// entry on the listing page.
var ReportBlockSignature = []string{"item-archivo", "archivo2", "archivo2b"}

// Layout inside a report block.
const (
	blockTag      = "div"
	rightRegion   = "der-archivo"
	textRegion    = "texto-archivo"
	titleTag      = "h4"
	leftRegion    = "izq-archivo"
	pdfExtension  = ".pdf"
	dropNoTitle   = "title"
	dropNoPDFLink = "link"
)

// Reports fetches the listing page and returns one record per report block
// that has both a title and a PDF link, in document order.
//
// A page without any report block returns ErrNoStructuralMatch. Blocks
// lacking a title or a PDF link are skipped without affecting the others.
func (e *Extractor) Reports(ctx context.Context, listingURL string) (records []types.ReportRecord, err error) {
	defer func() { e.metrics.Outcome(metrics.OpReports, resultLabel(err)) }()

	base, err := parseHTTPURL(listingURL)
	if err != nil {
		return nil, err
	}

	resp, err := e.fetcher.Get(ctx, listingURL, e.listingTimeout)
	if err != nil {
		return nil, fetchError(err)
	}

	page, err := markup.ParseBytes(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", listingURL, err)
	}

	blocks := page.FindAll(blockTag, ReportBlockSignature...)
	if len(blocks) == 0 {
		return nil, fmt.Errorf("%w at %s", ErrNoStructuralMatch, listingURL)
	}

	records = make([]types.ReportRecord, 0, len(blocks))
	for i, b := range blocks {
		title := blockTitle(b)
		if title == "" {
			e.metrics.Dropped(dropNoTitle)
			e.log.Debug("report block has no title", zap.Int("block", i))
			continue
		}
		link := blockPDFLink(b, base)
		if link == "" {
			e.metrics.Dropped(dropNoPDFLink)
			e.log.Debug("report block has no pdf link", zap.Int("block", i), zap.String("title", title))
			continue
		}
		records = append(records, types.ReportRecord{Title: title, PDFLink: link})
	}

	e.metrics.Records(len(records))
	e.log.Info("listing scraped",
		zap.String("url", listingURL),
		zap.Int("blocks", len(blocks)),
		zap.Int("records", len(records)))
	return records, nil
}

// blockTitle returns the heading text under the right-hand text region with
// whitespace runs collapsed, or "" when any level is missing.
func blockTitle(b *markup.Element) string {
	right := b.Find("div", rightRegion)
	if right == nil {
		return ""
	}
	text := right.Find("div", textRegion)
	if text == nil {
		return ""
	}
	h := text.Find(titleTag, "")
	if h == nil {
		return ""
	}
	return strings.Join(strings.Fields(h.Text()), " ")
}

// blockPDFLink returns the absolute URL of the first href in the left-hand
// region when its path ends in .pdf. Relative hrefs resolve against base.
func blockPDFLink(b *markup.Element, base *url.URL) string {
	left := b.Find("div", leftRegion)
	if left == nil {
		return ""
	}
	a := left.FindWithAttr("a", "href")
	if a == nil {
		return ""
	}
	href, _ := a.Attr("href")
	href = strings.TrimSpace(href)

	ref, err := url.Parse(href)
	if err != nil {
		// Browsers accept a bare % in a link; escape it and try again.
		if ref, err = url.Parse(escapeStrayPercents(href)); err != nil {
			return ""
		}
	}
	if !strings.HasSuffix(strings.ToLower(ref.Path), pdfExtension) {
		return ""
	}

	if ref.IsAbs() {
		if !hasHTTPScheme(href) || ref.Host == "" {
			return ""
		}
		return href
	}
	return base.ResolveReference(ref).String()
}

// escapeStrayPercents rewrites every % that does not start a valid
// escape sequence as %25.
func escapeStrayPercents(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] == '%' && (i+2 >= len(s) || !isHex(s[i+1]) || !isHex(s[i+2])) {
			b.WriteString("%25")
			continue
		}
		b.WriteByte(s[i])
	}
	return b.String()
}

func isHex(c byte) bool {
	return '0' <= c && c <= '9' || 'a' <= c && c <= 'f' || 'A' <= c && c <= 'F'
}
