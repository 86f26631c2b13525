// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package translate

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"

	"github.com/pdiddy/patent-report/internal/httputil"
)

// googleTranslateBase is the mobile web translator endpoint. Tests
// override it.
var googleTranslateBase = "https://translate.google.com/m"

// MaxLength is the longest text, in characters, the endpoint accepts.
const MaxLength = 5000

var (
	ErrTooLong  = errors.New("text too long to translate")
	ErrNoResult = errors.New("no translation in response")
)

// Google translates through the public mobile translation page.
type Google struct {
	fetcher httputil.Fetcher
	source  string
	target  string
	timeout time.Duration
}

// NewGoogle returns a Google translator from source to target
// (e.g. "en", "es").
func NewGoogle(f httputil.Fetcher, source, target string, timeout time.Duration) *Google {
	return &Google{fetcher: f, source: source, target: target, timeout: timeout}
}

func (g *Google) Translate(ctx context.Context, text string) (string, error) {
	text = strings.TrimSpace(text)
	if utf8.RuneCountInString(text) > MaxLength {
		return "", fmt.Errorf("%w: %d characters", ErrTooLong, utf8.RuneCountInString(text))
	}

	q := url.Values{}
	q.Set("sl", g.source)
	q.Set("tl", g.target)
	q.Set("q", text)

	resp, err := g.fetcher.Get(ctx, googleTranslateBase+"?"+q.Encode(), g.timeout)
	if err != nil {
		return "", err
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(resp.Body))
	if err != nil {
		return "", fmt.Errorf("parsing translation page: %w", err)
	}

	out := strings.TrimSpace(doc.Find("div.result-container").First().Text())
	if out == "" {
		return "", ErrNoResult
	}
	return out, nil
}
