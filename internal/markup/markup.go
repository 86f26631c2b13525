// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package markup wraps a parsed HTML tree with the small query surface the
// scrapers need: find all elements by tag and class tokens, find the first
// matching descendant, read text and attributes. The tree is read-only.
package markup

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// Page is a parsed HTML document.
type Page struct {
	doc *goquery.Document
}

// Element is a single node in a Page.
type Element struct {
	sel *goquery.Selection
}

// Parse reads an HTML document. The HTML5 parser recovers from malformed
// markup, so errors only come from the reader.
func Parse(r io.Reader) (*Page, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parsing html: %w", err)
	}
	return &Page{doc: goquery.NewDocumentFromNode(root)}, nil
}

// ParseBytes is Parse over an in-memory body.
func ParseBytes(body []byte) (*Page, error) {
	return Parse(bytes.NewReader(body))
}

// FindAll returns every tag element whose class attribute contains all of
// tokens, in document order. Token order, extra classes and extra
// whitespace are ignored.
func (p *Page) FindAll(tag string, tokens ...string) []*Element {
	return collect(p.doc.Find(tag), func(s *goquery.Selection) bool {
		class, _ := s.Attr("class")
		return HasClassTokens(class, tokens...)
	})
}

// FindAttr returns every tag element whose attr equals value, in document
// order.
func (p *Page) FindAttr(tag, attr, value string) []*Element {
	return collect(p.doc.Find(tag), func(s *goquery.Selection) bool {
		v, ok := s.Attr(attr)
		return ok && v == value
	})
}

// Find returns the first descendant tag element carrying class, or nil.
// An empty class matches any element of that tag.
func (e *Element) Find(tag, class string) *Element {
	match := e.sel.Find(tag).FilterFunction(func(_ int, s *goquery.Selection) bool {
		if class == "" {
			return true
		}
		c, _ := s.Attr("class")
		return HasClassTokens(c, class)
	}).First()
	if match.Length() == 0 {
		return nil
	}
	return &Element{sel: match}
}

// FindWithAttr returns the first descendant tag element that carries attr,
// or nil.
func (e *Element) FindWithAttr(tag, attr string) *Element {
	match := e.sel.Find(tag).FilterFunction(func(_ int, s *goquery.Selection) bool {
		_, ok := s.Attr(attr)
		return ok
	}).First()
	if match.Length() == 0 {
		return nil
	}
	return &Element{sel: match}
}

// Text returns the concatenated text of the element and its descendants.
func (e *Element) Text() string {
	return e.sel.Text()
}

// Attr returns the named attribute and whether it was present.
func (e *Element) Attr(name string) (string, bool) {
	return e.sel.Attr(name)
}

// HasClassTokens reports whether the whitespace-separated class attribute
// contains every token. No tokens matches anything.
func HasClassTokens(class string, tokens ...string) bool {
	if len(tokens) == 0 {
		return true
	}
	have := make(map[string]struct{})
	for _, f := range strings.Fields(class) {
		have[f] = struct{}{}
	}
	for _, t := range tokens {
		if _, ok := have[t]; !ok {
			return false
		}
	}
	return true
}

func collect(sel *goquery.Selection, keep func(*goquery.Selection) bool) []*Element {
	var out []*Element
	sel.Each(func(_ int, s *goquery.Selection) {
		if keep(s) {
			out = append(out, &Element{sel: s})
		}
	})
	return out
}
