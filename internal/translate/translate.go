// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package translate turns patent titles and abstracts into the display
// language. Translation is best-effort: Service never returns an error and
// substitutes a fixed placeholder for text that is too short or that the
// backend failed on.
package translate

import (
	"context"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Placeholders shown instead of a translation.
const (
	PlaceholderTooShort = "Contenido no disponible o demasiado corto para traducir."
	PlaceholderFailed   = "Error de traducción."
)

// MinLength is the shortest trimmed text, in characters, worth translating.
const MinLength = 5

// Translator translates a single text.
type Translator interface {
	Translate(ctx context.Context, text string) (string, error)
}

// Service applies the placeholder rules around a Translator.
type Service struct {
	tr      Translator
	log     *zap.Logger
	workers int
}

// NewService returns a Service running at most workers translations at
// once in All. A nil log discards warnings.
func NewService(tr Translator, log *zap.Logger, workers int) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	if workers <= 0 {
		workers = 1
	}
	return &Service{tr: tr, log: log, workers: workers}
}

// Text translates text, or returns PlaceholderTooShort or PlaceholderFailed.
func (s *Service) Text(ctx context.Context, text string) string {
	if utf8.RuneCountInString(strings.TrimSpace(text)) < MinLength {
		return PlaceholderTooShort
	}
	out, err := s.tr.Translate(ctx, text)
	if err != nil {
		s.log.Warn("translation failed", zap.String("text", abbreviate(text, 50)), zap.Error(err))
		return PlaceholderFailed
	}
	return out
}

// All translates texts concurrently. The result is index-aligned with
// texts.
func (s *Service) All(ctx context.Context, texts []string) []string {
	out := make([]string, len(texts))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)
	for i, text := range texts {
		g.Go(func() error {
			out[i] = s.Text(gctx, text)
			return nil
		})
	}
	_ = g.Wait()
	return out
}

func abbreviate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "..."
}
