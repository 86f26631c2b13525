// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package translate

import (
	"context"
	"crypto/sha256"
	"encoding/hex"

	"go.uber.org/zap"

	"github.com/pdiddy/patent-report/internal/cache"
)

// Cached memoizes a Translator in a cache.Store keyed by language pair and
// a hash of the text. Failed translations are not stored.
type Cached struct {
	tr     Translator
	store  cache.Store
	prefix string
	log    *zap.Logger
}

// NewCached wraps tr. source and target scope the keys so changing the
// language pair never serves a stale entry.
func NewCached(tr Translator, store cache.Store, source, target string, log *zap.Logger) *Cached {
	if log == nil {
		log = zap.NewNop()
	}
	return &Cached{tr: tr, store: store, prefix: "translate:" + source + ":" + target + ":", log: log}
}

func (c *Cached) Translate(ctx context.Context, text string) (string, error) {
	sum := sha256.Sum256([]byte(text))
	key := c.prefix + hex.EncodeToString(sum[:])

	if v, ok, err := c.store.Get(ctx, key); err != nil {
		c.log.Warn("cache read failed", zap.String("key", key), zap.Error(err))
	} else if ok {
		return string(v), nil
	}

	out, err := c.tr.Translate(ctx, text)
	if err != nil {
		return "", err
	}
	if err := c.store.Set(ctx, key, []byte(out)); err != nil {
		c.log.Warn("cache write failed", zap.String("key", key), zap.Error(err))
	}
	return out, nil
}
