// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package cache memoizes scrape results by URL. Store is the byte-level
// backend (in-process LRU or Redis); Extractor layers it over a
// scrape.Source.
package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/redis/go-redis/v9"

	"github.com/pdiddy/patent-report/pkg/types"
)

// Store is a key/value cache. Get reports a miss as ok == false with a nil
// error.
type Store interface {
	Get(ctx context.Context, key string) (value []byte, ok bool, err error)
	Set(ctx context.Context, key string, value []byte) error
}

// Default sizing.
const (
	DefaultSize   = 256
	DefaultTTL    = time.Hour
	DefaultPrefix = "patent-report:"
)

// LRU is an in-process Store with per-entry expiry.
type LRU struct {
	lru *expirable.LRU[string, []byte]
}

// NewLRU returns an LRU holding at most size entries for ttl each. A zero
// ttl never expires entries.
func NewLRU(size int, ttl time.Duration) *LRU {
	if size <= 0 {
		size = DefaultSize
	}
	return &LRU{lru: expirable.NewLRU[string, []byte](size, nil, ttl)}
}

func (c *LRU) Get(_ context.Context, key string) ([]byte, bool, error) {
	v, ok := c.lru.Get(key)
	return v, ok, nil
}

func (c *LRU) Set(_ context.Context, key string, value []byte) error {
	c.lru.Add(key, value)
	return nil
}

// Len returns the number of live entries.
func (c *LRU) Len() int { return c.lru.Len() }

// Redis is a Store shared across processes. Keys are namespaced by prefix.
type Redis struct {
	rdb    redis.Cmdable
	prefix string
	ttl    time.Duration
}

// NewRedis returns a Redis store over rdb.
func NewRedis(rdb redis.Cmdable, prefix string, ttl time.Duration) *Redis {
	return &Redis{rdb: rdb, prefix: prefix, ttl: ttl}
}

func (c *Redis) Get(ctx context.Context, key string) ([]byte, bool, error) {
	v, err := c.rdb.Get(ctx, c.prefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("redis get %s: %w", key, err)
	}
	return v, true, nil
}

func (c *Redis) Set(ctx context.Context, key string, value []byte) error {
	if err := c.rdb.Set(ctx, c.prefix+key, value, c.ttl).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	return nil
}

// DialRedis connects to cfg.Addr and pings it within 5s.
func DialRedis(ctx context.Context, cfg types.RedisConfig) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		rdb.Close()
		return nil, fmt.Errorf("connecting to redis at %s: %w", cfg.Addr, err)
	}
	return rdb, nil
}

// Open builds the Store selected by cfg. The returned close func releases
// any connection; it is never nil. CacheNone yields a nil Store.
func Open(ctx context.Context, cfg types.CacheConfig) (Store, func() error, error) {
	noop := func() error { return nil }

	ttl := cfg.TTL
	if ttl == 0 {
		ttl = DefaultTTL
	}

	switch cfg.Backend {
	case types.CacheNone:
		return nil, noop, nil
	case "", types.CacheMemory:
		return NewLRU(cfg.Size, ttl), noop, nil
	case types.CacheRedis:
		rdb, err := DialRedis(ctx, cfg.Redis)
		if err != nil {
			return nil, noop, err
		}
		prefix := cfg.Prefix
		if prefix == "" {
			prefix = DefaultPrefix
		}
		return NewRedis(rdb, prefix, ttl), rdb.Close, nil
	default:
		return nil, noop, fmt.Errorf("unknown cache backend %q (want none, memory, or redis)", cfg.Backend)
	}
}
