// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"time"

	"github.com/spf13/viper"

	"github.com/pdiddy/patent-report/internal/cache"
	"github.com/pdiddy/patent-report/internal/dataset"
	"github.com/pdiddy/patent-report/internal/scrape"
	"github.com/pdiddy/patent-report/pkg/types"
)

const defaultUserAgent = "patent-report/0.1"

func setDefaults(v *viper.Viper) {
	v.SetDefault("scrape.timeout", scrape.DefaultListingTimeout)
	v.SetDefault("scrape.user_agent", defaultUserAgent)
	v.SetDefault("scrape.listing_url", "")
	v.SetDefault("scrape.image_timeout", scrape.DefaultImageTimeout)
	v.SetDefault("scrape.request_delay", 500*time.Millisecond)
	v.SetDefault("scrape.image_delay", 100*time.Millisecond)
	v.SetDefault("scrape.workers", 4)

	v.SetDefault("dataset.path", "patents.csv")
	v.SetDefault("dataset.header_row", dataset.DefaultHeaderRow)
	v.SetDefault("dataset.delimiter", ",")
	v.SetDefault("dataset.sheet", "")

	v.SetDefault("translation.enabled", true)
	v.SetDefault("translation.source", "en")
	v.SetDefault("translation.target", "es")
	v.SetDefault("translation.workers", 4)
	v.SetDefault("translation.timeout", 10*time.Second)
	v.SetDefault("translation.user_agent", defaultUserAgent)

	v.SetDefault("cache.backend", string(types.CacheMemory))
	v.SetDefault("cache.size", cache.DefaultSize)
	v.SetDefault("cache.ttl", cache.DefaultTTL)
	v.SetDefault("cache.prefix", cache.DefaultPrefix)
	v.SetDefault("cache.redis.addr", "localhost:6379")
	v.SetDefault("cache.redis.db", 0)

	v.SetDefault("log.level", "warn")
	v.SetDefault("log.format", types.LogFormatConsole)
	v.SetDefault("log.file.max_size_mb", 10)
	v.SetDefault("log.file.max_age_days", 7)
	v.SetDefault("log.file.max_backups", 3)
}

// decodeConfig reads the merged flag, env, file and default values.
func decodeConfig(v *viper.Viper) (types.Config, error) {
	var c types.Config
	if err := v.Unmarshal(&c); err != nil {
		return types.Config{}, fmt.Errorf("decoding config: %w", err)
	}
	if c.Scrape.Workers <= 0 {
		c.Scrape.Workers = 1
	}
	if c.Translation.Workers <= 0 {
		c.Translation.Workers = 1
	}
	return c, nil
}
