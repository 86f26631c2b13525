// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// HTTPConfig holds shared HTTP settings used by stages that make network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout" mapstructure:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "patent-report/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent" mapstructure:"user_agent"`
}

// ScrapeConfig holds settings for the report listing and image scrapers.
type ScrapeConfig struct {
	HTTPConfig `yaml:",inline" mapstructure:",squash"`

	// ListingURL is the default report listing page.
	ListingURL string `json:"listing_url" yaml:"listing_url" mapstructure:"listing_url"`

	// ImageTimeout bounds the image page fetch. It is shorter than Timeout
	// because image resolution is best-effort enrichment.
	ImageTimeout time.Duration `json:"image_timeout" yaml:"image_timeout" mapstructure:"image_timeout"`

	// RequestDelay is the minimum spacing between consecutive listing
	// requests (default 500ms).
	RequestDelay time.Duration `json:"request_delay" yaml:"request_delay" mapstructure:"request_delay"`

	// ImageDelay is the minimum spacing between consecutive image page
	// requests (default 100ms).
	ImageDelay time.Duration `json:"image_delay" yaml:"image_delay" mapstructure:"image_delay"`

	// Workers bounds concurrent image resolutions (default 4).
	Workers int `json:"workers" yaml:"workers" mapstructure:"workers"`
}

// DatasetConfig describes the patent export, a workbook or a delimited file.
type DatasetConfig struct {
	// Path is the dataset file.
	Path string `json:"path" yaml:"path" mapstructure:"path"`

	// HeaderRow is the zero-based row holding column names (default 1:
	// exports carry a banner row above the header).
	HeaderRow int `json:"header_row" yaml:"header_row" mapstructure:"header_row"`

	// Delimiter is the field separator (default ",").
	Delimiter string `json:"delimiter" yaml:"delimiter" mapstructure:"delimiter"`

	// Sheet names the workbook sheet to read; empty means the first one.
	Sheet string `json:"sheet,omitempty" yaml:"sheet,omitempty" mapstructure:"sheet"`
}

// TranslationConfig holds settings for title and abstract translation.
type TranslationConfig struct {
	HTTPConfig `yaml:",inline" mapstructure:",squash"`

	// Enabled turns translation on. When off, original texts are shown.
	Enabled bool `json:"enabled" yaml:"enabled" mapstructure:"enabled"`

	// Source is the source language code (default "en").
	Source string `json:"source" yaml:"source" mapstructure:"source"`

	// Target is the target language code (default "es").
	Target string `json:"target" yaml:"target" mapstructure:"target"`

	// Workers bounds concurrent translation requests (default 4).
	Workers int `json:"workers" yaml:"workers" mapstructure:"workers"`
}

// CacheBackend selects the memoizing cache implementation.
type CacheBackend string

const (
	CacheNone   CacheBackend = "none"
	CacheMemory CacheBackend = "memory"
	CacheRedis  CacheBackend = "redis"
)

// RedisConfig holds Redis connection settings for the shared cache.
type RedisConfig struct {
	Addr     string `json:"addr" yaml:"addr" mapstructure:"addr"`
	Password string `json:"password,omitempty" yaml:"password,omitempty" mapstructure:"password"`
	DB       int    `json:"db" yaml:"db" mapstructure:"db"`
}

// CacheConfig holds settings for memoizing scrape results by URL.
type CacheConfig struct {
	// Backend selects none, memory, or redis (default memory).
	Backend CacheBackend `json:"backend" yaml:"backend" mapstructure:"backend"`

	// Size caps the number of memory entries (default 256).
	Size int `json:"size" yaml:"size" mapstructure:"size"`

	// TTL is the entry lifetime (default 1h).
	TTL time.Duration `json:"ttl" yaml:"ttl" mapstructure:"ttl"`

	// Prefix namespaces Redis keys (default "patent-report:").
	Prefix string `json:"prefix" yaml:"prefix" mapstructure:"prefix"`

	Redis RedisConfig `json:"redis" yaml:"redis" mapstructure:"redis"`
}

// Log formats.
const (
	LogFormatConsole = "console"
	LogFormatJSON    = "json"
	LogFormatText    = "text"
)

// LogFileConfig enables a rotated log file next to console output.
type LogFileConfig struct {
	Path       string `json:"path" yaml:"path" mapstructure:"path"`
	MaxSizeMB  int    `json:"max_size_mb" yaml:"max_size_mb" mapstructure:"max_size_mb"`
	MaxAgeDays int    `json:"max_age_days" yaml:"max_age_days" mapstructure:"max_age_days"`
	MaxBackups int    `json:"max_backups" yaml:"max_backups" mapstructure:"max_backups"`
	Compress   bool   `json:"compress" yaml:"compress" mapstructure:"compress"`
}

// LogConfig holds logger settings.
type LogConfig struct {
	// Level is debug, info, warn, or error (default warn).
	Level string `json:"level" yaml:"level" mapstructure:"level"`

	// Format is console, json, or text (default console).
	Format string `json:"format" yaml:"format" mapstructure:"format"`

	File LogFileConfig `json:"file" yaml:"file" mapstructure:"file"`
}

// Config groups all stage configurations.
type Config struct {
	Scrape      ScrapeConfig      `json:"scrape" yaml:"scrape" mapstructure:"scrape"`
	Dataset     DatasetConfig     `json:"dataset" yaml:"dataset" mapstructure:"dataset"`
	Translation TranslationConfig `json:"translation" yaml:"translation" mapstructure:"translation"`
	Cache       CacheConfig       `json:"cache" yaml:"cache" mapstructure:"cache"`
	Log         LogConfig         `json:"log" yaml:"log" mapstructure:"log"`
}
