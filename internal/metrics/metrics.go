// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package metrics holds the Prometheus counters for scraping and caching.
// A nil *Scrape is valid and records nothing.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "patent_report"

// Operation label values.
const (
	OpReports = "reports"
	OpImage   = "image"
)

// Result label values for Outcome.
const (
	ResultOK         = "ok"
	ResultNoMatch    = "no_match"
	ResultInvalidURL = "invalid_url"
	ResultTimeout    = "timeout"
	ResultNetwork    = "network"
	ResultParse      = "parse"
)

// Cache label values for CacheLookup.
const (
	CacheHit   = "hit"
	CacheMiss  = "miss"
	CacheError = "error"
)

// Scrape counts extractor outcomes.
type Scrape struct {
	outcomes     *prometheus.CounterVec
	records      prometheus.Counter
	dropped      *prometheus.CounterVec
	cacheLookups *prometheus.CounterVec
}

// NewScrape registers the scrape counters on reg.
func NewScrape(reg prometheus.Registerer) *Scrape {
	m := &Scrape{
		outcomes: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "scrape",
				Name:      "outcomes_total",
				Help:      "Scrape calls by operation and result",
			},
			[]string{"op", "result"},
		),
		records: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "scrape",
				Name:      "records_total",
				Help:      "Report records emitted",
			},
		),
		dropped: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "scrape",
				Name:      "blocks_dropped_total",
				Help:      "Report blocks dropped for a missing title or link",
			},
			[]string{"reason"},
		),
		cacheLookups: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "cache",
				Name:      "lookups_total",
				Help:      "Cache lookups by operation and result",
			},
			[]string{"op", "result"},
		),
	}

	reg.MustRegister(m.outcomes, m.records, m.dropped, m.cacheLookups)
	return m
}

func (m *Scrape) Outcome(op, result string) {
	if m == nil {
		return
	}
	m.outcomes.WithLabelValues(op, result).Inc()
}

func (m *Scrape) Records(n int) {
	if m == nil || n <= 0 {
		return
	}
	m.records.Add(float64(n))
}

// Dropped counts a block skipped for reason ("title" or "link").
func (m *Scrape) Dropped(reason string) {
	if m == nil {
		return
	}
	m.dropped.WithLabelValues(reason).Inc()
}

func (m *Scrape) CacheLookup(op, result string) {
	if m == nil {
		return
	}
	m.cacheLookups.WithLabelValues(op, result).Inc()
}
