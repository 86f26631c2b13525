// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines the shared records and configuration structures of
// patent-report: patent rows loaded from the dataset, report records scraped
// from the regulator listing page, and per-stage configuration.
package types

// ReportRecord is one report found on a listing page. Both fields are always
// set: blocks lacking either a title or a PDF link never produce a record.
type ReportRecord struct {
	// Title is the report heading with surrounding whitespace trimmed.
	Title string `json:"title" yaml:"title"`

	// PDFLink is the absolute URL of the report PDF. The case of the
	// original link is preserved.
	PDFLink string `json:"pdf_link" yaml:"pdf_link"`
}
