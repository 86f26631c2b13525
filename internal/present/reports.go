// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package present

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/patent-report/pkg/types"
)

// Format selects how reports are written.
type Format string

const (
	FormatTable Format = "table"
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
)

// NoReports is printed when a listing yields nothing.
const NoReports = "No reports found."

// ParseFormat validates a --format value.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatTable, FormatJSON, FormatYAML:
		return f, nil
	case "":
		return FormatTable, nil
	default:
		return "", fmt.Errorf("unknown format %q (want table, json, or yaml)", s)
	}
}

// FilterReports keeps records whose title contains q, ignoring case. An
// empty q keeps everything. Order is preserved.
func FilterReports(records []types.ReportRecord, q string) []types.ReportRecord {
	q = strings.ToLower(strings.TrimSpace(q))
	if q == "" {
		return records
	}
	var out []types.ReportRecord
	for _, r := range records {
		if strings.Contains(strings.ToLower(r.Title), q) {
			out = append(out, r)
		}
	}
	return out
}

// Reports writes records in format. Empty results print NoReports for
// tables and an empty list for JSON and YAML.
func Reports(w io.Writer, records []types.ReportRecord, format Format) error {
	if records == nil {
		records = []types.ReportRecord{}
	}

	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		return enc.Encode(records)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(records); err != nil {
			return fmt.Errorf("encoding yaml: %w", err)
		}
		return enc.Close()
	}

	if len(records) == 0 {
		_, err := fmt.Fprintln(w, NoReports)
		return err
	}

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row{"#", "Title", "PDF"})
	for i, r := range records {
		t.AppendRow(table.Row{i + 1, r.Title, r.PDFLink})
	}
	t.SetStyle(table.StyleRounded)
	t.Render()
	return nil
}

// Images writes one "page<TAB>image" line per page. Pages without an image
// get an empty second column.
func Images(w io.Writer, pages, images []string) error {
	for i, p := range pages {
		img := ""
		if i < len(images) {
			img = images[i]
		}
		if _, err := fmt.Fprintf(w, "%s\t%s\n", p, img); err != nil {
			return err
		}
	}
	return nil
}
