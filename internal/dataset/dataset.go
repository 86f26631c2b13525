// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package dataset loads the patent export and prepares it for display:
// titles are cleaned and titles and abstracts translated.
package dataset

import (
	"bufio"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/xuri/excelize/v2"
	"golang.org/x/text/unicode/norm"

	"github.com/pdiddy/patent-report/internal/translate"
	"github.com/pdiddy/patent-report/pkg/types"
)

// Column names in the patent export.
const (
	ColTitle             = "Title (Original language)"
	ColAbstract          = "Abstract (Original Language)"
	ColPublicationNumber = "Publication Number"
	ColPublicationDate   = "Publication Date"
	ColInventors         = "Inventor - DWPI"
)

// RequiredColumns lists the columns Load needs, in report order.
var RequiredColumns = []string{
	ColTitle,
	ColAbstract,
	ColPublicationNumber,
	ColPublicationDate,
	ColInventors,
}

// DefaultHeaderRow is the zero-based header row of the export, which
// carries one banner row above the column names.
const DefaultHeaderRow = 1

// ErrUnsupportedFormat is returned for legacy binary and OpenDocument
// spreadsheets. Save them as .xlsx or CSV first.
var ErrUnsupportedFormat = errors.New("unsupported dataset format")

// MissingColumnsError lists required columns absent from the header row.
type MissingColumnsError struct {
	Path    string
	Columns []string
}

func (e *MissingColumnsError) Error() string {
	return fmt.Sprintf("dataset %s is missing columns: %s", e.Path, strings.Join(e.Columns, ", "))
}

// Load reads the export at path. Workbooks (.xlsx, .xlsm) are read from
// cfg.Sheet or their first sheet; anything else is parsed as delimited text.
func Load(path string, cfg types.DatasetConfig) ([]types.Patent, error) {
	var (
		patents []types.Patent
		err     error
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xls", ".ods":
		return nil, fmt.Errorf("%w: %s (save it as .xlsx or CSV)", ErrUnsupportedFormat, path)
	case ".xlsx", ".xlsm":
		patents, err = loadWorkbook(path, cfg)
	default:
		patents, err = loadDelimited(path, cfg)
	}
	if err != nil {
		var mce *MissingColumnsError
		if errors.As(err, &mce) {
			mce.Path = path
			return nil, mce
		}
		return nil, fmt.Errorf("dataset %s: %w", path, err)
	}
	return patents, nil
}

func loadDelimited(path string, cfg types.DatasetConfig) ([]types.Patent, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening dataset: %w", err)
	}
	defer f.Close()
	return Parse(f, cfg)
}

func loadWorkbook(path string, cfg types.DatasetConfig) ([]types.Patent, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("opening dataset: %w", err)
	}
	defer f.Close()
	return parseWorkbook(f, cfg)
}

// ParseWorkbook reads a workbook from r. The sheet named by cfg.Sheet is
// used, or the first sheet when it is empty.
func ParseWorkbook(r io.Reader, cfg types.DatasetConfig) ([]types.Patent, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("opening workbook: %w", err)
	}
	defer f.Close()
	return parseWorkbook(f, cfg)
}

func parseWorkbook(f *excelize.File, cfg types.DatasetConfig) ([]types.Patent, error) {
	sheet := cfg.Sheet
	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, errors.New("workbook has no sheets")
		}
		sheet = sheets[0]
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("reading sheet %q: %w", sheet, err)
	}
	return fromRows(rows, cfg.HeaderRow)
}

// Parse reads a delimited export from r. Blank rows are skipped; short rows
// read as empty cells.
func Parse(r io.Reader, cfg types.DatasetConfig) ([]types.Patent, error) {
	comma := ','
	if cfg.Delimiter != "" {
		d, size := utf8.DecodeRuneInString(cfg.Delimiter)
		if size != len(cfg.Delimiter) {
			return nil, fmt.Errorf("delimiter %q must be a single character", cfg.Delimiter)
		}
		comma = d
	}

	br := bufio.NewReader(r)
	if bom, err := br.Peek(3); err == nil && string(bom) == "\xef\xbb\xbf" {
		br.Discard(3)
	}

	cr := csv.NewReader(br)
	cr.Comma = comma
	cr.LazyQuotes = true
	cr.FieldsPerRecord = -1

	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading rows: %w", err)
	}
	return fromRows(rows, cfg.HeaderRow)
}

// fromRows maps rows to patents using the column names on headerRow.
func fromRows(rows [][]string, headerRow int) ([]types.Patent, error) {
	if headerRow < 0 {
		return nil, fmt.Errorf("header row %d is negative", headerRow)
	}
	if len(rows) <= headerRow {
		return nil, fmt.Errorf("no header on row %d (%d rows read)", headerRow, len(rows))
	}

	cols := make(map[string]int)
	for i, name := range rows[headerRow] {
		name = cell(name)
		if _, dup := cols[name]; !dup {
			cols[name] = i
		}
	}

	var missing []string
	for _, c := range RequiredColumns {
		if _, ok := cols[c]; !ok {
			missing = append(missing, c)
		}
	}
	if len(missing) > 0 {
		return nil, &MissingColumnsError{Columns: missing}
	}

	get := func(row []string, col string) string {
		if i := cols[col]; i < len(row) {
			return cell(row[i])
		}
		return ""
	}

	var patents []types.Patent
	for _, row := range rows[headerRow+1:] {
		if blank(row) {
			continue
		}
		patents = append(patents, types.Patent{
			Index:             len(patents),
			Title:             get(row, ColTitle),
			Abstract:          get(row, ColAbstract),
			PublicationNumber: get(row, ColPublicationNumber),
			PublicationDate:   get(row, ColPublicationDate),
			Inventors:         get(row, ColInventors),
		})
	}
	return patents, nil
}

func cell(s string) string {
	return norm.NFC.String(strings.TrimSpace(s))
}

func blank(row []string) bool {
	for _, v := range row {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}

var parenthesized = regexp.MustCompile(`\s*\([^)]*\)\s*`)

// CleanTitle removes every parenthesized segment from title. Words on
// either side of a removed segment stay separated by one space.
func CleanTitle(title string) string {
	return strings.Join(strings.Fields(parenthesized.ReplaceAllString(title, " ")), " ")
}

// Prepare returns a copy of patents with CleanTitle, TitleES and AbstractES
// filled. With a nil svc the untranslated texts are used.
func Prepare(ctx context.Context, patents []types.Patent, svc *translate.Service) []types.Patent {
	out := make([]types.Patent, len(patents))
	copy(out, patents)

	titles := make([]string, len(out))
	abstracts := make([]string, len(out))
	for i := range out {
		out[i].CleanTitle = CleanTitle(out[i].Title)
		titles[i] = out[i].CleanTitle
		abstracts[i] = out[i].Abstract
	}

	if svc != nil {
		titles = svc.All(ctx, titles)
		abstracts = svc.All(ctx, abstracts)
	}

	for i := range out {
		out[i].TitleES = titles[i]
		out[i].AbstractES = abstracts[i]
	}
	return out
}
