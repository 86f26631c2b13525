// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package dataset

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/pdiddy/patent-report/internal/translate"
	"github.com/pdiddy/patent-report/pkg/types"
)

const export = "\xef\xbb\xbfPatent export generated 2024-05-01\n" +
	`Title (Original language),Abstract (Original Language),Publication Number,Publication Date,Inventor - DWPI,Assignee` + "\n" +
	`"Beehive frame (improved) with lid","A frame for hives, with a removable lid.",US2021123456A1,2021-03-04; 2022-01-05,"SMITH J; DOE A ;",Acme` + "\n" +
	",,,,,\n" +
	`Smoker,Short,EP1,,` + "\n"

func writeExport(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeExport(t, "patents.csv", export)

	got, err := Load(path, types.DatasetConfig{HeaderRow: DefaultHeaderRow})
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, types.Patent{
		Index:             0,
		Title:             "Beehive frame (improved) with lid",
		Abstract:          "A frame for hives, with a removable lid.",
		PublicationNumber: "US2021123456A1",
		PublicationDate:   "2021-03-04; 2022-01-05",
		Inventors:         "SMITH J; DOE A ;",
	}, got[0])

	assert.Equal(t, 1, got[1].Index, "blank rows do not consume an index")
	assert.Equal(t, "EP1", got[1].PublicationNumber)
	assert.Equal(t, "", got[1].Inventors, "short row reads as empty cells")
}

func TestLoad_MissingColumns(t *testing.T) {
	path := writeExport(t, "patents.csv", "banner\nTitle (Original language),Publication Date\nx,y\n")

	_, err := Load(path, types.DatasetConfig{HeaderRow: 1})
	var mce *MissingColumnsError
	require.True(t, errors.As(err, &mce))
	assert.Equal(t, path, mce.Path)
	assert.Equal(t, []string{ColAbstract, ColPublicationNumber, ColInventors}, mce.Columns)
	assert.Contains(t, err.Error(), "Abstract (Original Language)")
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.csv"), types.DatasetConfig{})
	assert.ErrorContains(t, err, "opening dataset")

	_, err = Load("prueba5docu.xls", types.DatasetConfig{})
	assert.ErrorIs(t, err, ErrUnsupportedFormat)

	_, err = Load(filepath.Join(t.TempDir(), "missing.xlsx"), types.DatasetConfig{})
	assert.ErrorContains(t, err, "opening dataset")

	path := writeExport(t, "one-row.csv", "only a banner\n")
	_, err = Load(path, types.DatasetConfig{HeaderRow: 1})
	assert.ErrorContains(t, err, "no header on row 1")
}

// writeWorkbook saves rows to the first sheet of a new workbook.
func writeWorkbook(t *testing.T, name string, rows [][]any) string {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	for i, row := range rows {
		cellRef, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cellRef, &row))
	}

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, f.SaveAs(path))
	return path
}

func TestLoad_Workbook(t *testing.T) {
	path := writeWorkbook(t, "prueba5docu.xlsx", [][]any{
		{"Patent export generated 2024-05-01"},
		{"Publication Number", ColTitle, ColAbstract, ColPublicationDate, ColInventors, "Assignee"},
		{"US2021123456A1", "Beehive frame (improved) with lid", "A frame for hives.", "2021-03-04", "SMITH J; DOE A", "Acme"},
		{},
		{"EP1", "Smoker"},
	})

	got, err := Load(path, types.DatasetConfig{HeaderRow: DefaultHeaderRow})
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, types.Patent{
		Index:             0,
		Title:             "Beehive frame (improved) with lid",
		Abstract:          "A frame for hives.",
		PublicationNumber: "US2021123456A1",
		PublicationDate:   "2021-03-04",
		Inventors:         "SMITH J; DOE A",
	}, got[0])
	assert.Equal(t, 1, got[1].Index)
	assert.Equal(t, "Smoker", got[1].Title)
	assert.Equal(t, "", got[1].Abstract, "short row reads as empty cells")
}

func TestLoad_WorkbookMissingColumns(t *testing.T) {
	path := writeWorkbook(t, "patents.xlsx", [][]any{
		{"banner"},
		{ColTitle, ColPublicationDate},
		{"x", "y"},
	})

	_, err := Load(path, types.DatasetConfig{HeaderRow: 1})
	var mce *MissingColumnsError
	require.True(t, errors.As(err, &mce))
	assert.Equal(t, path, mce.Path)
	assert.Equal(t, []string{ColAbstract, ColPublicationNumber, ColInventors}, mce.Columns)
}

func TestParseWorkbook_NamedSheet(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()
	_, err := f.NewSheet("Patentes")
	require.NoError(t, err)
	require.NoError(t, f.SetSheetRow("Patentes", "A1", &[]any{ColTitle, ColAbstract, ColPublicationNumber, ColPublicationDate, ColInventors}))
	require.NoError(t, f.SetSheetRow("Patentes", "A2", &[]any{"Colmena", "Resumen largo", "ES2999999T3", "2020-01-01", "GARCIA M"}))

	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	data := buf.Bytes()

	got, err := ParseWorkbook(bytes.NewReader(data), types.DatasetConfig{Sheet: "Patentes"})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "ES2999999T3", got[0].PublicationNumber)

	_, err = ParseWorkbook(bytes.NewReader(data), types.DatasetConfig{Sheet: "Missing"})
	assert.ErrorContains(t, err, `reading sheet "Missing"`)
}

func TestParse_DelimiterAndHeaderRow(t *testing.T) {
	in := strings.Join([]string{
		"Title (Original language);Abstract (Original Language);Publication Number;Publication Date;Inventor - DWPI",
		"Colmena;Resumen largo;ES2999999T3;2020-01-01;GARCIA M",
	}, "\n")

	got, err := Parse(strings.NewReader(in), types.DatasetConfig{HeaderRow: 0, Delimiter: ";"})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Colmena", got[0].Title)
	assert.Equal(t, "GARCIA M", got[0].Inventors)

	_, err = Parse(strings.NewReader(in), types.DatasetConfig{Delimiter: ";;"})
	assert.ErrorContains(t, err, "single character")
}

func TestParse_NormalizesNFC(t *testing.T) {
	decomposed := "Abej" + "a\u0301" // a + combining acute
	in := "Title (Original language),Abstract (Original Language),Publication Number,Publication Date,Inventor - DWPI\n" +
		decomposed + ",x,y,z,w\n"

	got, err := Parse(strings.NewReader(in), types.DatasetConfig{})
	require.NoError(t, err)
	assert.Equal(t, "Abejá", got[0].Title)
}

func TestCleanTitle(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Beehive frame (improved) with lid", "Beehive frame with lid"},
		{"Hive (A)(B) tool", "Hive tool"},
		{"(Prefix) Smoker", "Smoker"},
		{"Smoker (EN)", "Smoker"},
		{"No parens", "No parens"},
		{"Unbalanced (paren", "Unbalanced (paren"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, CleanTitle(tt.in), tt.in)
	}
}

type echoTranslator struct{}

func (echoTranslator) Translate(_ context.Context, text string) (string, error) {
	return "es:" + text, nil
}

func TestPrepare(t *testing.T) {
	in := []types.Patent{
		{Index: 0, Title: "Beehive frame (improved)", Abstract: "A frame for hives."},
		{Index: 1, Title: "Tool", Abstract: ""},
	}

	got := Prepare(context.Background(), in, translate.NewService(echoTranslator{}, nil, 2))
	require.Len(t, got, 2)

	assert.Equal(t, "Beehive frame", got[0].CleanTitle)
	assert.Equal(t, "es:Beehive frame", got[0].TitleES)
	assert.Equal(t, "es:A frame for hives.", got[0].AbstractES)
	assert.Equal(t, translate.PlaceholderTooShort, got[1].TitleES)
	assert.Equal(t, translate.PlaceholderTooShort, got[1].AbstractES)

	assert.Empty(t, in[0].TitleES, "input is not modified")
}

func TestPrepare_NoTranslation(t *testing.T) {
	got := Prepare(context.Background(), []types.Patent{{Title: "Smoker (EN)", Abstract: "abs"}}, nil)
	assert.Equal(t, "Smoker", got[0].TitleES)
	assert.Equal(t, "abs", got[0].AbstractES)
}
