// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package present

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/patent-report/pkg/types"
)

func samplePatents() []types.Patent {
	return []types.Patent{
		{Index: 0, Title: "Frame (x)", CleanTitle: "Frame", TitleES: "Marco", AbstractES: "Un marco.",
			PublicationNumber: "US2021123456A1", PublicationDate: "2021-03-04; 2022-01-05", Inventors: "SMITH J; DOE A"},
		{Index: 1, Title: "Smoker", TitleES: "Ahumador"},
		{Index: 2, Title: "Lid", TitleES: "Tapa"},
		{Index: 3, Title: "Hive", TitleES: "Colmena"},
	}
}

func TestCards(t *testing.T) {
	var buf bytes.Buffer
	Cards(&buf, samplePatents())
	out := buf.String()

	for _, want := range []string{"Informe de Patentes", "[0]", "Marco", "Ahumador", "Tapa", "[3]", "Colmena"} {
		assert.Contains(t, out, want)
	}

	// Three cards on the first row: their titles share a line.
	for _, line := range strings.Split(out, "\n") {
		if strings.Contains(line, "Marco") {
			assert.Contains(t, line, "Ahumador")
			assert.Contains(t, line, "Tapa")
			assert.NotContains(t, line, "Colmena")
		}
	}
}

func TestCards_Empty(t *testing.T) {
	var buf bytes.Buffer
	Cards(&buf, nil)
	assert.Equal(t, "No patents loaded.\n", buf.String())
}

func TestSelectPatent(t *testing.T) {
	patents := samplePatents()

	p, err := SelectPatent(patents, " 2 ")
	require.NoError(t, err)
	assert.Equal(t, "Tapa", p.TitleES)

	_, err = SelectPatent(patents, "4")
	assert.ErrorIs(t, err, ErrIndexInvalid)
	_, err = SelectPatent(patents, "-1")
	assert.ErrorIs(t, err, ErrIndexInvalid)
	_, err = SelectPatent(patents, "two")
	assert.ErrorIs(t, err, ErrIndexNotNumber)
}

func TestIndexMessage(t *testing.T) {
	_, err := SelectPatent(samplePatents(), "two")
	assert.Equal(t, MsgIndexNotNumber, IndexMessage(err))

	_, err = SelectPatent(samplePatents(), "99")
	assert.Equal(t, MsgIndexInvalid, IndexMessage(err))

	assert.Equal(t, "boom", IndexMessage(errors.New("boom")))

	for _, e := range []error{ErrIndexNotNumber, ErrIndexInvalid} {
		msg := e.Error()
		assert.Equal(t, strings.ToLower(msg[:1]), msg[:1], "error strings start lowercase")
		assert.False(t, strings.HasSuffix(msg, "."), "error strings have no trailing period")
	}
}

func TestDetail(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Detail(&buf, samplePatents()[0]))
	out := buf.String()

	for _, want := range []string{
		"# Marco",
		"## Información Clave",
		"**Número de Publicación:** US2021123456A1",
		"**País de Origen:** US",
		"**Fecha de Publicación:** 2021-03-04",
		"**Inventores:**",
		"- SMITH J",
		"- DOE A",
		"**Resumen:** Un marco.",
	} {
		assert.Contains(t, out, want)
	}
}

func TestDetail_MissingFields(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Detail(&buf, types.Patent{Title: "Smoker"}))
	out := buf.String()

	assert.Contains(t, out, "# Smoker")
	assert.Contains(t, out, "**Número de Publicación:** No disponible")
	assert.Contains(t, out, "**País de Origen:** No disponible")
	assert.Contains(t, out, "**Fecha de Publicación:** No disponible")
	assert.Contains(t, out, "- No disponible")
	assert.Contains(t, out, "**Resumen:** Resumen no disponible.")
}

func sampleReports() []types.ReportRecord {
	return []types.ReportRecord{
		{Title: "Informe Anual 2023", PDFLink: "https://example.org/files/anual-2023.pdf"},
		{Title: "Boletín trimestral", PDFLink: "https://example.org/files/q1.PDF"},
		{Title: "Memoria ANUAL", PDFLink: "https://example.org/files/memoria.pdf"},
	}
}

func TestFilterReports(t *testing.T) {
	recs := sampleReports()

	got := FilterReports(recs, "anual")
	require.Len(t, got, 2)
	assert.Equal(t, "Informe Anual 2023", got[0].Title)
	assert.Equal(t, "Memoria ANUAL", got[1].Title)

	assert.Equal(t, recs, FilterReports(recs, "  "))
	assert.Empty(t, FilterReports(recs, "patentes"))
}

func TestReports_Table(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Reports(&buf, sampleReports(), FormatTable))
	out := buf.String()
	assert.Contains(t, out, "TITLE")
	assert.Contains(t, out, "Boletín trimestral")
	assert.Contains(t, out, "https://example.org/files/q1.PDF")
}

func TestReports_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Reports(&buf, nil, FormatTable))
	assert.Equal(t, NoReports+"\n", buf.String())

	buf.Reset()
	require.NoError(t, Reports(&buf, nil, FormatJSON))
	assert.JSONEq(t, "[]", buf.String())
}

func TestReports_Machine(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Reports(&buf, sampleReports()[:1], FormatJSON))
	var fromJSON []map[string]string
	require.NoError(t, json.Unmarshal(buf.Bytes(), &fromJSON))
	assert.Equal(t, "https://example.org/files/anual-2023.pdf", fromJSON[0]["pdf_link"])

	buf.Reset()
	require.NoError(t, Reports(&buf, sampleReports()[:1], FormatYAML))
	var fromYAML []types.ReportRecord
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &fromYAML))
	assert.Equal(t, sampleReports()[:1], fromYAML)
}

func TestParseFormat(t *testing.T) {
	for in, want := range map[string]Format{"": FormatTable, "JSON": FormatJSON, " yaml": FormatYAML, "table": FormatTable} {
		got, err := ParseFormat(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := ParseFormat("csv")
	assert.Error(t, err)
}

func TestImages(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Images(&buf, []string{"https://a", "https://b"}, []string{"https://a/og.png", ""}))
	assert.Equal(t, "https://a\thttps://a/og.png\nhttps://b\t\n", buf.String())
}
