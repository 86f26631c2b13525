// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package present renders patents and scraped reports for the terminal:
// card grids and report tables with go-pretty, patent detail views as
// Markdown, and JSON or YAML for machine consumers.
package present

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/nao1215/markdown"

	"github.com/pdiddy/patent-report/pkg/types"
)

// CardsPerRow matches the three-column landing grid.
const CardsPerRow = 3

const cardWidth = 32

// Errors returned by SelectPatent.
var (
	ErrIndexNotNumber = errors.New("patent index is not a number")
	ErrIndexInvalid   = errors.New("patent index out of range")
)

// Messages shown to the user for a bad patent index.
const (
	MsgIndexNotNumber = "El índice proporcionado no es un número válido."
	MsgIndexInvalid   = "Índice de patente no válido."
)

// IndexMessage returns the user-facing message for an error from
// SelectPatent, or err's own text for anything else.
func IndexMessage(err error) string {
	switch {
	case errors.Is(err, ErrIndexNotNumber):
		return MsgIndexNotNumber
	case errors.Is(err, ErrIndexInvalid):
		return MsgIndexInvalid
	}
	return err.Error()
}

// Cards writes one card per patent, CardsPerRow to a row. Each card shows
// the index to pass to the detail view and the display title.
func Cards(w io.Writer, patents []types.Patent) {
	if len(patents) == 0 {
		fmt.Fprintln(w, "No patents loaded.")
		return
	}

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetTitle("Informe de Patentes")

	configs := make([]table.ColumnConfig, CardsPerRow)
	for i := range configs {
		configs[i] = table.ColumnConfig{Number: i + 1, WidthMax: cardWidth}
	}
	t.SetColumnConfigs(configs)

	for start := 0; start < len(patents); start += CardsPerRow {
		if start > 0 {
			t.AppendSeparator()
		}
		row := make(table.Row, 0, CardsPerRow)
		for _, p := range patents[start:min(start+CardsPerRow, len(patents))] {
			row = append(row, fmt.Sprintf("[%d]\n%s", p.Index, p.DisplayTitle()))
		}
		t.AppendRow(row)
	}

	t.SetStyle(table.StyleRounded)
	t.Render()
}

// SelectPatent parses a detail-view index argument.
func SelectPatent(patents []types.Patent, arg string) (types.Patent, error) {
	idx, err := strconv.Atoi(strings.TrimSpace(arg))
	if err != nil {
		return types.Patent{}, ErrIndexNotNumber
	}
	if idx < 0 || idx >= len(patents) {
		return types.Patent{}, ErrIndexInvalid
	}
	return patents[idx], nil
}

// Detail writes the Markdown detail view of p.
func Detail(w io.Writer, p types.Patent) error {
	md := markdown.NewMarkdown(w)

	md.H1(p.DisplayTitle())
	md.PlainText("")

	md.H2("Información Clave")
	md.PlainText("")
	md.BulletList(
		"**Número de Publicación:** "+orNotAvailable(p.PublicationNumber),
		"**País de Origen:** "+p.Country(),
		"**Fecha de Publicación:** "+p.FirstPublicationDate(),
	)
	md.PlainText("")

	md.PlainText("**Inventores:**")
	md.PlainText("")
	if inventors := p.InventorList(); len(inventors) > 0 {
		md.BulletList(inventors...)
	} else {
		md.BulletList(types.NotAvailable)
	}
	md.PlainText("")
	md.HorizontalRule()
	md.PlainText("")

	abstract := p.AbstractES
	if abstract == "" {
		abstract = "Resumen no disponible."
	}
	md.PlainTextf("**Resumen:** %s", abstract)
	md.PlainText("")
	md.HorizontalRule()

	return md.Build()
}

func orNotAvailable(s string) string {
	if strings.TrimSpace(s) == "" {
		return types.NotAvailable
	}
	return s
}
