// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"regexp"
	"strings"
)

// NotAvailable is shown in place of a missing patent field.
const NotAvailable = "No disponible"

// publicationDateSep splits multi-valued publication date cells
// ("2021-03-04; 2022-01-05" or "2021-03-04 2022-01-05").
var publicationDateSep = regexp.MustCompile(`[; ]+`)

// Patent is one row of the patent dataset together with the fields derived
// from it during preparation.
type Patent struct {
	// Index is the zero-based position of the row among the data rows.
	Index int `json:"index" yaml:"index"`

	// Title is the title in the original language.
	Title string `json:"title" yaml:"title"`

	// CleanTitle is Title with parenthesized segments removed.
	CleanTitle string `json:"clean_title" yaml:"clean_title"`

	// TitleES is the translated title shown on cards and detail views.
	TitleES string `json:"title_es" yaml:"title_es"`

	// Abstract is the abstract in the original language.
	Abstract string `json:"abstract" yaml:"abstract"`

	// AbstractES is the translated abstract.
	AbstractES string `json:"abstract_es" yaml:"abstract_es"`

	// PublicationNumber is the raw publication number (e.g. "US2021123456A1").
	PublicationNumber string `json:"publication_number" yaml:"publication_number"`

	// PublicationDate is the raw date cell, possibly holding several dates.
	PublicationDate string `json:"publication_date" yaml:"publication_date"`

	// Inventors is the raw semicolon-separated inventor cell.
	Inventors string `json:"inventors" yaml:"inventors"`
}

// Country returns the two-letter office prefix of the publication number.
func (p Patent) Country() string {
	r := []rune(strings.TrimSpace(p.PublicationNumber))
	if len(r) < 2 {
		return NotAvailable
	}
	return string(r[:2])
}

// FirstPublicationDate returns the first date listed in the publication
// date cell.
func (p Patent) FirstPublicationDate() string {
	for _, tok := range publicationDateSep.Split(strings.TrimSpace(p.PublicationDate), -1) {
		if tok = strings.TrimSpace(tok); tok != "" {
			return tok
		}
	}
	return NotAvailable
}

// InventorList splits the inventor cell on semicolons. It returns nil when
// no inventor is listed.
func (p Patent) InventorList() []string {
	var out []string
	for _, inv := range strings.Split(p.Inventors, ";") {
		if inv = strings.TrimSpace(inv); inv != "" {
			out = append(out, inv)
		}
	}
	return out
}

// DisplayTitle returns the translated title, falling back to the cleaned
// and then the original title.
func (p Patent) DisplayTitle() string {
	switch {
	case p.TitleES != "":
		return p.TitleES
	case p.CleanTitle != "":
		return p.CleanTitle
	default:
		return p.Title
	}
}
