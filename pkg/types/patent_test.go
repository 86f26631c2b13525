// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPatentCountry(t *testing.T) {
	tests := []struct {
		number string
		want   string
	}{
		{"US2021123456A1", "US"},
		{"  EP1234567 ", "EP"},
		{"W", NotAvailable},
		{"", NotAvailable},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Patent{PublicationNumber: tt.number}.Country(), tt.number)
	}
}

func TestPatentFirstPublicationDate(t *testing.T) {
	tests := []struct {
		date string
		want string
	}{
		{"2021-03-04; 2022-01-05", "2021-03-04"},
		{"2021-03-04 2022-01-05", "2021-03-04"},
		{"; 2022-01-05", "2022-01-05"},
		{"2020-12-31", "2020-12-31"},
		{"", NotAvailable},
		{" ; ", NotAvailable},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Patent{PublicationDate: tt.date}.FirstPublicationDate(), tt.date)
	}
}

func TestPatentInventorList(t *testing.T) {
	assert.Equal(t, []string{"SMITH J", "DOE A"}, Patent{Inventors: "SMITH J; DOE A ;"}.InventorList())
	assert.Nil(t, Patent{Inventors: " ; "}.InventorList())
	assert.Nil(t, Patent{}.InventorList())
}

func TestPatentDisplayTitle(t *testing.T) {
	assert.Equal(t, "Marco", Patent{Title: "Frame (x)", CleanTitle: "Frame", TitleES: "Marco"}.DisplayTitle())
	assert.Equal(t, "Frame", Patent{Title: "Frame (x)", CleanTitle: "Frame"}.DisplayTitle())
	assert.Equal(t, "Frame (x)", Patent{Title: "Frame (x)"}.DisplayTitle())
}
