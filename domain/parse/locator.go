package parse

import (
	"strings"

	"asetfilter/domain/asset"
)

// headerMarkers are phrases that occur in real header rows and nowhere above
// them. Matching is case-sensitive on purpose: KECAMATAN appears uppercased
// in headers but mixed-case inside data cells.
var headerMarkers = []string{"Jenis Barang", "Nama Barang", "Satuan Kerja", "KECAMATAN"}

// headerMarkerMin is how many markers a row needs to qualify as the header.
const headerMarkerMin = 2

// FallbackHeaderIndex is used when no row qualifies. Source workbooks have
// historically carried their header at this offset.
const FallbackHeaderIndex = 6

// FindHeaderRow returns the index of the first row whose joined non-blank
// text contains at least headerMarkerMin marker phrases, or -1 when no row
// qualifies. The first hit wins: the header sits near the top, and a later
// keyword-rich data row must not be picked over it.
func FindHeaderRow(rows [][]asset.Cell) int {
	for idx, row := range rows {
		text := joinRowText(row)
		matches := 0
		for _, marker := range headerMarkers {
			if strings.Contains(text, marker) {
				matches++
			}
		}
		if matches >= headerMarkerMin {
			return idx
		}
	}
	return -1
}

// joinRowText concatenates the trimmed non-blank cells of a row with single
// spaces, the shape both the locator and the classifier match against.
func joinRowText(row []asset.Cell) string {
	parts := make([]string, 0, len(row))
	for _, c := range row {
		if c.IsBlank() {
			continue
		}
		parts = append(parts, c.Trimmed())
	}
	return strings.Join(parts, " ")
}
