package parse

import (
	"strings"

	"asetfilter/domain/asset"
)

// skipKeywords open subtotal and recap rows. Only the first cell is checked:
// the words also occur legitimately inside descriptive fields mid-row.
var skipKeywords = []string{"JUMLAH", "TOTAL", "SUB TOTAL", "GRAND TOTAL", "REKAPITULASI"}

// acceptSentinel marks a known legitimately short data row that the other
// rules would otherwise reject.
const acceptSentinel = "BEDA"

// minFilledCells is the least non-blank cells a data row can have.
const minFilledCells = 3

// IsDataRow decides whether a row below the header carries data. Summary and
// stray secondary-header rows are indistinguishable from data by cell count
// alone, so the rules lean on keywords anchored to the first cell and the
// joined row text.
func IsDataRow(row []asset.Cell) bool {
	filled := 0
	for _, c := range row {
		if !c.IsBlank() {
			filled++
		}
	}
	if filled < minFilledCells {
		return false
	}

	first := ""
	if len(row) > 0 {
		first = strings.ToUpper(row[0].Trimmed())
	}
	if first == acceptSentinel {
		return true
	}

	text := strings.ToUpper(joinRowText(row))
	if strings.Contains(text, "LETAK") && strings.Contains(text, "ALAMAT") {
		return false
	}
	if strings.Contains(text, "PENGADAAN") && strings.Contains(text, "HAK") {
		return false
	}

	for _, keyword := range skipKeywords {
		if strings.HasPrefix(first, keyword) {
			return false
		}
	}
	return true
}
