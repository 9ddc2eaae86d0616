package excel

import (
	"fmt"
	"io"
	"log"
	"path/filepath"
	"strconv"
	"time"

	"asetfilter/domain/asset"

	"github.com/xuri/excelize/v2"
)

// Workbook adapts an .xlsx file to the parse pipeline's sheet source. Cells
// keep their stored type: numeric cells whose formatted text reads back as a
// number become number cells, everything else stays text exactly as Excel
// renders it.
type Workbook struct {
	file *excelize.File
	name string
}

// OpenWorkbook opens a workbook from disk.
func OpenWorkbook(path string) (*Workbook, error) {
	start := time.Now()
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	log.Printf("[Workbook] %s opened in %.2fms", filepath.Base(path),
		float64(time.Since(start).Nanoseconds())/1e6)

	return &Workbook{file: f, name: filepath.Base(path)}, nil
}

// OpenWorkbookReader opens a workbook from a stream, as uploads arrive.
func OpenWorkbookReader(r io.Reader) (*Workbook, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	return &Workbook{file: f, name: "upload"}, nil
}

// Close releases the underlying file.
func (w *Workbook) Close() error {
	return w.file.Close()
}

// SheetNames lists the workbook's sheets in order.
func (w *Workbook) SheetNames() []string {
	return w.file.GetSheetList()
}

// SheetRows reads one sheet into typed cells.
func (w *Workbook) SheetRows(name string) ([][]asset.Cell, error) {
	start := time.Now()
	rows, err := w.file.GetRows(name)
	if err != nil {
		return nil, fmt.Errorf("failed to read rows: %w", err)
	}

	out := make([][]asset.Cell, len(rows))
	for i, row := range rows {
		cells := make([]asset.Cell, len(row))
		for j, text := range row {
			cells[j] = w.typedCell(name, i, j, text)
		}
		out[i] = cells
	}

	log.Printf("[Workbook] %s sheet %q read in %.2fms (%d rows)",
		w.name, name, float64(time.Since(start).Nanoseconds())/1e6, len(rows))

	return out, nil
}

// typedCell classifies one formatted cell value. String-typed cells stay text
// even when their content looks numeric; that distinction matters downstream,
// where "2005" stored as a number is a year but "3099" typed as text is not
// trusted. Number cells with opaque formats (durations, currency renderings)
// fall back to text, which the normalizers know how to strip.
func (w *Workbook) typedCell(sheet string, rowIdx, colIdx int, text string) asset.Cell {
	if text == "" {
		return asset.EmptyCell()
	}

	axis, err := excelize.CoordinatesToCellName(colIdx+1, rowIdx+1)
	if err != nil {
		return asset.NewTextCell(text)
	}

	cellType, err := w.file.GetCellType(sheet, axis)
	if err != nil {
		return asset.NewTextCell(text)
	}

	switch cellType {
	case excelize.CellTypeSharedString, excelize.CellTypeInlineString:
		return asset.NewTextCell(text)
	default:
		if f, err := strconv.ParseFloat(text, 64); err == nil {
			return asset.NewNumberCell(f)
		}
		return asset.NewTextCell(text)
	}
}
