package asset

import (
	"strconv"
	"strings"
)

// CellKind discriminates the storage type of a raw spreadsheet cell.
type CellKind string

const (
	CellEmpty  CellKind = "empty"
	CellText   CellKind = "text"
	CellNumber CellKind = "number"
)

// Cell is one raw cell value with its storage kind made explicit, so
// normalizers switch on the kind instead of guessing from content.
type Cell struct {
	Kind    CellKind `json:"kind"`
	TextVal string   `json:"text_val,omitempty"`
	NumVal  float64  `json:"num_val,omitempty"`
}

// EmptyCell returns the cell for an absent value.
func EmptyCell() Cell {
	return Cell{Kind: CellEmpty}
}

// NewTextCell creates a text cell. An empty string collapses to an empty cell.
func NewTextCell(s string) Cell {
	if s == "" {
		return EmptyCell()
	}
	return Cell{Kind: CellText, TextVal: s}
}

// NewNumberCell creates a numeric cell.
func NewNumberCell(f float64) Cell {
	return Cell{Kind: CellNumber, NumVal: f}
}

// IsEmpty reports whether the cell holds no value at all.
func (c Cell) IsEmpty() bool {
	return c.Kind == CellEmpty
}

// IsBlank reports whether the cell is empty or whitespace-only text.
func (c Cell) IsBlank() bool {
	switch c.Kind {
	case CellEmpty:
		return true
	case CellText:
		return strings.TrimSpace(c.TextVal) == ""
	}
	return false
}

// String renders the cell the way it reads in the sheet: text verbatim,
// numbers without a forced decimal tail, empty as "".
func (c Cell) String() string {
	switch c.Kind {
	case CellText:
		return c.TextVal
	case CellNumber:
		return strconv.FormatFloat(c.NumVal, 'f', -1, 64)
	}
	return ""
}

// Trimmed returns the rendered value with surrounding whitespace removed.
func (c Cell) Trimmed() string {
	return strings.TrimSpace(c.String())
}
