package excel

import (
	"bytes"
	"strings"
	"testing"

	"asetfilter/domain/asset"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func buildFixture(t *testing.T) *bytes.Buffer {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	require.NoError(t, f.SetCellValue("Sheet1", "A1", "No."))
	require.NoError(t, f.SetCellValue("Sheet1", "B1", "Luas (m2)"))
	require.NoError(t, f.SetCellValue("Sheet1", "C1", "Tahun"))

	require.NoError(t, f.SetCellValue("Sheet1", "A2", 1))
	require.NoError(t, f.SetCellValue("Sheet1", "B2", 1500.5))
	require.NoError(t, f.SetCellValue("Sheet1", "C2", "3099"))

	// B3 left unset: the row comes back with a hole in the middle.
	require.NoError(t, f.SetCellValue("Sheet1", "A3", 2))
	require.NoError(t, f.SetCellValue("Sheet1", "C3", 1999))

	_, err := f.NewSheet("Rekap")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))
	return &buf
}

func TestWorkbookSheetNames(t *testing.T) {
	wb, err := OpenWorkbookReader(buildFixture(t))
	require.NoError(t, err)
	defer wb.Close()

	assert.Equal(t, []string{"Sheet1", "Rekap"}, wb.SheetNames())
}

func TestWorkbookSheetRowsTypesCells(t *testing.T) {
	wb, err := OpenWorkbookReader(buildFixture(t))
	require.NoError(t, err)
	defer wb.Close()

	rows, err := wb.SheetRows("Sheet1")
	require.NoError(t, err)
	require.Len(t, rows, 3)

	// Header row: strings stay text.
	assert.Equal(t, asset.NewTextCell("No."), rows[0][0])
	assert.Equal(t, asset.NewTextCell("Luas (m2)"), rows[0][1])

	// Stored numbers come back as number cells.
	assert.Equal(t, asset.NewNumberCell(1), rows[1][0])
	assert.Equal(t, asset.NewNumberCell(1500.5), rows[1][1])

	// Digits typed as text stay text. "3099" as a string is not a year.
	assert.Equal(t, asset.NewTextCell("3099"), rows[1][2])

	// The unset cell reads back empty.
	require.Len(t, rows[2], 3)
	assert.Equal(t, asset.NewNumberCell(2), rows[2][0])
	assert.True(t, rows[2][1].IsEmpty())
	assert.Equal(t, asset.NewNumberCell(1999), rows[2][2])
}

func TestWorkbookSheetRowsUnknownSheet(t *testing.T) {
	wb, err := OpenWorkbookReader(buildFixture(t))
	require.NoError(t, err)
	defer wb.Close()

	_, err = wb.SheetRows("Nope")
	assert.Error(t, err)
}

func TestOpenWorkbookReaderRejectsGarbage(t *testing.T) {
	_, err := OpenWorkbookReader(strings.NewReader("not a workbook"))
	assert.Error(t, err)
}
