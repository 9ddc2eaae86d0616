package excel

import (
	"fmt"
	"io"
	"log"
	"time"

	"asetfilter/models"

	"github.com/xuri/excelize/v2"
)

// Export layout constants. The sheet reproduces the two-row header of the
// source presentation workbook: main headers in row 3, sub-headers in row 4,
// data from row 5. Rows 1 and 2 stay empty.
const (
	ExportSheet = "Data Aset"

	headerRow1   = 3
	headerRow2   = 4
	dataStartRow = 5
)

type exportColumn struct {
	col     int
	header1 string
	header2 string
	red     bool
	value   func(a *models.Asset) interface{}
}

// exportColumns is the workbook layout. Columns 6, 12 and 13 carry header
// structure only. Column 14 repeats the asset name: the ingest mapper feeds
// nama_asset from the source usage column, and the layout shows it in both
// places.
var exportColumns = []exportColumn{
	{1, "NO. KIB 2023", "", false, func(a *models.Asset) interface{} { return strVal(a.NoKib) }},
	{2, "No.", "", false, func(a *models.Asset) interface{} { return intVal(a.NoUrut) }},
	{3, "Kode Lokasi", "", false, func(a *models.Asset) interface{} { return strVal(a.KodeLokasi) }},
	{4, "Satuan Kerja", "", false, func(a *models.Asset) interface{} { return strVal(a.SatuanKerja) }},
	{5, "Jenis Barang / Nama Barang", "", false, func(a *models.Asset) interface{} { return a.NamaAsset }},
	{6, "Nomor", "Kd Barang", false, nil},
	{7, "", "Reg", false, func(a *models.Asset) interface{} { return strVal(a.Nomor) }},
	{8, "Luas (m2)", "", false, func(a *models.Asset) interface{} { return floatVal(a.Luas) }},
	{9, "Tahun", "Pengadaan", false, func(a *models.Asset) interface{} { return intVal(a.Tahun) }},
	{10, "", "Letak / Alamat", false, func(a *models.Asset) interface{} { return strVal(a.Alamat) }},
	{11, "Status Tanah", "Hak", false, func(a *models.Asset) interface{} { return strVal(a.StatusTanah) }},
	{12, "Sertifikat", "Tanggal", false, nil},
	{13, "", "No.", false, nil},
	{14, "Penggunaan", "", false, func(a *models.Asset) interface{} { return a.NamaAsset }},
	{15, "Asal Usul", "", false, func(a *models.Asset) interface{} { return strVal(a.AsalUsul) }},
	{16, "Nilai / Harga", "", false, func(a *models.Asset) interface{} { return floatVal(a.NilaiHarga) }},
	{17, "Keterangan", "", false, func(a *models.Asset) interface{} { return strVal(a.Keterangan) }},
	{18, "Kode Aset", "", false, func(a *models.Asset) interface{} { return strVal(a.KodeAset) }},
	{19, "JUMLAH BIDANG", "", true, func(a *models.Asset) interface{} { return intVal(a.JumlahBidang) }},
	{20, "KECAMATAN", "", true, func(a *models.Asset) interface{} { return strVal(a.Kecamatan) }},
	{21, "PEMETAAN ASET TANAH", "", true, func(a *models.Asset) interface{} { return strVal(a.Pemetaan) }},
	{22, "CATATAN (TERMANFAATKAN/TERLANTAR)", "", true, func(a *models.Asset) interface{} { return strVal(a.Catatan) }},
	{23, "K3 (MILIK WARGA/ADA KLAIM, TKD, DLL)", "", true, func(a *models.Asset) interface{} { return strVal(a.K3) }},
	{24, "TANAH (BANGUNAN/TANAH KOSONG)", "", true, func(a *models.Asset) interface{} { return strVal(a.TanahBangunan) }},
	{25, "LAIN-LAIN", "", false, func(a *models.Asset) interface{} { return strVal(a.LainLain) }},
}

var columnWidths = map[int]float64{
	1: 12, 2: 5, 3: 12, 4: 25, 5: 30, 6: 10, 7: 8, 8: 10,
	9: 10, 10: 25, 11: 12, 12: 10, 13: 8, 14: 20, 15: 12,
	16: 15, 17: 20, 18: 15, 19: 12, 20: 15, 21: 18, 22: 30,
	23: 30, 24: 25, 25: 15,
}

// Exporter writes assets as a formatted workbook.
type Exporter struct{}

// NewExporter creates a new workbook exporter
func NewExporter() *Exporter {
	return &Exporter{}
}

// ExportFilename names a download with a sortable timestamp.
func ExportFilename(t time.Time) string {
	return fmt.Sprintf("aset_filter_export_%s.xlsx", t.Format("20060102_150405"))
}

// Write renders the assets into w as an .xlsx workbook.
func (e *Exporter) Write(w io.Writer, assets []models.Asset) error {
	start := time.Now()

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", ExportSheet); err != nil {
		return fmt.Errorf("failed to name sheet: %w", err)
	}

	headerStyle, redStyle, dataStyle, err := newStyles(f)
	if err != nil {
		return fmt.Errorf("failed to build styles: %w", err)
	}

	if err := writeHeaders(f); err != nil {
		return err
	}

	// Borders, bold and centering over both header rows; the flagged survey
	// columns get the red variant.
	if err := f.SetCellStyle(ExportSheet, "A3", "Y4", headerStyle); err != nil {
		return fmt.Errorf("failed to style headers: %w", err)
	}
	if err := f.SetCellStyle(ExportSheet, "S3", "X4", redStyle); err != nil {
		return fmt.Errorf("failed to style flagged headers: %w", err)
	}

	for i := range assets {
		if err := writeAssetRow(f, dataStartRow+i, &assets[i]); err != nil {
			return err
		}
	}

	if len(assets) > 0 {
		lastRow := dataStartRow + len(assets) - 1
		if err := f.SetCellStyle(ExportSheet, "A5", fmt.Sprintf("Y%d", lastRow), dataStyle); err != nil {
			return fmt.Errorf("failed to style data rows: %w", err)
		}
	}

	for col, width := range columnWidths {
		name, err := excelize.ColumnNumberToName(col)
		if err != nil {
			return fmt.Errorf("failed to resolve column %d: %w", col, err)
		}
		if err := f.SetColWidth(ExportSheet, name, name, width); err != nil {
			return fmt.Errorf("failed to size column %s: %w", name, err)
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}

	log.Printf("[Export] %d assets written in %.2fms",
		len(assets), float64(time.Since(start).Nanoseconds())/1e6)

	return nil
}

func writeHeaders(f *excelize.File) error {
	for _, col := range exportColumns {
		top, err := excelize.CoordinatesToCellName(col.col, headerRow1)
		if err != nil {
			return fmt.Errorf("failed to resolve header cell: %w", err)
		}
		bottom, err := excelize.CoordinatesToCellName(col.col, headerRow2)
		if err != nil {
			return fmt.Errorf("failed to resolve header cell: %w", err)
		}

		if col.header1 != "" {
			if err := f.SetCellValue(ExportSheet, top, col.header1); err != nil {
				return fmt.Errorf("failed to write header %q: %w", col.header1, err)
			}
			// Single headers span both rows.
			if col.header2 == "" {
				if err := f.MergeCell(ExportSheet, top, bottom); err != nil {
					return fmt.Errorf("failed to merge header %q: %w", col.header1, err)
				}
			}
		}
		if col.header2 != "" {
			if err := f.SetCellValue(ExportSheet, bottom, col.header2); err != nil {
				return fmt.Errorf("failed to write sub-header %q: %w", col.header2, err)
			}
		}
	}

	// Grouped headers span their sub-header columns.
	groupMerges := [][2]string{{"F3", "G3"}, {"I3", "J3"}, {"L3", "M3"}}
	for _, m := range groupMerges {
		if err := f.MergeCell(ExportSheet, m[0], m[1]); err != nil {
			return fmt.Errorf("failed to merge header group %s:%s: %w", m[0], m[1], err)
		}
	}

	return nil
}

func writeAssetRow(f *excelize.File, rowNum int, a *models.Asset) error {
	for _, col := range exportColumns {
		if col.value == nil {
			continue
		}
		v := col.value(a)
		if v == nil {
			continue
		}
		cell, err := excelize.CoordinatesToCellName(col.col, rowNum)
		if err != nil {
			return fmt.Errorf("failed to resolve data cell: %w", err)
		}
		if err := f.SetCellValue(ExportSheet, cell, v); err != nil {
			return fmt.Errorf("failed to write row %d: %w", rowNum, err)
		}
	}
	return nil
}

func newStyles(f *excelize.File) (header, red, data int, err error) {
	borders := []excelize.Border{
		{Type: "left", Style: 1, Color: "000000"},
		{Type: "right", Style: 1, Color: "000000"},
		{Type: "top", Style: 1, Color: "000000"},
		{Type: "bottom", Style: 1, Color: "000000"},
	}
	center := &excelize.Alignment{Horizontal: "center", Vertical: "center", WrapText: true}

	header, err = f.NewStyle(&excelize.Style{
		Border:    borders,
		Font:      &excelize.Font{Bold: true},
		Alignment: center,
	})
	if err != nil {
		return
	}

	red, err = f.NewStyle(&excelize.Style{
		Border:    borders,
		Font:      &excelize.Font{Bold: true, Color: "FF0000"},
		Alignment: center,
	})
	if err != nil {
		return
	}

	data, err = f.NewStyle(&excelize.Style{Border: borders})
	return
}

func strVal(p *string) interface{} {
	if p == nil {
		return nil
	}
	return *p
}

func intVal(p *int) interface{} {
	if p == nil {
		return nil
	}
	return *p
}

func floatVal(p *float64) interface{} {
	if p == nil {
		return nil
	}
	return *p
}
