package parse

import (
	"fmt"

	"asetfilter/domain/asset"
)

// Logger is the diagnostic sink the pipeline reports to. The process logger
// satisfies it; tests pass NopLogger. Keeping it an injected dependency keeps
// the pipeline free of global state.
type Logger interface {
	Info(format string, args ...interface{})
	Warn(format string, args ...interface{})
	Debug(format string, args ...interface{})
}

// NopLogger discards all diagnostics.
type NopLogger struct{}

func (NopLogger) Info(string, ...interface{})  {}
func (NopLogger) Warn(string, ...interface{})  {}
func (NopLogger) Debug(string, ...interface{}) {}

// SheetSource supplies raw sheet rows. The excel adapter implements it over a
// workbook; tests use in-memory fakes.
type SheetSource interface {
	SheetNames() []string
	SheetRows(name string) ([][]asset.Cell, error)
}

// Stats carries one run's counters. TotalRowsRead counts every raw row
// including banners and the header; row-level rejections land in SkippedRows
// without per-row detail, structural failures in Errors.
type Stats struct {
	TotalRowsRead   int      `json:"total_rows_read"`
	ValidRows       int      `json:"valid_rows"`
	SkippedRows     int      `json:"skipped_rows"`
	SheetsProcessed []string `json:"sheets_processed"`
	Errors          []string `json:"errors"`
}

// PlaceholderName fills nama_asset when a row has a district but no name.
const PlaceholderName = "(Tanpa Nama)"

// kecamatanNullSentinels are district renderings that mean "no district".
var kecamatanNullSentinels = map[string]struct{}{
	"0": {},
	"-": {},
	"":  {},
}

// Pipeline drives one workbook sheet through header location, column mapping,
// row classification and normalization. It holds no mutable state, so one
// Pipeline may run concurrently over independent workbooks.
type Pipeline struct {
	log Logger
}

// New creates a pipeline reporting diagnostics to log. A nil log disables
// diagnostics.
func New(log Logger) *Pipeline {
	if log == nil {
		log = NopLogger{}
	}
	return &Pipeline{log: log}
}

// Run processes the selected sheet of src and returns the normalized records
// with run statistics. sheetName may be empty; a missing sheet falls back to
// the workbook's first sheet. Structural failures yield an empty record set
// and a message in Stats.Errors, never partial output.
func (p *Pipeline) Run(src SheetSource, sheetName string) ([]asset.Record, Stats) {
	var stats Stats

	names := src.SheetNames()
	if len(names) == 0 {
		stats.Errors = append(stats.Errors, "workbook has no sheets")
		return nil, stats
	}

	target := names[0]
	if sheetName != "" {
		found := false
		for _, name := range names {
			if name == sheetName {
				target = name
				found = true
				break
			}
		}
		if !found {
			p.log.Info("[Pipeline] sheet %q not found, using first sheet %q", sheetName, target)
		}
	}

	rows, err := src.SheetRows(target)
	if err != nil {
		stats.Errors = append(stats.Errors, fmt.Sprintf("failed to read sheet %q: %v", target, err))
		return nil, stats
	}

	stats.SheetsProcessed = append(stats.SheetsProcessed, target)
	stats.TotalRowsRead = len(rows)

	headerIdx := FindHeaderRow(rows)
	if headerIdx == -1 {
		p.log.Warn("[Pipeline] header row not found, falling back to index %d", FallbackHeaderIndex)
		headerIdx = FallbackHeaderIndex
	}
	if headerIdx >= len(rows) {
		stats.Errors = append(stats.Errors, "header row not found")
		return nil, stats
	}

	header := rows[headerIdx]
	dataRows := rows[headerIdx+1:]

	var secondary []asset.Cell
	twoRow := false
	if len(dataRows) > 0 && HasSecondaryHeader(dataRows[0]) {
		secondary = dataRows[0]
		twoRow = true
	}

	mapping := MapColumns(header, secondary, twoRow)
	if len(mapping) == 0 {
		p.log.Warn("[Pipeline] no header labels matched the known vocabulary")
		stats.Errors = append(stats.Errors, "could not map any columns to known fields")
		return nil, stats
	}

	var records []asset.Record
	for i, row := range dataRows {
		if !IsDataRow(row) {
			stats.SkippedRows++
			continue
		}

		fields := make(map[asset.CanonicalField]asset.Cell, len(mapping))
		for pos, field := range mapping {
			fields[field] = cellAt(row, pos)
		}

		record, ok := p.buildRecord(fields, headerIdx+1+i)
		if !ok {
			stats.SkippedRows++
			continue
		}
		records = append(records, record)
	}

	stats.ValidRows = len(records)
	p.log.Info("[Pipeline] sheet %q done: %d valid, %d skipped of %d rows",
		target, stats.ValidRows, stats.SkippedRows, stats.TotalRowsRead)
	return records, stats
}

// buildRecord normalizes one accepted row. It fails only when the row has no
// usable asset name; unparseable numeric fields degrade to absent values.
func (p *Pipeline) buildRecord(fields map[asset.CanonicalField]asset.Cell, rowIdx int) (asset.Record, bool) {
	var record asset.Record

	kecamatan := fields[asset.FieldKecamatan].Trimmed()
	if _, null := kecamatanNullSentinels[kecamatan]; null {
		kecamatan = ""
	}
	if kecamatan != "" {
		record.Kecamatan = &kecamatan
	}

	nama := fields[asset.FieldNamaAsset].Trimmed()
	if nama == "" {
		if kecamatan == "" {
			return asset.Record{}, false
		}
		nama = PlaceholderName
	}
	record.NamaAsset = nama

	record.NoKib = textField(fields, asset.FieldNoKib)
	record.KodeLokasi = textField(fields, asset.FieldKodeLokasi)
	record.KodeAset = textField(fields, asset.FieldKodeAset)
	record.SatuanKerja = textField(fields, asset.FieldSatuanKerja)
	record.JenisBarang = textField(fields, asset.FieldJenisBarang)
	record.Nomor = textField(fields, asset.FieldNomor)
	record.Alamat = textField(fields, asset.FieldAlamat)
	record.StatusTanah = textField(fields, asset.FieldStatusTanah)
	record.Catatan = textField(fields, asset.FieldCatatan)
	record.K3 = textField(fields, asset.FieldK3)
	record.Pemetaan = textField(fields, asset.FieldPemetaan)
	record.TanahBangunan = textField(fields, asset.FieldTanahBangunan)
	record.AsalUsul = textField(fields, asset.FieldAsalUsul)
	record.Keterangan = textField(fields, asset.FieldKeterangan)
	record.LainLain = textField(fields, asset.FieldLainLain)

	if cell, present := fields[asset.FieldLuas]; present && !cell.IsBlank() {
		if v, ok := asset.NormalizeArea(cell); ok {
			record.Luas = &v
		} else {
			p.log.Debug("[Pipeline] row %d: unparseable area %q", rowIdx, cell.Trimmed())
		}
	}
	if cell, present := fields[asset.FieldNilaiHarga]; present && !cell.IsBlank() {
		if v, ok := asset.NormalizeCurrency(cell); ok {
			record.NilaiHarga = &v
		} else {
			p.log.Debug("[Pipeline] row %d: unparseable value %q", rowIdx, cell.Trimmed())
		}
	}
	if cell, present := fields[asset.FieldTahun]; present && !cell.IsBlank() {
		if v, ok := asset.NormalizeYear(cell); ok {
			record.Tahun = &v
		} else {
			p.log.Debug("[Pipeline] row %d: unparseable year %q", rowIdx, cell.Trimmed())
		}
	}
	if cell, present := fields[asset.FieldNoUrut]; present && !cell.IsBlank() {
		if v, ok := asset.NormalizeCount(cell); ok {
			record.NoUrut = &v
		}
	}
	if cell, present := fields[asset.FieldJumlahBidang]; present && !cell.IsBlank() {
		if v, ok := asset.NormalizeCount(cell); ok {
			record.JumlahBidang = &v
		}
	}

	record.StatusCombined = asset.CombineStatus(record.StatusValues()...)
	return record, true
}

func textField(fields map[asset.CanonicalField]asset.Cell, f asset.CanonicalField) *string {
	s := fields[f].Trimmed()
	if s == "" {
		return nil
	}
	return &s
}

func cellAt(row []asset.Cell, pos int) asset.Cell {
	if pos < len(row) {
		return row[pos]
	}
	return asset.EmptyCell()
}
