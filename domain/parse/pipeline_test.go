package parse

import (
	"errors"
	"strings"
	"testing"

	"asetfilter/domain/asset"
)

type fakeSource struct {
	order  []string
	sheets map[string][][]asset.Cell
	err    error
}

func (f *fakeSource) SheetNames() []string { return f.order }

func (f *fakeSource) SheetRows(name string) ([][]asset.Cell, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.sheets[name], nil
}

func requireNoErrors(t *testing.T, stats Stats) {
	t.Helper()
	if len(stats.Errors) != 0 {
		t.Fatalf("unexpected errors: %v", stats.Errors)
	}
}

func TestPipelineEndToEnd(t *testing.T) {
	tahun2005 := asset.NewNumberCell(2005)

	rows := [][]asset.Cell{
		row("DAFTAR ASET TANAH PEMERINTAH KOTA"),
		row("No.", "Jenis Barang / Nama Barang", "Satuan Kerja", "Luas (m2)", "KECAMATAN", "Penggunaan", "Tahun"),
		row("", "Letak / Alamat", "Pengadaan", "Hak"),
		row("JUMLAH", "3 bidang", "", "4500"),
		{asset.NewTextCell("1"), asset.NewTextCell("Tanah Kantor"), asset.NewTextCell("Dinas Pendidikan"), asset.NewTextCell("1500 m2"), asset.NewTextCell("Bekasi Barat"), asset.NewTextCell("Kantor Dinas"), tahun2005},
		row("2", "Tanah Sekolah", "Dinas Pendidikan", "6153:00:00", "Bekasi Timur", "SDN Harapan 1", "Tahun 1999"),
		row("3", "Tanah Kosong", "Dinas Aset", "-", "Bekasi Utara", "", "31"),
	}

	src := &fakeSource{order: []string{"A"}, sheets: map[string][][]asset.Cell{"A": rows}}
	records, stats := New(NopLogger{}).Run(src, "A")

	requireNoErrors(t, stats)
	if stats.TotalRowsRead != 7 {
		t.Errorf("TotalRowsRead = %d, want 7", stats.TotalRowsRead)
	}
	if stats.ValidRows != 3 {
		t.Errorf("ValidRows = %d, want 3", stats.ValidRows)
	}
	if stats.SkippedRows != 2 {
		t.Errorf("SkippedRows = %d, want 2", stats.SkippedRows)
	}
	if len(stats.SheetsProcessed) != 1 || stats.SheetsProcessed[0] != "A" {
		t.Errorf("SheetsProcessed = %v, want [A]", stats.SheetsProcessed)
	}
	if len(records) != 3 {
		t.Fatalf("got %d records, want 3", len(records))
	}

	first := records[0]
	if first.NamaAsset != "Kantor Dinas" {
		t.Errorf("NamaAsset = %q, want %q", first.NamaAsset, "Kantor Dinas")
	}
	if first.Luas == nil || *first.Luas != 1500 {
		t.Errorf("Luas = %v, want 1500", first.Luas)
	}
	if first.Tahun == nil || *first.Tahun != 2005 {
		t.Errorf("Tahun = %v, want 2005", first.Tahun)
	}
	if first.NoUrut == nil || *first.NoUrut != 1 {
		t.Errorf("NoUrut = %v, want 1", first.NoUrut)
	}
	if first.Kecamatan == nil || *first.Kecamatan != "Bekasi Barat" {
		t.Errorf("Kecamatan = %v, want Bekasi Barat", first.Kecamatan)
	}

	second := records[1]
	if second.Luas == nil || *second.Luas != 6153 {
		t.Errorf("second Luas = %v, want 6153", second.Luas)
	}
	if second.Tahun == nil || *second.Tahun != 1999 {
		t.Errorf("second Tahun = %v, want 1999", second.Tahun)
	}

	// No usable name but a district: placeholder. Dash area and two-digit
	// year degrade to absent fields without dropping the row.
	third := records[2]
	if third.NamaAsset != PlaceholderName {
		t.Errorf("third NamaAsset = %q, want placeholder", third.NamaAsset)
	}
	if third.Luas != nil {
		t.Errorf("third Luas = %v, want nil", *third.Luas)
	}
	if third.Tahun != nil {
		t.Errorf("third Tahun = %v, want nil", *third.Tahun)
	}

	for i, r := range records {
		if r.NamaAsset == "" {
			t.Errorf("record %d has empty NamaAsset", i)
		}
	}
}

func TestPipelineMissingNameWithoutDistrictSkips(t *testing.T) {
	rows := [][]asset.Cell{
		row("No.", "Jenis Barang / Nama Barang", "Satuan Kerja", "KECAMATAN", "Penggunaan"),
		row("1", "Tanah Kantor", "Dinas Pendidikan", "-", ""),
		row("2", "Tanah Sekolah", "Dinas Pendidikan", "Bekasi Timur", "SDN 2"),
	}

	src := &fakeSource{order: []string{"Data"}, sheets: map[string][][]asset.Cell{"Data": rows}}
	records, stats := New(nil).Run(src, "Data")

	requireNoErrors(t, stats)
	if stats.ValidRows != 1 {
		t.Errorf("ValidRows = %d, want 1", stats.ValidRows)
	}
	if stats.SkippedRows != 1 {
		t.Errorf("SkippedRows = %d, want 1", stats.SkippedRows)
	}
	if len(records) != 1 {
		t.Fatalf("got %d records, want 1", len(records))
	}
	if records[0].NamaAsset != "SDN 2" {
		t.Errorf("NamaAsset = %q, want SDN 2", records[0].NamaAsset)
	}
}

func TestPipelineSheetFallback(t *testing.T) {
	rows := [][]asset.Cell{
		row("No.", "Jenis Barang / Nama Barang", "Satuan Kerja", "KECAMATAN", "Penggunaan"),
		row("1", "Tanah Kantor", "Dinas Pendidikan", "Bekasi Barat", "Kantor"),
	}

	src := &fakeSource{order: []string{"Rekap", "Data"}, sheets: map[string][][]asset.Cell{"Rekap": rows}}
	records, stats := New(nil).Run(src, "A")

	requireNoErrors(t, stats)
	if len(stats.SheetsProcessed) != 1 || stats.SheetsProcessed[0] != "Rekap" {
		t.Errorf("SheetsProcessed = %v, want [Rekap]", stats.SheetsProcessed)
	}
	if len(records) != 1 {
		t.Errorf("got %d records, want 1", len(records))
	}
}

func TestPipelineHeaderFallbackIndex(t *testing.T) {
	// No marker row anywhere; the documented fallback index points at the
	// row carrying recognizable labels.
	rows := [][]asset.Cell{
		row("x"), row("x"), row("x"), row("x"), row("x"), row("x"),
		row("No.", "Penggunaan", "Luas (m2)", "Status Tanah"),
		row("1", "Tanah Makam", "250", "Hak Pakai"),
	}

	src := &fakeSource{order: []string{"A"}, sheets: map[string][][]asset.Cell{"A": rows}}
	records, stats := New(nil).Run(src, "A")

	requireNoErrors(t, stats)
	if len(records) != 1 {
		t.Fatalf("got %d records, want 1", len(records))
	}
	if records[0].NamaAsset != "Tanah Makam" {
		t.Errorf("NamaAsset = %q, want Tanah Makam", records[0].NamaAsset)
	}
	if records[0].StatusTanah == nil {
		t.Fatal("StatusTanah is nil")
	}
	if records[0].StatusCombined != "HAK PAKAI" {
		t.Errorf("StatusCombined = %q, want HAK PAKAI", records[0].StatusCombined)
	}
}

func TestPipelineStructuralErrors(t *testing.T) {
	expectStructuralError := func(t *testing.T, records []asset.Record, stats Stats, want string) {
		t.Helper()
		if len(records) != 0 {
			t.Errorf("got %d records, want none", len(records))
		}
		if len(stats.Errors) != 1 {
			t.Fatalf("got %d errors, want 1: %v", len(stats.Errors), stats.Errors)
		}
		if !strings.Contains(stats.Errors[0], want) {
			t.Errorf("error %q does not mention %q", stats.Errors[0], want)
		}
	}

	t.Run("header never located", func(t *testing.T) {
		src := &fakeSource{
			order:  []string{"A"},
			sheets: map[string][][]asset.Cell{"A": {row("x"), row("y"), row("z")}},
		}
		records, stats := New(nil).Run(src, "A")
		expectStructuralError(t, records, stats, "header row not found")
	})

	t.Run("no mappable columns at fallback header", func(t *testing.T) {
		junk := make([][]asset.Cell, 8)
		for i := range junk {
			junk[i] = row("xx", "yy", "zz")
		}
		src := &fakeSource{order: []string{"A"}, sheets: map[string][][]asset.Cell{"A": junk}}
		records, stats := New(nil).Run(src, "A")
		expectStructuralError(t, records, stats, "could not map")
	})

	t.Run("unreadable sheet", func(t *testing.T) {
		src := &fakeSource{order: []string{"A"}, err: errors.New("corrupted zip")}
		records, stats := New(nil).Run(src, "A")
		expectStructuralError(t, records, stats, "failed to read sheet")
	})

	t.Run("no sheets at all", func(t *testing.T) {
		src := &fakeSource{}
		records, stats := New(nil).Run(src, "A")
		expectStructuralError(t, records, stats, "no sheets")
	})
}
