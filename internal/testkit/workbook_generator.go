package testkit

import (
	"fmt"
	"io"
	"math/rand"
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"
)

// WorkbookConfig configures the synthetic KIB workbook generator.
type WorkbookConfig struct {
	SheetName     string `json:"sheet_name"`
	BannerRows    int    `json:"banner_rows"`     // title rows above the header
	TwoRowHeader  bool   `json:"two_row_header"`  // emit the Letak/Alamat secondary row
	DataRows      int    `json:"data_rows"`
	SubtotalEvery int    `json:"subtotal_every"` // JUMLAH row after every N data rows, 0 = none
	NoisyNumbers  bool   `json:"noisy_numbers"`  // render some areas/values as formatted text
	Seed          int64  `json:"seed"`
}

// DefaultWorkbookConfig returns a workbook shaped like the district exports:
// two banner rows, a two-row header, noisy numerics, a subtotal every ten rows.
func DefaultWorkbookConfig() WorkbookConfig {
	return WorkbookConfig{
		SheetName:     "A",
		BannerRows:    2,
		TwoRowHeader:  true,
		DataRows:      25,
		SubtotalEvery: 10,
		NoisyNumbers:  true,
		Seed:          42,
	}
}

// headerLabels is the primary header row. The address column carries no
// primary label; its title lives in the secondary row.
var headerLabels = []string{
	"NO. KIB 2023",
	"No.",
	"Kode Lokasi",
	"Satuan Kerja",
	"Jenis Barang / Nama Barang",
	"Nomor",
	"Luas (m2)",
	"Tahun",
	"", // Letak / Alamat, secondary row only
	"Status Tanah",
	"Penggunaan",
	"Asal Usul",
	"Nilai / Harga",
	"Keterangan",
	"Kode Aset",
	"JUMLAH BIDANG",
	"KECAMATAN",
	"PEMETAAN ASET TANAH",
	"CATATAN (TERMANFAATKAN/TERLANTAR)",
	"K3 (MILIK WARGA/ADA KLAIM, TKD, DLL)",
	"TANAH (BANGUNAN/TANAH KOSONG)",
	"LAIN-LAIN",
}

const (
	colNoKib = iota
	colNoUrut
	colKodeLokasi
	colSatuanKerja
	colJenisBarang
	colNomor
	colLuas
	colTahun
	colAlamat
	colStatusTanah
	colPenggunaan
	colAsalUsul
	colNilaiHarga
	colKeterangan
	colKodeAset
	colJumlahBidang
	colKecamatan
	colPemetaan
	colCatatan
	colK3
	colTanahBangunan
	colLainLain
	columnCount
)

var (
	kecamatans = []string{"Bekasi Barat", "Bekasi Timur", "Bekasi Utara", "Bekasi Selatan", "Medan Satria"}
	satuans    = []string{"Dinas Pertanahan", "Dinas Pendidikan", "Dinas Kesehatan", "Sekretariat Daerah"}
	usages     = []string{"Kantor Kecamatan", "Sekolah Dasar Negeri", "Puskesmas", "Tanah Makam", "Lapangan Olahraga"}
	rights     = []string{"Hak Pakai", "Hak Milik", ""}
	origins    = []string{"Pembelian", "Hibah", "Tukar Menukar"}
	catatans   = []string{"TERMANFAATKAN", "TERLANTAR"}
	k3s        = []string{"TKD", "MILIK WARGA", "-"}
	buildings  = []string{"BANGUNAN", "TANAH KOSONG"}
)

// WorkbookGenerator writes synthetic land-asset workbooks with the structural
// noise the parse pipeline has to survive.
type WorkbookGenerator struct {
	config WorkbookConfig
	rng    *rand.Rand
}

// NewWorkbookGenerator creates a generator for the given shape.
func NewWorkbookGenerator(config WorkbookConfig) *WorkbookGenerator {
	if config.SheetName == "" {
		config.SheetName = "A"
	}
	return &WorkbookGenerator{
		config: config,
		rng:    rand.New(rand.NewSource(config.Seed)),
	}
}

// TotalRows returns how many raw rows the generated sheet holds.
func (g *WorkbookGenerator) TotalRows() int {
	return g.config.BannerRows + 1 + g.secondaryRows() + g.config.DataRows + g.subtotalRows()
}

// ValidRows returns how many rows the pipeline should accept.
func (g *WorkbookGenerator) ValidRows() int {
	return g.config.DataRows
}

// SkippedRows returns how many rows below the header the pipeline should
// reject: the stray secondary header plus every subtotal row.
func (g *WorkbookGenerator) SkippedRows() int {
	return g.secondaryRows() + g.subtotalRows()
}

func (g *WorkbookGenerator) secondaryRows() int {
	if g.config.TwoRowHeader {
		return 1
	}
	return 0
}

func (g *WorkbookGenerator) subtotalRows() int {
	if g.config.SubtotalEvery <= 0 {
		return 0
	}
	return g.config.DataRows / g.config.SubtotalEvery
}

// Generate builds the workbook in memory. The caller owns the file.
func (g *WorkbookGenerator) Generate() (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", g.config.SheetName); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to name sheet: %w", err)
	}

	rowNum := 1
	writeRow := func(cells []interface{}) error {
		for i, v := range cells {
			if v == nil {
				continue
			}
			if s, ok := v.(string); ok && s == "" {
				continue
			}
			cell, err := excelize.CoordinatesToCellName(i+1, rowNum)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(g.config.SheetName, cell, v); err != nil {
				return err
			}
		}
		rowNum++
		return nil
	}

	banners := []string{"KARTU INVENTARIS BARANG (KIB) A", "TANAH", "PEMERINTAH KOTA BEKASI"}
	for i := 0; i < g.config.BannerRows; i++ {
		if err := writeRow([]interface{}{banners[i%len(banners)]}); err != nil {
			f.Close()
			return nil, err
		}
	}

	header := make([]interface{}, columnCount)
	for i, label := range headerLabels {
		header[i] = label
	}
	if err := writeRow(header); err != nil {
		f.Close()
		return nil, err
	}

	if g.config.TwoRowHeader {
		secondary := make([]interface{}, columnCount)
		secondary[colNomor] = "Kd Barang"
		secondary[colTahun] = "Pengadaan"
		secondary[colAlamat] = "Letak / Alamat"
		secondary[colStatusTanah] = "Hak"
		if err := writeRow(secondary); err != nil {
			f.Close()
			return nil, err
		}
	}

	sinceSubtotal := 0
	for i := 0; i < g.config.DataRows; i++ {
		if err := writeRow(g.dataRow(i)); err != nil {
			f.Close()
			return nil, err
		}
		sinceSubtotal++
		if g.config.SubtotalEvery > 0 && sinceSubtotal == g.config.SubtotalEvery {
			subtotal := make([]interface{}, columnCount)
			subtotal[colNoKib] = "JUMLAH"
			subtotal[colLuas] = float64((i + 1) * 1000)
			if err := writeRow(subtotal); err != nil {
				f.Close()
				return nil, err
			}
			sinceSubtotal = 0
		}
	}

	return f, nil
}

// WriteFile generates the workbook and saves it to path.
func (g *WorkbookGenerator) WriteFile(path string) error {
	f, err := g.Generate()
	if err != nil {
		return err
	}
	defer f.Close()
	return f.SaveAs(path)
}

// WriteTo generates the workbook into w, for upload-style readers.
func (g *WorkbookGenerator) WriteTo(w io.Writer) error {
	f, err := g.Generate()
	if err != nil {
		return err
	}
	defer f.Close()
	return f.Write(w)
}

// TempWorkbook writes a workbook with the given shape into a test temp dir
// and returns its path.
func TempWorkbook(tb testing.TB, config WorkbookConfig) string {
	tb.Helper()
	path := filepath.Join(tb.TempDir(), "kib_tanah.xlsx")
	if err := NewWorkbookGenerator(config).WriteFile(path); err != nil {
		tb.Fatalf("failed to write workbook fixture: %v", err)
	}
	return path
}

func (g *WorkbookGenerator) dataRow(i int) []interface{} {
	row := make([]interface{}, columnCount)

	row[colNoKib] = fmt.Sprintf("KIB-%03d", i+1)
	row[colNoUrut] = float64(i + 1)
	row[colKodeLokasi] = fmt.Sprintf("12.06.%02d", g.rng.Intn(20)+1)
	row[colSatuanKerja] = satuans[g.rng.Intn(len(satuans))]
	row[colJenisBarang] = "Tanah Bangunan Kantor Pemerintah"
	row[colNomor] = fmt.Sprintf("R-%04d", g.rng.Intn(9000)+1000)

	luas := float64(g.rng.Intn(9500) + 100)
	tahun := 1975 + g.rng.Intn(50)
	harga := float64(g.rng.Intn(900)+50) * 1e6

	// Every few rows the numerics arrive as the formatted text the source
	// files are known to produce.
	if g.config.NoisyNumbers && i%5 == 1 {
		row[colLuas] = fmt.Sprintf("%d:00:00", int(luas))
		row[colTahun] = fmt.Sprintf("Tahun %d", tahun)
		row[colNilaiHarga] = fmt.Sprintf("Rp %s", groupDigits(int64(harga)))
	} else if g.config.NoisyNumbers && i%5 == 3 {
		row[colLuas] = fmt.Sprintf("%d m2", int(luas))
		row[colTahun] = float64(tahun)
		row[colNilaiHarga] = harga
	} else {
		row[colLuas] = luas
		row[colTahun] = float64(tahun)
		row[colNilaiHarga] = harga
	}

	row[colAlamat] = fmt.Sprintf("Jl. Veteran No. %d", g.rng.Intn(200)+1)
	row[colStatusTanah] = rights[g.rng.Intn(len(rights))]
	row[colPenggunaan] = usages[g.rng.Intn(len(usages))]
	row[colAsalUsul] = origins[g.rng.Intn(len(origins))]
	row[colKeterangan] = ""
	row[colKodeAset] = fmt.Sprintf("01.%04d", g.rng.Intn(9999)+1)
	row[colJumlahBidang] = float64(g.rng.Intn(3) + 1)
	row[colKecamatan] = kecamatans[g.rng.Intn(len(kecamatans))]
	row[colPemetaan] = []string{"Sudah", "Belum"}[g.rng.Intn(2)]
	row[colCatatan] = catatans[g.rng.Intn(len(catatans))]
	row[colK3] = k3s[g.rng.Intn(len(k3s))]
	row[colTanahBangunan] = buildings[g.rng.Intn(len(buildings))]
	row[colLainLain] = ""

	return row
}

// groupDigits renders n with dot thousand separators, the way the source
// files print currency.
func groupDigits(n int64) string {
	s := fmt.Sprintf("%d", n)
	if len(s) <= 3 {
		return s
	}
	var out []byte
	lead := len(s) % 3
	if lead > 0 {
		out = append(out, s[:lead]...)
	}
	for i := lead; i < len(s); i += 3 {
		if len(out) > 0 {
			out = append(out, '.')
		}
		out = append(out, s[i:i+3]...)
	}
	return string(out)
}
