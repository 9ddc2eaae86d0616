package asset

// Record is one normalized output row. Pointer fields are nil when the source
// cell was empty or unparseable; NamaAsset is never empty on an emitted
// record (the pipeline substitutes a placeholder or drops the row).
type Record struct {
	NoKib          *string  `json:"no_kib,omitempty"`
	NoUrut         *int     `json:"no_urut,omitempty"`
	KodeLokasi     *string  `json:"kode_lokasi,omitempty"`
	KodeAset       *string  `json:"kode_aset,omitempty"`
	SatuanKerja    *string  `json:"satuan_kerja,omitempty"`
	NamaAsset      string   `json:"nama_asset"`
	JenisBarang    *string  `json:"jenis_barang_nama_barang,omitempty"`
	Nomor          *string  `json:"nomor,omitempty"`
	Luas           *float64 `json:"luas,omitempty"`
	Tahun          *int     `json:"tahun,omitempty"`
	Kecamatan      *string  `json:"kecamatan,omitempty"`
	Alamat         *string  `json:"alamat,omitempty"`
	StatusTanah    *string  `json:"status_tanah,omitempty"`
	Catatan        *string  `json:"catatan,omitempty"`
	K3             *string  `json:"k3,omitempty"`
	Pemetaan       *string  `json:"pemetaan,omitempty"`
	TanahBangunan  *string  `json:"tanah_bangunan,omitempty"`
	StatusCombined string   `json:"status_combined"`
	NilaiHarga     *float64 `json:"nilai_harga,omitempty"`
	AsalUsul       *string  `json:"asal_usul,omitempty"`
	JumlahBidang   *int     `json:"jumlah_bidang,omitempty"`
	Keterangan     *string  `json:"keterangan,omitempty"`
	LainLain       *string  `json:"lain_lain,omitempty"`
}

// StatusValues returns the raw status-bearing values in combination order.
// Absent fields contribute empty strings, which the combiner discards.
func (r *Record) StatusValues() []string {
	ptrs := []*string{r.StatusTanah, r.Catatan, r.K3, r.Pemetaan, r.TanahBangunan}
	values := make([]string, len(ptrs))
	for i, p := range ptrs {
		if p != nil {
			values[i] = *p
		}
	}
	return values
}
