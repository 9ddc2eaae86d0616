package models

import (
	"time"

	"asetfilter/domain/asset"
)

// Asset is one persisted land-asset row. Pointer fields map to nullable
// columns; nama_asset is NOT NULL by schema.
type Asset struct {
	ID             int64     `json:"id" db:"id"`
	NoKib          *string   `json:"no_kib" db:"no_kib"`
	NoUrut         *int      `json:"no_urut" db:"no_urut"`
	KodeLokasi     *string   `json:"kode_lokasi" db:"kode_lokasi"`
	KodeAset       *string   `json:"kode_aset" db:"kode_aset"`
	SatuanKerja    *string   `json:"satuan_kerja" db:"satuan_kerja"`
	NamaAsset      string    `json:"nama_asset" db:"nama_asset"`
	Nomor          *string   `json:"nomor" db:"nomor"`
	Luas           *float64  `json:"luas" db:"luas"`
	Tahun          *int      `json:"tahun" db:"tahun"`
	Kecamatan      *string   `json:"kecamatan" db:"kecamatan"`
	Alamat         *string   `json:"alamat" db:"alamat"`
	StatusTanah    *string   `json:"status_tanah" db:"status_tanah"`
	Catatan        *string   `json:"catatan" db:"catatan"`
	K3             *string   `json:"k3" db:"k3"`
	Pemetaan       *string   `json:"pemetaan" db:"pemetaan"`
	TanahBangunan  *string   `json:"tanah_bangunan" db:"tanah_bangunan"`
	StatusCombined string    `json:"status_combined" db:"status_combined"`
	NilaiHarga     *float64  `json:"nilai_harga" db:"nilai_harga"`
	AsalUsul       *string   `json:"asal_usul" db:"asal_usul"`
	Penggunaan     *string   `json:"penggunaan" db:"penggunaan"`
	JumlahBidang   *int      `json:"jumlah_bidang" db:"jumlah_bidang"`
	Keterangan     *string   `json:"keterangan" db:"keterangan"`
	LainLain       *string   `json:"lain_lain" db:"lain_lain"`
	CreatedAt      time.Time `json:"created_at" db:"created_at"`
}

// StatusList splits the combined status into its display badges. Value
// receiver so templates can call it on ranged rows.
func (a Asset) StatusList() []string {
	return asset.SplitStatus(a.StatusCombined)
}
