package models

// FilterOptions carries the choice lists the filter form offers, built from
// the distinct values currently in the asset table.
type FilterOptions struct {
	Kecamatans    []string `json:"kecamatans"`
	SatuanKerjas  []string `json:"satuan_kerjas"`
	Statuses      []string `json:"statuses"`
	StatusTanah   []string `json:"status_tanah"`
	Pemetaan      []string `json:"pemetaan"`
	Catatan       []string `json:"catatan"`
	K3            []string `json:"k3"`
	TanahBangunan []string `json:"tanah_bangunan"`
	AsalUsul      []string `json:"asal_usul"`
	LainLain      []string `json:"lain_lain"`
	Alamat        []string `json:"alamat"`
	MinLuas       float64  `json:"min_luas"`
	MaxLuas       float64  `json:"max_luas"`
}
