package models

import "asetfilter/domain/stats"

// NameCount is one bucket of a grouped count.
type NameCount struct {
	Name  string `json:"name" db:"name"`
	Count int    `json:"count" db:"count"`
}

// DashboardStats is the dashboard payload served by the stats endpoints.
type DashboardStats struct {
	Total         int           `json:"total"`
	TotalLuas     float64       `json:"total_luas"`
	ByKecamatan   []NameCount   `json:"by_kecamatan"`
	BySatuanKerja []NameCount   `json:"by_satuan_kerja"`
	LuasSummary   stats.Summary `json:"luas_summary"`
}
