package parse

import (
	"testing"

	"asetfilter/domain/asset"
)

func row(values ...string) []asset.Cell {
	cells := make([]asset.Cell, len(values))
	for i, v := range values {
		cells[i] = asset.NewTextCell(v)
	}
	return cells
}

func TestFindHeaderRow(t *testing.T) {
	tests := []struct {
		name string
		rows [][]asset.Cell
		want int
	}{
		{
			name: "header after banner rows",
			rows: [][]asset.Cell{
				row("DAFTAR ASET TANAH PEMERINTAH KOTA"),
				row("TAHUN 2023"),
				row("No.", "Jenis Barang / Nama Barang", "Satuan Kerja", "KECAMATAN"),
				row("1", "Tanah Kantor", "Dinas Pendidikan", "Bekasi Barat"),
			},
			want: 2,
		},
		{
			name: "single marker is not enough",
			rows: [][]asset.Cell{
				row("Satuan Kerja daftar"),
				row("data", "data", "data"),
			},
			want: -1,
		},
		{
			name: "first qualifying row wins over a later richer one",
			rows: [][]asset.Cell{
				row("Jenis Barang", "KECAMATAN"),
				row("Jenis Barang", "Nama Barang", "Satuan Kerja", "KECAMATAN"),
			},
			want: 0,
		},
		{
			name: "marker matching is case-sensitive",
			rows: [][]asset.Cell{
				row("jenis barang", "satuan kerja", "kecamatan"),
			},
			want: -1,
		},
		{
			name: "empty sheet",
			rows: nil,
			want: -1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FindHeaderRow(tt.rows); got != tt.want {
				t.Errorf("FindHeaderRow() = %d, want %d", got, tt.want)
			}
		})
	}
}
