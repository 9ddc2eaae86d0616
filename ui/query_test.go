package ui

import (
	"net/url"
	"testing"

	"asetfilter/models"
)

func TestFilterFromValues(t *testing.T) {
	v := url.Values{
		"nama_asset":   {"  tanah kantor "},
		"kecamatan":    {"Bekasi Timur"},
		"min_luas":     {"100.5"},
		"max_luas":     {"not-a-number"},
		"status":       {" TKD ", "", "TERMANFAATKAN"},
		"status_tanah": {models.BlankValue},
		"k3":           {"MILIK WARGA"},
	}

	f := filterFromValues(v)

	if f.NamaAsset != "tanah kantor" {
		t.Errorf("NamaAsset = %q, want trimmed value", f.NamaAsset)
	}
	if f.Kecamatan != "Bekasi Timur" {
		t.Errorf("Kecamatan = %q", f.Kecamatan)
	}
	if f.MinLuas == nil || *f.MinLuas != 100.5 {
		t.Errorf("MinLuas = %v, want 100.5", f.MinLuas)
	}
	if f.MaxLuas != nil {
		t.Errorf("MaxLuas = %v, want nil for unparseable input", *f.MaxLuas)
	}
	if len(f.Statuses) != 2 || f.Statuses[0] != "TKD" || f.Statuses[1] != "TERMANFAATKAN" {
		t.Errorf("Statuses = %v, want trimmed non-empty values", f.Statuses)
	}
	if f.StatusTanah != models.BlankValue {
		t.Errorf("StatusTanah = %q, want the blank sentinel untouched", f.StatusTanah)
	}
	if f.K3 != "MILIK WARGA" {
		t.Errorf("K3 = %q", f.K3)
	}
}

func TestListQueryFromValues(t *testing.T) {
	v := url.Values{
		"page":  {"3"},
		"sort":  {"luas"},
		"order": {"desc"},
	}

	q := listQueryFromValues(v)

	if q.Page != 3 {
		t.Errorf("Page = %d, want 3", q.Page)
	}
	if q.SortBy != "luas" || q.SortOrder != "desc" {
		t.Errorf("sort = %q %q", q.SortBy, q.SortOrder)
	}

	q = listQueryFromValues(url.Values{"page": {"zero"}})
	if q.Page != 1 {
		t.Errorf("Page = %d, want fallback 1 for unparseable input", q.Page)
	}
}

func TestLinkQueryDropsParams(t *testing.T) {
	v := url.Values{
		"kecamatan":  {"Bekasi Timur"},
		"page":       {"4"},
		"sort":       {"luas"},
		"flash":      {"old notice"},
		"flash_type": {"success"},
	}

	got := linkQuery(v, "page", "sort")

	want := url.Values{"kecamatan": {"Bekasi Timur"}}.Encode()
	if got != want {
		t.Errorf("linkQuery = %q, want %q", got, want)
	}
	if v.Get("page") != "4" {
		t.Errorf("linkQuery mutated its input")
	}
}

func TestGroupDigits(t *testing.T) {
	tests := []struct {
		v        float64
		decimals int
		want     string
	}{
		{0, 2, "0"},
		{945, 2, "945"},
		{1500.5, 2, "1.500,5"},
		{1234567, 0, "1.234.567"},
		{98000.25, 2, "98.000,25"},
		{-4200, 2, "-4.200"},
	}
	for _, tt := range tests {
		if got := groupDigits(tt.v, tt.decimals); got != tt.want {
			t.Errorf("groupDigits(%v, %d) = %q, want %q", tt.v, tt.decimals, got, tt.want)
		}
	}
}

func TestFormatters(t *testing.T) {
	luas := 1500.5
	if got := formatLuas(&luas); got != "1.500,5" {
		t.Errorf("formatLuas(&1500.5) = %q", got)
	}
	if got := formatLuas((*float64)(nil)); got != "-" {
		t.Errorf("formatLuas(nil) = %q, want -", got)
	}
	if got := formatLuas(120.0); got != "120" {
		t.Errorf("formatLuas(120) = %q", got)
	}

	harga := 250000000.0
	if got := rupiah(&harga); got != "Rp 250.000.000" {
		t.Errorf("rupiah(&250000000) = %q", got)
	}
	if got := rupiah((*float64)(nil)); got != "-" {
		t.Errorf("rupiah(nil) = %q, want -", got)
	}
}
