package api

import (
	"net/url"
	"strconv"
	"strings"

	"asetfilter/models"
)

// maxPerPage caps client-chosen page sizes.
const maxPerPage = 200

// filterFromQuery maps query parameters onto an AssetFilter. Invalid numbers
// count as "not filtered".
func filterFromQuery(v url.Values) models.AssetFilter {
	f := models.AssetFilter{
		NamaAsset:     strings.TrimSpace(v.Get("nama_asset")),
		Kecamatan:     strings.TrimSpace(v.Get("kecamatan")),
		SatuanKerja:   strings.TrimSpace(v.Get("satuan_kerja")),
		Alamat:        strings.TrimSpace(v.Get("alamat")),
		MinLuas:       floatParam(v.Get("min_luas")),
		MaxLuas:       floatParam(v.Get("max_luas")),
		StatusTanah:   strings.TrimSpace(v.Get("status_tanah")),
		Pemetaan:      strings.TrimSpace(v.Get("pemetaan")),
		Catatan:       strings.TrimSpace(v.Get("catatan")),
		K3:            strings.TrimSpace(v.Get("k3")),
		TanahBangunan: strings.TrimSpace(v.Get("tanah_bangunan")),
		AsalUsul:      strings.TrimSpace(v.Get("asal_usul")),
		LainLain:      strings.TrimSpace(v.Get("lain_lain")),
	}
	for _, s := range v["status"] {
		if s = strings.TrimSpace(s); s != "" {
			f.Statuses = append(f.Statuses, s)
		}
	}
	return f
}

// listQueryFromURL maps paging and ordering parameters onto a ListQuery.
// Unlike the web UI, API clients may pick their own page size via per_page.
func listQueryFromURL(v url.Values) models.ListQuery {
	q := models.ListQuery{
		Filter:    filterFromQuery(v),
		Page:      intParam(v.Get("page"), 1),
		PerPage:   intParam(v.Get("per_page"), 0),
		SortBy:    strings.TrimSpace(v.Get("sort")),
		SortOrder: strings.TrimSpace(v.Get("order")),
	}
	if q.PerPage > maxPerPage {
		q.PerPage = maxPerPage
	}
	return q
}

func floatParam(raw string) *float64 {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	val, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil
	}
	return &val
}

func intParam(raw string, fallback int) int {
	val, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return fallback
	}
	return val
}
