package models

// BlankValue is the sentinel a detail filter sends to match rows where the
// field is NULL or empty, as opposed to matching the literal text.
const BlankValue = "__BLANK__"

// Sort orders accepted by list queries.
const (
	SortAsc  = "asc"
	SortDesc = "desc"
)

// AssetFilter holds every filter the views and exports can apply. Empty
// string and nil mean "not filtered". Statuses are OR-ed against the combined
// status; the detail fields honor the BlankValue sentinel.
type AssetFilter struct {
	NamaAsset   string
	Kecamatan   string
	SatuanKerja string
	Alamat      string
	MinLuas     *float64
	MaxLuas     *float64
	Statuses    []string

	StatusTanah   string
	Pemetaan      string
	Catatan       string
	K3            string
	TanahBangunan string
	AsalUsul      string
	LainLain      string
}

// DetailValue returns the requested value for a detail column by its database
// name, "" when that column is not filtered.
func (f AssetFilter) DetailValue(column string) string {
	switch column {
	case "status_tanah":
		return f.StatusTanah
	case "pemetaan":
		return f.Pemetaan
	case "catatan":
		return f.Catatan
	case "k3":
		return f.K3
	case "tanah_bangunan":
		return f.TanahBangunan
	case "asal_usul":
		return f.AsalUsul
	case "lain_lain":
		return f.LainLain
	}
	return ""
}

// IsZero reports whether no filter is active at all.
func (f AssetFilter) IsZero() bool {
	return f.NamaAsset == "" && f.Kecamatan == "" && f.SatuanKerja == "" &&
		f.Alamat == "" && f.MinLuas == nil && f.MaxLuas == nil &&
		len(f.Statuses) == 0 && f.StatusTanah == "" && f.Pemetaan == "" &&
		f.Catatan == "" && f.K3 == "" && f.TanahBangunan == "" &&
		f.AsalUsul == "" && f.LainLain == ""
}

// ListQuery combines a filter with paging and ordering.
type ListQuery struct {
	Filter    AssetFilter
	SortBy    string
	SortOrder string
	Page      int
	PerPage   int
}

// Normalize clamps paging and ordering to usable values. Unknown sort columns
// are resolved by the repository, not here.
func (q *ListQuery) Normalize(defaultPerPage int) {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.PerPage < 1 {
		q.PerPage = defaultPerPage
	}
	if q.SortOrder != SortDesc {
		q.SortOrder = SortAsc
	}
	if q.SortBy == "" {
		q.SortBy = "id"
	}
}

// Offset returns the row offset for the current page.
func (q ListQuery) Offset() int {
	return (q.Page - 1) * q.PerPage
}
