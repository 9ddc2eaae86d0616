package postgres

import (
	"fmt"
	"strings"

	"asetfilter/models"
)

// detailColumns are the per-column detail filters that honor the blank
// sentinel: a request for models.BlankValue matches rows where the column is
// NULL or empty instead of pattern-matching.
var detailColumns = []string{
	"status_tanah",
	"pemetaan",
	"catatan",
	"k3",
	"tanah_bangunan",
	"asal_usul",
	"lain_lain",
}

// filterClause renders the filter as a WHERE clause with positional
// parameters. An inactive filter yields an empty clause and nil args.
func filterClause(f models.AssetFilter) (string, []interface{}) {
	var conds []string
	var args []interface{}

	if f.NamaAsset != "" {
		args = append(args, "%"+f.NamaAsset+"%")
		conds = append(conds, fmt.Sprintf("nama_asset ILIKE $%d", len(args)))
	}
	if f.Kecamatan != "" {
		args = append(args, f.Kecamatan)
		conds = append(conds, fmt.Sprintf("kecamatan = $%d", len(args)))
	}
	if f.SatuanKerja != "" {
		args = append(args, f.SatuanKerja)
		conds = append(conds, fmt.Sprintf("satuan_kerja = $%d", len(args)))
	}
	if f.Alamat != "" {
		args = append(args, "%"+f.Alamat+"%")
		conds = append(conds, fmt.Sprintf("alamat ILIKE $%d", len(args)))
	}
	if f.MinLuas != nil {
		args = append(args, *f.MinLuas)
		conds = append(conds, fmt.Sprintf("luas >= $%d", len(args)))
	}
	if f.MaxLuas != nil {
		args = append(args, *f.MaxLuas)
		conds = append(conds, fmt.Sprintf("luas <= $%d", len(args)))
	}

	// Any selected status badge matches.
	if len(f.Statuses) > 0 {
		ors := make([]string, 0, len(f.Statuses))
		for _, s := range f.Statuses {
			args = append(args, "%"+s+"%")
			ors = append(ors, fmt.Sprintf("status_combined ILIKE $%d", len(args)))
		}
		conds = append(conds, "("+strings.Join(ors, " OR ")+")")
	}

	for _, col := range detailColumns {
		value := f.DetailValue(col)
		if value == "" {
			continue
		}
		if value == models.BlankValue {
			conds = append(conds, fmt.Sprintf("(%s IS NULL OR %s = '')", col, col))
			continue
		}
		args = append(args, "%"+value+"%")
		conds = append(conds, fmt.Sprintf("%s ILIKE $%d", col, len(args)))
	}

	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}
