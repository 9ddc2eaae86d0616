package postgres

import (
	"context"
	"fmt"

	"asetfilter/models"
	"asetfilter/ports"

	"github.com/jmoiron/sqlx"
)

// assetColumns is the SELECT list shared by every asset query.
const assetColumns = `id, no_kib, no_urut, kode_lokasi, kode_aset, satuan_kerja,
	nama_asset, nomor, luas, tahun, kecamatan, alamat, status_tanah, catatan,
	k3, pemetaan, tanah_bangunan, status_combined, nilai_harga, asal_usul,
	penggunaan, jumlah_bidang, keterangan, lain_lain, created_at`

const insertAsset = `
	INSERT INTO assets (
		no_kib, no_urut, kode_lokasi, kode_aset, satuan_kerja, nama_asset,
		nomor, luas, tahun, kecamatan, alamat, status_tanah, catatan, k3,
		pemetaan, tanah_bangunan, status_combined, nilai_harga, asal_usul,
		penggunaan, jumlah_bidang, keterangan, lain_lain
	) VALUES (
		:no_kib, :no_urut, :kode_lokasi, :kode_aset, :satuan_kerja, :nama_asset,
		:nomor, :luas, :tahun, :kecamatan, :alamat, :status_tanah, :catatan, :k3,
		:pemetaan, :tanah_bangunan, :status_combined, :nilai_harga, :asal_usul,
		:penggunaan, :jumlah_bidang, :keterangan, :lain_lain
	)`

// sortColumns allowlists ORDER BY targets. Unknown names fall back to id.
var sortColumns = map[string]string{
	"id":              "id",
	"no_kib":          "no_kib",
	"no_urut":         "no_urut",
	"nama_asset":      "nama_asset",
	"kecamatan":       "kecamatan",
	"satuan_kerja":    "satuan_kerja",
	"luas":            "luas",
	"tahun":           "tahun",
	"status_combined": "status_combined",
	"nilai_harga":     "nilai_harga",
}

// distinctColumns allowlists the columns whose values the filter UI offers.
var distinctColumns = map[string]bool{
	"kecamatan":      true,
	"satuan_kerja":   true,
	"status_tanah":   true,
	"pemetaan":       true,
	"catatan":        true,
	"k3":             true,
	"tanah_bangunan": true,
	"asal_usul":      true,
	"lain_lain":      true,
	"alamat":         true,
}

// AssetRepositoryImpl implements AssetRepository for PostgreSQL
type AssetRepositoryImpl struct {
	db *sqlx.DB
}

// NewAssetRepository creates a new PostgreSQL asset repository
func NewAssetRepository(db *sqlx.DB) ports.AssetRepository {
	return &AssetRepositoryImpl{db: db}
}

// ReplaceAll swaps the table contents for the given rows in one transaction,
// so readers never observe a half-loaded dataset.
func (r *AssetRepositoryImpl) ReplaceAll(ctx context.Context, assets []models.Asset) (int, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM assets`); err != nil {
		return 0, err
	}

	for i := range assets {
		if _, err := tx.NamedExecContext(ctx, insertAsset, &assets[i]); err != nil {
			return 0, fmt.Errorf("failed to insert row %d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return len(assets), nil
}

// DeleteAll removes every asset and reports how many rows went away.
func (r *AssetRepositoryImpl) DeleteAll(ctx context.Context) (int, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM assets`)
	if err != nil {
		return 0, err
	}
	n, err := res.RowsAffected()
	return int(n), err
}

// Count returns the unfiltered row count.
func (r *AssetRepositoryImpl) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM assets`)
	return count, err
}

// Filter returns one page of assets matching the query.
func (r *AssetRepositoryImpl) Filter(ctx context.Context, q models.ListQuery) ([]models.Asset, error) {
	where, args := filterClause(q.Filter)

	col, ok := sortColumns[q.SortBy]
	if !ok {
		col = "id"
	}
	dir := "ASC"
	if q.SortOrder == models.SortDesc {
		dir = "DESC"
	}

	args = append(args, q.PerPage, q.Offset())
	query := fmt.Sprintf(`SELECT %s FROM assets%s ORDER BY %s %s LIMIT $%d OFFSET $%d`,
		assetColumns, where, col, dir, len(args)-1, len(args))

	assets := []models.Asset{}
	err := r.db.SelectContext(ctx, &assets, query, args...)
	return assets, err
}

// FilterAll returns every matching asset in id order, for exports.
func (r *AssetRepositoryImpl) FilterAll(ctx context.Context, f models.AssetFilter) ([]models.Asset, error) {
	where, args := filterClause(f)
	query := fmt.Sprintf(`SELECT %s FROM assets%s ORDER BY id`, assetColumns, where)

	assets := []models.Asset{}
	err := r.db.SelectContext(ctx, &assets, query, args...)
	return assets, err
}

// CountFiltered returns how many assets match the filter.
func (r *AssetRepositoryImpl) CountFiltered(ctx context.Context, f models.AssetFilter) (int, error) {
	where, args := filterClause(f)

	var count int
	err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM assets`+where, args...)
	return count, err
}

// Sample returns up to limit assets in id order.
func (r *AssetRepositoryImpl) Sample(ctx context.Context, limit int) ([]models.Asset, error) {
	query := fmt.Sprintf(`SELECT %s FROM assets ORDER BY id LIMIT $1`, assetColumns)

	assets := []models.Asset{}
	err := r.db.SelectContext(ctx, &assets, query, limit)
	return assets, err
}

// DistinctValues lists the distinct non-empty values of an allowlisted column.
func (r *AssetRepositoryImpl) DistinctValues(ctx context.Context, column string) ([]string, error) {
	if !distinctColumns[column] {
		return nil, fmt.Errorf("column %q is not filterable", column)
	}

	query := fmt.Sprintf(
		`SELECT DISTINCT %s FROM assets WHERE %s IS NOT NULL AND %s != '' ORDER BY %s`,
		column, column, column, column)

	values := []string{}
	err := r.db.SelectContext(ctx, &values, query)
	return values, err
}

// StatusValues lists the distinct non-empty combined-status strings.
func (r *AssetRepositoryImpl) StatusValues(ctx context.Context) ([]string, error) {
	values := []string{}
	err := r.db.SelectContext(ctx, &values, `
		SELECT DISTINCT status_combined FROM assets
		WHERE status_combined != ''
		ORDER BY status_combined`)
	return values, err
}

// LuasRange returns the minimum and maximum area, zeros on an empty table.
func (r *AssetRepositoryImpl) LuasRange(ctx context.Context) (float64, float64, error) {
	var min, max float64
	err := r.db.QueryRowxContext(ctx,
		`SELECT COALESCE(MIN(luas), 0), COALESCE(MAX(luas), 0) FROM assets`).
		Scan(&min, &max)
	return min, max, err
}

// LuasValues returns every non-null area value.
func (r *AssetRepositoryImpl) LuasValues(ctx context.Context) ([]float64, error) {
	values := []float64{}
	err := r.db.SelectContext(ctx, &values,
		`SELECT luas FROM assets WHERE luas IS NOT NULL ORDER BY id`)
	return values, err
}

// TotalLuas returns the summed area, zero on an empty table.
func (r *AssetRepositoryImpl) TotalLuas(ctx context.Context) (float64, error) {
	var total float64
	err := r.db.GetContext(ctx, &total, `SELECT COALESCE(SUM(luas), 0) FROM assets`)
	return total, err
}

// CountByKecamatan groups asset counts by district, largest first.
func (r *AssetRepositoryImpl) CountByKecamatan(ctx context.Context) ([]models.NameCount, error) {
	counts := []models.NameCount{}
	err := r.db.SelectContext(ctx, &counts, `
		SELECT kecamatan AS name, COUNT(*) AS count
		FROM assets
		WHERE kecamatan IS NOT NULL
		GROUP BY kecamatan
		ORDER BY count DESC, name ASC`)
	return counts, err
}

// CountBySatuanKerja groups asset counts by work unit, largest first.
func (r *AssetRepositoryImpl) CountBySatuanKerja(ctx context.Context, limit int) ([]models.NameCount, error) {
	counts := []models.NameCount{}
	err := r.db.SelectContext(ctx, &counts, `
		SELECT satuan_kerja AS name, COUNT(*) AS count
		FROM assets
		WHERE satuan_kerja IS NOT NULL
		GROUP BY satuan_kerja
		ORDER BY count DESC, name ASC
		LIMIT $1`, limit)
	return counts, err
}
