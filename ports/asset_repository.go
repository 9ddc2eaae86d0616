package ports

import (
	"context"

	"asetfilter/models"
)

// AssetRepository defines the interface for asset data operations
type AssetRepository interface {
	// ReplaceAll atomically swaps the table contents for the given rows and
	// returns how many were inserted.
	ReplaceAll(ctx context.Context, assets []models.Asset) (int, error)

	// DeleteAll removes every asset and reports how many rows were removed.
	DeleteAll(ctx context.Context) (int, error)

	// Count returns the unfiltered row count.
	Count(ctx context.Context) (int, error)

	// Filter returns one page of assets matching the query.
	Filter(ctx context.Context, q models.ListQuery) ([]models.Asset, error)

	// FilterAll returns every asset matching the filter, unpaged, in id order.
	// Exports use this.
	FilterAll(ctx context.Context, f models.AssetFilter) ([]models.Asset, error)

	// CountFiltered returns how many assets match the filter.
	CountFiltered(ctx context.Context, f models.AssetFilter) (int, error)

	// Sample returns up to limit assets in id order, for previews.
	Sample(ctx context.Context, limit int) ([]models.Asset, error)

	// DistinctValues lists the distinct non-empty values of an allowlisted
	// column, sorted ascending.
	DistinctValues(ctx context.Context, column string) ([]string, error)

	// StatusValues lists the distinct non-empty combined-status strings.
	StatusValues(ctx context.Context) ([]string, error)

	// LuasRange returns the minimum and maximum area, zero when empty.
	LuasRange(ctx context.Context) (min float64, max float64, err error)

	// LuasValues returns every non-null area value.
	LuasValues(ctx context.Context) ([]float64, error)

	// TotalLuas returns the summed area, zero when empty.
	TotalLuas(ctx context.Context) (float64, error)

	// CountByKecamatan groups asset counts by district.
	CountByKecamatan(ctx context.Context) ([]models.NameCount, error)

	// CountBySatuanKerja groups asset counts by work unit, capped at limit.
	CountBySatuanKerja(ctx context.Context, limit int) ([]models.NameCount, error)
}
