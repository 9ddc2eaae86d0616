package ui

import (
	"context"

	"asetfilter/models"
)

// MockAssetRepository implements ports.AssetRepository for handler tests.
type MockAssetRepository struct {
	Assets        []models.Asset // returned by Filter, FilterAll and Sample
	Replaced      []models.Asset
	DeletedCount  int
	CountVal      int
	FilteredCount int
	Distinct      map[string][]string
	Statuses      []string
	MinLuas       float64
	MaxLuas       float64
	Luas          []float64
	TotalLuasVal  float64
	ByKecamatan   []models.NameCount
	BySatuan      []models.NameCount
	Err           error // when set, every read fails

	LastQuery  models.ListQuery
	LastFilter models.AssetFilter
}

func (m *MockAssetRepository) ReplaceAll(ctx context.Context, assets []models.Asset) (int, error) {
	if m.Err != nil {
		return 0, m.Err
	}
	m.Replaced = assets
	return len(assets), nil
}

func (m *MockAssetRepository) DeleteAll(ctx context.Context) (int, error) {
	return m.DeletedCount, m.Err
}

func (m *MockAssetRepository) Count(ctx context.Context) (int, error) {
	return m.CountVal, m.Err
}

func (m *MockAssetRepository) Filter(ctx context.Context, q models.ListQuery) ([]models.Asset, error) {
	m.LastQuery = q
	return m.Assets, m.Err
}

func (m *MockAssetRepository) FilterAll(ctx context.Context, f models.AssetFilter) ([]models.Asset, error) {
	m.LastFilter = f
	return m.Assets, m.Err
}

func (m *MockAssetRepository) CountFiltered(ctx context.Context, f models.AssetFilter) (int, error) {
	return m.FilteredCount, m.Err
}

func (m *MockAssetRepository) Sample(ctx context.Context, limit int) ([]models.Asset, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	if limit < len(m.Assets) {
		return m.Assets[:limit], nil
	}
	return m.Assets, nil
}

func (m *MockAssetRepository) DistinctValues(ctx context.Context, column string) ([]string, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	values, ok := m.Distinct[column]
	if !ok {
		return []string{}, nil
	}
	return values, nil
}

func (m *MockAssetRepository) StatusValues(ctx context.Context) ([]string, error) {
	return m.Statuses, m.Err
}

func (m *MockAssetRepository) LuasRange(ctx context.Context) (float64, float64, error) {
	return m.MinLuas, m.MaxLuas, m.Err
}

func (m *MockAssetRepository) LuasValues(ctx context.Context) ([]float64, error) {
	return m.Luas, m.Err
}

func (m *MockAssetRepository) TotalLuas(ctx context.Context) (float64, error) {
	return m.TotalLuasVal, m.Err
}

func (m *MockAssetRepository) CountByKecamatan(ctx context.Context) ([]models.NameCount, error) {
	return m.ByKecamatan, m.Err
}

func (m *MockAssetRepository) CountBySatuanKerja(ctx context.Context, limit int) ([]models.NameCount, error) {
	return m.BySatuan, m.Err
}

// MockUploadRepository implements ports.UploadRepository for handler tests.
type MockUploadRepository struct {
	Created   []*models.Upload
	Updated   []models.Upload // snapshots at update time
	LatestVal *models.Upload
	RecentVal []*models.Upload
}

func (m *MockUploadRepository) Create(ctx context.Context, upload *models.Upload) error {
	m.Created = append(m.Created, upload)
	return nil
}

func (m *MockUploadRepository) Update(ctx context.Context, upload *models.Upload) error {
	m.Updated = append(m.Updated, *upload)
	return nil
}

func (m *MockUploadRepository) Latest(ctx context.Context) (*models.Upload, error) {
	return m.LatestVal, nil
}

func (m *MockUploadRepository) Recent(ctx context.Context, limit int) ([]*models.Upload, error) {
	if limit < len(m.RecentVal) {
		return m.RecentVal[:limit], nil
	}
	return m.RecentVal, nil
}
