package app

import (
	"context"
	"fmt"
	"testing"

	"asetfilter/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDashboardAggregates(t *testing.T) {
	repo := &MockAssetRepository{
		CountVal:     12,
		TotalLuasVal: 45600.5,
		ByKecamatan: []models.NameCount{
			{Name: "Bekasi Barat", Count: 7},
			{Name: "Bekasi Timur", Count: 5},
		},
		BySatuan: []models.NameCount{
			{Name: "Dinas Pertanahan", Count: 12},
		},
		Luas: []float64{100, 200, 300, 400, 500},
	}
	svc := NewStatsService(repo)

	stats, err := svc.Dashboard(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 12, stats.Total)
	assert.Equal(t, 45600.5, stats.TotalLuas)
	assert.Len(t, stats.ByKecamatan, 2)
	assert.Len(t, stats.BySatuanKerja, 1)
	assert.Equal(t, 10, repo.SatuanLimit)

	assert.Equal(t, 5, stats.LuasSummary.Count)
	assert.Equal(t, 1500.0, stats.LuasSummary.Total)
	assert.Equal(t, 300.0, stats.LuasSummary.Mean)
	assert.Equal(t, 100.0, stats.LuasSummary.Min)
	assert.Equal(t, 500.0, stats.LuasSummary.Max)
}

func TestDashboardEmptyTable(t *testing.T) {
	svc := NewStatsService(&MockAssetRepository{})

	stats, err := svc.Dashboard(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 0, stats.Total)
	assert.Equal(t, 0.0, stats.TotalLuas)
	assert.Equal(t, 0, stats.LuasSummary.Count)
}

func TestDashboardQueryFailure(t *testing.T) {
	svc := NewStatsService(&MockAssetRepository{Err: fmt.Errorf("timeout")})

	_, err := svc.Dashboard(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to aggregate statistics")
}
