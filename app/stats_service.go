package app

import (
	"context"

	"asetfilter/domain/stats"
	"asetfilter/internal/errors"
	"asetfilter/models"
	"asetfilter/ports"

	"golang.org/x/sync/errgroup"
)

// topSatuanKerja caps the work-unit breakdown on the dashboard.
const topSatuanKerja = 10

// StatsService aggregates the dashboard numbers.
type StatsService struct {
	assets ports.AssetRepository
}

// NewStatsService creates the dashboard statistics service.
func NewStatsService(assets ports.AssetRepository) *StatsService {
	return &StatsService{assets: assets}
}

// Dashboard collects the stats payload. The five aggregate queries are
// independent and run concurrently.
func (s *StatsService) Dashboard(ctx context.Context) (*models.DashboardStats, error) {
	var (
		out  models.DashboardStats
		luas []float64
	)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		out.Total, err = s.assets.Count(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		out.TotalLuas, err = s.assets.TotalLuas(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		out.ByKecamatan, err = s.assets.CountByKecamatan(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		out.BySatuanKerja, err = s.assets.CountBySatuanKerja(ctx, topSatuanKerja)
		return err
	})
	g.Go(func() error {
		var err error
		luas, err = s.assets.LuasValues(ctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, errors.Wrap(err, "failed to aggregate statistics")
	}

	out.LuasSummary = stats.Summarize(luas)
	return &out, nil
}
