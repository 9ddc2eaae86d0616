package app

import (
	"context"

	"asetfilter/internal/errors"
	"asetfilter/models"
	"asetfilter/ports"

	"golang.org/x/sync/errgroup"
)

// AssetService answers filtered list and export queries.
type AssetService struct {
	assets  ports.AssetRepository
	perPage int
}

// NewAssetService creates the query service with the configured page size.
func NewAssetService(assets ports.AssetRepository, perPage int) *AssetService {
	return &AssetService{assets: assets, perPage: perPage}
}

// Page runs one filtered, sorted, paginated query plus the two counts the
// results view shows. The three queries are independent and run concurrently.
func (s *AssetService) Page(ctx context.Context, q models.ListQuery) (*models.AssetPage, error) {
	q.Normalize(s.perPage)

	var (
		assets   []models.Asset
		total    int
		filtered int
	)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		assets, err = s.assets.Filter(ctx, q)
		return err
	})
	g.Go(func() error {
		var err error
		total, err = s.assets.Count(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		filtered, err = s.assets.CountFiltered(ctx, q.Filter)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, errors.Wrap(err, "failed to query assets")
	}

	page := models.NewAssetPage(assets, total, filtered, q.Page, q.PerPage)
	return &page, nil
}

// Export returns every matching asset in id order, for the workbook writer.
func (s *AssetService) Export(ctx context.Context, f models.AssetFilter) ([]models.Asset, error) {
	assets, err := s.assets.FilterAll(ctx, f)
	if err != nil {
		return nil, errors.Wrap(err, "failed to query assets for export")
	}
	return assets, nil
}
