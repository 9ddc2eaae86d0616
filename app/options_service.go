package app

import (
	"context"
	"sort"

	"asetfilter/domain/asset"
	"asetfilter/internal/errors"
	"asetfilter/models"
	"asetfilter/ports"

	"golang.org/x/sync/errgroup"
)

// OptionsService builds the choice lists the filter form offers.
type OptionsService struct {
	assets ports.AssetRepository
}

// NewOptionsService creates the filter options service.
func NewOptionsService(assets ports.AssetRepository) *OptionsService {
	return &OptionsService{assets: assets}
}

// Options collects every filter choice list in one pass. The distinct-value
// queries are independent and run concurrently.
func (s *OptionsService) Options(ctx context.Context) (*models.FilterOptions, error) {
	var out models.FilterOptions

	g, ctx := errgroup.WithContext(ctx)

	fields := []struct {
		column string
		dst    *[]string
	}{
		{"kecamatan", &out.Kecamatans},
		{"satuan_kerja", &out.SatuanKerjas},
		{"status_tanah", &out.StatusTanah},
		{"pemetaan", &out.Pemetaan},
		{"catatan", &out.Catatan},
		{"k3", &out.K3},
		{"tanah_bangunan", &out.TanahBangunan},
		{"asal_usul", &out.AsalUsul},
		{"lain_lain", &out.LainLain},
		{"alamat", &out.Alamat},
	}
	for _, f := range fields {
		f := f
		g.Go(func() error {
			values, err := s.assets.DistinctValues(ctx, f.column)
			if err != nil {
				return err
			}
			*f.dst = values
			return nil
		})
	}
	g.Go(func() error {
		raw, err := s.assets.StatusValues(ctx)
		if err != nil {
			return err
		}
		out.Statuses = statusChoices(raw)
		return nil
	})
	g.Go(func() error {
		min, max, err := s.assets.LuasRange(ctx)
		if err != nil {
			return err
		}
		out.MinLuas, out.MaxLuas = min, max
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, errors.Wrap(err, "failed to load filter options")
	}
	return &out, nil
}

// statusChoices splits every stored combined status into its distinct badges,
// sorted. Before any rows are loaded the documented keywords stand in so the
// form is never empty.
func statusChoices(combined []string) []string {
	set := make(map[string]struct{})
	for _, c := range combined {
		for _, part := range asset.SplitStatus(c) {
			set[part] = struct{}{}
		}
	}
	if len(set) == 0 {
		return append([]string(nil), asset.StatusKeywords...)
	}

	choices := make([]string, 0, len(set))
	for s := range set {
		choices = append(choices, s)
	}
	sort.Strings(choices)
	return choices
}
