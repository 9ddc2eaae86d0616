package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"asetfilter/adapters/excel"
	"asetfilter/domain/asset"
	"asetfilter/domain/parse"
	"asetfilter/internal"
	"asetfilter/internal/errors"
	"asetfilter/models"
	"asetfilter/ports"
)

// IngestService drives one upload end to end: stage the file, parse it, and
// replace the asset table wholesale, keeping upload history in step.
type IngestService struct {
	assets    ports.AssetRepository
	uploads   ports.UploadRepository
	pipeline  *parse.Pipeline
	log       *internal.Logger
	uploadDir string
	sheet     string
}

// IngestResult reports one completed import.
type IngestResult struct {
	Upload   *models.Upload `json:"upload"`
	Stats    parse.Stats    `json:"stats"`
	Inserted int            `json:"inserted"`
}

// NewIngestService creates the ingest service. uploadDir is where incoming
// files are staged; targetSheet names the sheet the pipeline looks for first.
func NewIngestService(assets ports.AssetRepository, uploads ports.UploadRepository, uploadDir, targetSheet string) *IngestService {
	return &IngestService{
		assets:    assets,
		uploads:   uploads,
		pipeline:  parse.New(internal.DefaultLogger),
		log:       internal.DefaultLogger,
		uploadDir: uploadDir,
		sheet:     targetSheet,
	}
}

// IngestFile processes one uploaded workbook. On success the asset table is
// replaced in one transaction; on any failure the upload row records the
// cause and existing data stays untouched. The staged copy is always removed.
func (s *IngestService) IngestFile(ctx context.Context, filename string, src io.Reader) (*IngestResult, error) {
	upload := models.NewUpload(filename)
	if err := s.uploads.Create(ctx, upload); err != nil {
		return nil, errors.Wrap(err, "failed to record upload")
	}

	staged, err := s.stageFile(upload.ID.String(), filename, src)
	if err != nil {
		return nil, s.fail(ctx, upload, errors.Wrap(err, "failed to stage upload"))
	}
	defer func() {
		if err := os.Remove(staged); err != nil {
			s.log.Warn("failed to remove staged file %s: %v", staged, err)
		}
	}()

	wb, err := excel.OpenWorkbook(staged)
	if err != nil {
		return nil, s.fail(ctx, upload, errors.WithCode(errors.CodeParseError, err))
	}
	defer wb.Close()

	records, stats := s.pipeline.Run(wb, s.sheet)
	if len(records) == 0 {
		msg := "no data could be extracted from the file"
		if len(stats.Errors) > 0 {
			msg = fmt.Sprintf("%s: %s", msg, strings.Join(stats.Errors, "; "))
		}
		return nil, s.fail(ctx, upload, errors.ParseError(msg))
	}

	assets := make([]models.Asset, len(records))
	for i := range records {
		assets[i] = assetFromRecord(&records[i])
	}

	inserted, err := s.assets.ReplaceAll(ctx, assets)
	if err != nil {
		return nil, s.fail(ctx, upload, errors.Wrap(err, "failed to load assets"))
	}

	upload.MarkSuccess(inserted)
	if err := s.uploads.Update(ctx, upload); err != nil {
		return nil, errors.Wrap(err, "failed to finalize upload")
	}

	s.log.Info("ingested %s: %d rows read, %d valid, %d skipped",
		filename, stats.TotalRowsRead, stats.ValidRows, stats.SkippedRows)

	return &IngestResult{Upload: upload, Stats: stats, Inserted: inserted}, nil
}

// IngestPath imports a workbook from disk. The CLI import command uses this.
func (s *IngestService) IngestPath(ctx context.Context, path string) (*IngestResult, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open %s", path)
	}
	defer f.Close()

	return s.IngestFile(ctx, filepath.Base(path), f)
}

// ClearAssets drops every asset row, reporting how many were removed.
func (s *IngestService) ClearAssets(ctx context.Context) (int, error) {
	n, err := s.assets.DeleteAll(ctx)
	if err != nil {
		return 0, errors.Wrap(err, "failed to clear assets")
	}
	s.log.Info("cleared %d assets", n)
	return n, nil
}

// Preview returns the first assets in storage order, for post-upload review.
func (s *IngestService) Preview(ctx context.Context, limit int) ([]models.Asset, error) {
	return s.assets.Sample(ctx, limit)
}

// LastUpload returns the most recent upload record, nil when none exist.
func (s *IngestService) LastUpload(ctx context.Context) (*models.Upload, error) {
	return s.uploads.Latest(ctx)
}

// History returns recent uploads, newest first.
func (s *IngestService) History(ctx context.Context, limit int) ([]*models.Upload, error) {
	return s.uploads.Recent(ctx, limit)
}

// CurrentCount returns how many assets are loaded.
func (s *IngestService) CurrentCount(ctx context.Context) (int, error) {
	return s.assets.Count(ctx)
}

func (s *IngestService) stageFile(prefix, filename string, src io.Reader) (string, error) {
	if err := os.MkdirAll(s.uploadDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create upload dir: %w", err)
	}

	path := filepath.Join(s.uploadDir, fmt.Sprintf("%s_%s", prefix, filepath.Base(filename)))
	dst, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create staged file: %w", err)
	}

	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		os.Remove(path)
		return "", fmt.Errorf("failed to write staged file: %w", err)
	}
	return path, dst.Close()
}

// fail marks the upload failed, keeping the original cause even when the
// bookkeeping update itself fails.
func (s *IngestService) fail(ctx context.Context, upload *models.Upload, cause error) error {
	upload.MarkFailed(cause.Error())
	if err := s.uploads.Update(ctx, upload); err != nil {
		s.log.Error("failed to mark upload %s failed: %v", upload.ID, err)
	}
	return cause
}

// assetFromRecord converts one parsed record to its storage row. The parsed
// goods-type field is display-only and never persisted; the penggunaan column
// stays NULL because the mapper redirects that label onto the asset name.
func assetFromRecord(r *asset.Record) models.Asset {
	return models.Asset{
		NoKib:          r.NoKib,
		NoUrut:         r.NoUrut,
		KodeLokasi:     r.KodeLokasi,
		KodeAset:       r.KodeAset,
		SatuanKerja:    r.SatuanKerja,
		NamaAsset:      r.NamaAsset,
		Nomor:          r.Nomor,
		Luas:           r.Luas,
		Tahun:          r.Tahun,
		Kecamatan:      r.Kecamatan,
		Alamat:         r.Alamat,
		StatusTanah:    r.StatusTanah,
		Catatan:        r.Catatan,
		K3:             r.K3,
		Pemetaan:       r.Pemetaan,
		TanahBangunan:  r.TanahBangunan,
		StatusCombined: r.StatusCombined,
		NilaiHarga:     r.NilaiHarga,
		AsalUsul:       r.AsalUsul,
		JumlahBidang:   r.JumlahBidang,
		Keterangan:     r.Keterangan,
		LainLain:       r.LainLain,
	}
}
