package migration

import (
	"context"
	"fmt"

	"asetfilter/internal/errors"

	"github.com/jmoiron/sqlx"
)

// Migrator defines the interface for database migration operations
type Migrator interface {
	Run(ctx context.Context, db *sqlx.DB) error
	Version() string
}

// MigrationRunner handles database schema migrations
type MigrationRunner struct {
	version string
}

// NewRunner creates a new migration runner
func NewRunner() *MigrationRunner {
	return &MigrationRunner{
		version: "1.0.0",
	}
}

// Version returns the migration version
func (r *MigrationRunner) Version() string {
	return r.version
}

// Run executes all database migrations in the correct order
func (r *MigrationRunner) Run(ctx context.Context, db *sqlx.DB) error {
	if err := r.createAssetsTable(ctx, db); err != nil {
		return errors.Wrap(err, "failed to create assets table")
	}

	if err := r.createUploadHistoryTable(ctx, db); err != nil {
		return errors.Wrap(err, "failed to create upload_history table")
	}

	if err := r.createIndexes(ctx, db); err != nil {
		return errors.Wrap(err, "failed to create indexes")
	}

	return nil
}

func (r *MigrationRunner) createAssetsTable(ctx context.Context, db *sqlx.DB) error {
	_, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS assets (
			id BIGSERIAL PRIMARY KEY,
			no_kib VARCHAR(50),
			no_urut INTEGER,
			kode_lokasi VARCHAR(50),
			kode_aset VARCHAR(100),
			satuan_kerja VARCHAR(200),
			nama_asset VARCHAR(500) NOT NULL,
			nomor VARCHAR(100),
			luas DOUBLE PRECISION,
			tahun INTEGER,
			kecamatan VARCHAR(100),
			alamat VARCHAR(500),
			status_tanah VARCHAR(100),
			catatan VARCHAR(200),
			k3 VARCHAR(200),
			pemetaan VARCHAR(100),
			tanah_bangunan VARCHAR(100),
			status_combined VARCHAR(500) NOT NULL DEFAULT '',
			nilai_harga DOUBLE PRECISION,
			asal_usul VARCHAR(100),
			penggunaan VARCHAR(200),
			jumlah_bidang INTEGER,
			keterangan TEXT,
			lain_lain TEXT,
			created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
		)
	`)
	return err
}

func (r *MigrationRunner) createUploadHistoryTable(ctx context.Context, db *sqlx.DB) error {
	_, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS upload_history (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			filename VARCHAR(255) NOT NULL,
			uploaded_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
			records_count INTEGER NOT NULL DEFAULT 0,
			status VARCHAR(50) NOT NULL DEFAULT 'processing',
			error_message TEXT
		)
	`)
	return err
}

func (r *MigrationRunner) createIndexes(ctx context.Context, db *sqlx.DB) error {
	indexes := []string{
		"CREATE INDEX IF NOT EXISTS idx_assets_nama_asset ON assets(nama_asset)",
		"CREATE INDEX IF NOT EXISTS idx_assets_kecamatan ON assets(kecamatan)",
		"CREATE INDEX IF NOT EXISTS idx_assets_satuan_kerja ON assets(satuan_kerja)",
		"CREATE INDEX IF NOT EXISTS idx_assets_status_combined ON assets(status_combined)",
		"CREATE INDEX IF NOT EXISTS idx_assets_luas ON assets(luas)",
		"CREATE INDEX IF NOT EXISTS idx_uploads_uploaded_at ON upload_history(uploaded_at DESC)",
	}

	for _, idxSQL := range indexes {
		if _, err := db.ExecContext(ctx, idxSQL); err != nil {
			// Log but don't fail on index creation errors
			fmt.Printf("Warning: failed to create index: %v\n", err)
		}
	}

	return nil
}
