package postgres

import (
	"context"
	"database/sql"
	"errors"

	"asetfilter/models"
	"asetfilter/ports"

	"github.com/jmoiron/sqlx"
)

const uploadColumns = `id, filename, uploaded_at, records_count, status, error_message`

// UploadRepositoryImpl implements UploadRepository for PostgreSQL
type UploadRepositoryImpl struct {
	db *sqlx.DB
}

// NewUploadRepository creates a new PostgreSQL upload history repository
func NewUploadRepository(db *sqlx.DB) ports.UploadRepository {
	return &UploadRepositoryImpl{db: db}
}

// Create inserts a new upload record.
func (r *UploadRepositoryImpl) Create(ctx context.Context, upload *models.Upload) error {
	_, err := r.db.NamedExecContext(ctx, `
		INSERT INTO upload_history (id, filename, uploaded_at, records_count, status, error_message)
		VALUES (:id, :filename, :uploaded_at, :records_count, :status, :error_message)
	`, upload)
	return err
}

// Update persists status changes on an existing record.
func (r *UploadRepositoryImpl) Update(ctx context.Context, upload *models.Upload) error {
	_, err := r.db.NamedExecContext(ctx, `
		UPDATE upload_history
		SET records_count = :records_count, status = :status, error_message = :error_message
		WHERE id = :id
	`, upload)
	return err
}

// Latest returns the most recent upload, nil when history is empty.
func (r *UploadRepositoryImpl) Latest(ctx context.Context) (*models.Upload, error) {
	var upload models.Upload
	err := r.db.GetContext(ctx, &upload, `
		SELECT `+uploadColumns+`
		FROM upload_history
		ORDER BY uploaded_at DESC
		LIMIT 1
	`)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &upload, nil
}

// Recent returns up to limit uploads, newest first.
func (r *UploadRepositoryImpl) Recent(ctx context.Context, limit int) ([]*models.Upload, error) {
	var uploads []*models.Upload
	err := r.db.SelectContext(ctx, &uploads, `
		SELECT `+uploadColumns+`
		FROM upload_history
		ORDER BY uploaded_at DESC
		LIMIT $1
	`, limit)
	return uploads, err
}
