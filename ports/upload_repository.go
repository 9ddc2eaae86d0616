package ports

import (
	"context"

	"asetfilter/models"
)

// UploadRepository defines the interface for upload history operations
type UploadRepository interface {
	// Create inserts a new upload record.
	Create(ctx context.Context, upload *models.Upload) error

	// Update persists status changes on an existing record.
	Update(ctx context.Context, upload *models.Upload) error

	// Latest returns the most recent upload, nil when none exist.
	Latest(ctx context.Context) (*models.Upload, error)

	// Recent returns up to limit uploads, newest first.
	Recent(ctx context.Context, limit int) ([]*models.Upload, error)
}
