package models

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
)

// UploadStatus tracks an import through its lifecycle.
type UploadStatus string

const (
	UploadStatusProcessing UploadStatus = "processing"
	UploadStatusSuccess    UploadStatus = "success"
	UploadStatusFailed     UploadStatus = "failed"
)

// Upload is one row of upload history. Every attempted import gets a row;
// the row outlives the staged file.
type Upload struct {
	ID           uuid.UUID      `json:"id" db:"id"`
	Filename     string         `json:"filename" db:"filename"`
	UploadedAt   time.Time      `json:"uploaded_at" db:"uploaded_at"`
	RecordsCount int            `json:"records_count" db:"records_count"`
	Status       UploadStatus   `json:"status" db:"status"`
	ErrorMessage sql.NullString `json:"error,omitempty" db:"error_message"`
}

// NewUpload creates a processing-state upload record for the given original
// filename.
func NewUpload(filename string) *Upload {
	return &Upload{
		ID:         uuid.New(),
		Filename:   filename,
		UploadedAt: time.Now(),
		Status:     UploadStatusProcessing,
	}
}

// MarkSuccess records a completed import of count rows.
func (u *Upload) MarkSuccess(count int) {
	u.Status = UploadStatusSuccess
	u.RecordsCount = count
}

// MarkFailed records a failed import with its cause.
func (u *Upload) MarkFailed(msg string) {
	u.Status = UploadStatusFailed
	u.ErrorMessage = sql.NullString{String: msg, Valid: msg != ""}
}

// Error returns the failure message, empty when the upload did not fail.
func (u *Upload) Error() string {
	if u.ErrorMessage.Valid {
		return u.ErrorMessage.String
	}
	return ""
}
