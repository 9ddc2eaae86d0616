package ui

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"path/filepath"
	"strings"

	"asetfilter/app"
	"asetfilter/models"

	"github.com/gin-gonic/gin"
)

const previewRows = 10

// uploadView is the data handed to upload.html.
type uploadView struct {
	Flash        flashMessage
	Success      bool
	Result       *app.IngestResult
	Sample       []models.Asset
	LastUpload   *models.Upload
	CurrentCount int
	MaxUploadMB  int64
}

// handleUploadPage renders the upload form with the latest import status.
func (s *Server) handleUploadPage(c *gin.Context) {
	s.renderUpload(c, uploadView{Flash: flashFromQuery(c)})
}

// handleUpload validates and ingests a posted workbook. A successful import
// replaces every asset row.
func (s *Server) handleUpload(c *gin.Context) {
	ctx := c.Request.Context()

	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, s.cfg.Upload.MaxBytes)

	file, header, err := c.Request.FormFile("file")
	if err != nil {
		var tooBig *http.MaxBytesError
		if errors.As(err, &tooBig) {
			s.flashRedirect(c, "/upload", flashError, "File terlalu besar. Maksimum 10MB.")
			return
		}
		s.renderUpload(c, uploadView{Flash: flashMessage{flashError, "Pilih file terlebih dahulu."}})
		return
	}
	defer file.Close()

	ext := strings.ToLower(filepath.Ext(header.Filename))
	if !s.cfg.Upload.AllowsExtension(ext) {
		s.renderUpload(c, uploadView{Flash: flashMessage{flashError, "File tidak valid. Hanya file .xlsx yang diperbolehkan."}})
		return
	}

	result, err := s.ingest.IngestFile(ctx, filepath.Base(header.Filename), file)
	if err != nil {
		log.Printf("[Upload] Ingest of %s failed: %v", header.Filename, err)
		s.renderUpload(c, uploadView{Flash: flashMessage{flashError, "Error: " + err.Error()}})
		return
	}

	sample, err := s.ingest.Preview(ctx, previewRows)
	if err != nil {
		log.Printf("[Upload] Failed to load preview: %v", err)
	}

	s.renderUpload(c, uploadView{
		Flash: flashMessage{
			Level:   flashSuccess,
			Message: fmt.Sprintf("File berhasil diupload! %d data berhasil diproses.", result.Stats.ValidRows),
		},
		Success: true,
		Result:  result,
		Sample:  sample,
	})
}

// renderUpload decorates the view with the shared footer data and renders it.
func (s *Server) renderUpload(c *gin.Context, view uploadView) {
	ctx := c.Request.Context()

	last, err := s.ingest.LastUpload(ctx)
	if err != nil {
		log.Printf("[Upload] Failed to load upload history: %v", err)
	}
	count, err := s.ingest.CurrentCount(ctx)
	if err != nil {
		log.Printf("[Upload] Failed to count assets: %v", err)
	}

	view.LastUpload = last
	view.CurrentCount = count
	view.MaxUploadMB = s.cfg.Upload.MaxBytes >> 20
	s.renderTemplate(c, "upload.html", view)
}

// handleClearData wipes the asset table.
func (s *Server) handleClearData(c *gin.Context) {
	count, err := s.ingest.ClearAssets(c.Request.Context())
	if err != nil {
		log.Printf("[UI] Failed to clear assets: %v", err)
		s.flashRedirect(c, "/", flashError, "Error: "+err.Error())
		return
	}
	s.flashRedirect(c, "/", flashSuccess, fmt.Sprintf("%d data berhasil dihapus.", count))
}
