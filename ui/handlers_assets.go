package ui

import (
	"bytes"
	"fmt"
	"log"
	"net/http"
	"time"

	"asetfilter/adapters/excel"
	"asetfilter/models"

	"github.com/gin-gonic/gin"
)

const excelContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// indexView is the data handed to index.html.
type indexView struct {
	Flash     flashMessage
	Options   *models.FilterOptions
	Filter    models.AssetFilter
	Page      *models.AssetPage
	SortBy    string
	SortOrder string
	RowStart  int
	PageQuery string
	SortQuery string
}

// handleIndex renders the filter form and the current page of results.
func (s *Server) handleIndex(c *gin.Context) {
	ctx := c.Request.Context()

	query := listQueryFromValues(c.Request.URL.Query())
	query.Normalize(s.cfg.Server.RowsPerPage)

	options, err := s.options.Options(ctx)
	if err != nil {
		log.Printf("[UI] Failed to load filter options: %v", err)
		s.renderErrorPage(c, http.StatusInternalServerError)
		return
	}

	page, err := s.assets.Page(ctx, query)
	if err != nil {
		log.Printf("[UI] Failed to query assets: %v", err)
		s.renderErrorPage(c, http.StatusInternalServerError)
		return
	}

	values := c.Request.URL.Query()
	s.renderTemplate(c, "index.html", indexView{
		Flash:     flashFromQuery(c),
		Options:   options,
		Filter:    query.Filter,
		Page:      page,
		SortBy:    query.SortBy,
		SortOrder: query.SortOrder,
		RowStart:  query.Offset() + 1,
		PageQuery: linkQuery(values, "page"),
		SortQuery: linkQuery(values, "page", "sort", "order"),
	})
}

// handleFilter serves the AJAX filter endpoint. Failures are reported inside
// the envelope so the page script can surface them.
func (s *Server) handleFilter(c *gin.Context) {
	query := listQueryFromValues(requestValues(c))

	page, err := s.assets.Page(c.Request.Context(), query)
	if err != nil {
		log.Printf("[API] Failed to filter assets: %v", err)
		c.JSON(http.StatusOK, gin.H{"success": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":        true,
		"assets":         page.Assets,
		"total_count":    page.TotalCount,
		"filtered_count": page.FilteredCount,
		"page":           page.Page,
		"total_pages":    page.TotalPages,
		"has_next":       page.HasNext,
		"has_prev":       page.HasPrev,
	})
}

// handleExportExcel sends the current filter selection as a styled workbook.
func (s *Server) handleExportExcel(c *gin.Context) {
	filter := filterFromValues(c.Request.URL.Query())

	assets, err := s.assets.Export(c.Request.Context(), filter)
	if err != nil {
		log.Printf("[Export] Failed to query assets: %v", err)
		s.flashRedirect(c, "/", flashError, "Error exporting Excel: "+err.Error())
		return
	}
	if len(assets) == 0 {
		s.flashRedirect(c, "/", flashWarning, "Tidak ada data untuk diexport.")
		return
	}

	var buf bytes.Buffer
	if err := s.exporter.Write(&buf, assets); err != nil {
		log.Printf("[Export] Failed to build workbook: %v", err)
		s.flashRedirect(c, "/", flashError, "Error exporting Excel: "+err.Error())
		return
	}

	filename := excel.ExportFilename(time.Now())
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s\"", filename))
	c.Data(http.StatusOK, excelContentType, buf.Bytes())
}
