package ui

import (
	"html/template"
	"io/fs"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gomarkdown/markdown"
	mdhtml "github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"
)

// handleStats serves the dashboard aggregates as JSON.
func (s *Server) handleStats(c *gin.Context) {
	out, err := s.stats.Dashboard(c.Request.Context())
	if err != nil {
		log.Printf("[API] Failed to aggregate stats: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to aggregate statistics"})
		return
	}
	c.JSON(http.StatusOK, out)
}

type panduanView struct {
	Flash   flashMessage
	Content template.HTML
}

// handlePanduan renders the workbook format guide from the embedded markdown.
func (s *Server) handlePanduan(c *gin.Context) {
	source, err := fs.ReadFile(s.templatesFS, "panduan.md")
	if err != nil {
		log.Printf("[UI] Guide source missing: %v", err)
		s.renderErrorPage(c, http.StatusNotFound)
		return
	}

	p := parser.NewWithExtensions(parser.CommonExtensions | parser.AutoHeadingIDs)
	renderer := mdhtml.NewRenderer(mdhtml.RendererOptions{Flags: mdhtml.CommonFlags})
	content := markdown.Render(p.Parse(source), renderer)

	s.renderTemplate(c, "panduan.html", panduanView{
		Flash:   flashFromQuery(c),
		Content: template.HTML(content),
	})
}

// handleNotFound renders the styled 404 page.
func (s *Server) handleNotFound(c *gin.Context) {
	s.renderErrorPage(c, http.StatusNotFound)
}
