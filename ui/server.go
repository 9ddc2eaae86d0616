package ui

import (
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"log"
	"net/http"
	"strings"

	"asetfilter/adapters/excel"
	"asetfilter/app"
	"asetfilter/internal/config"
	"asetfilter/internal/container"

	"github.com/gin-gonic/gin"
)

// Server wraps the gin engine, the parsed templates, and the application
// services the handlers call into.
type Server struct {
	router        *gin.Engine
	templates     *template.Template
	templatesFS   fs.FS
	embeddedFiles embed.FS

	cfg      *config.Config
	assets   *app.AssetService
	ingest   *app.IngestService
	options  *app.OptionsService
	stats    *app.StatsService
	exporter *excel.Exporter
}

// NewServer creates a new web server instance. Templates and routes are wired
// up in Initialize once the container is ready.
func NewServer(embeddedFiles embed.FS) *Server {
	s := &Server{
		router:        gin.New(),
		embeddedFiles: embeddedFiles,
	}
	s.router.Use(gin.Logger(), gin.CustomRecovery(func(c *gin.Context, err any) {
		log.Printf("[Recovery] panic serving %s: %v", c.Request.URL.Path, err)
		s.renderErrorPage(c, http.StatusInternalServerError)
	}))
	return s
}

// Initialize parses templates, registers middleware and routes, and wires
// the handlers to the container services.
func (s *Server) Initialize(appContainer *container.Container) error {
	if appContainer == nil {
		return fmt.Errorf("container cannot be nil")
	}

	s.cfg = appContainer.Config
	s.assets = appContainer.Assets
	s.ingest = appContainer.Ingest
	s.options = appContainer.Options
	s.stats = appContainer.Stats
	s.exporter = excel.NewExporter()

	funcMap := template.FuncMap{
		"add": func(a, b int) int { return a + b },
		"sub": func(a, b int) int { return a - b },
		"mul": func(a, b float64) float64 { return a * b },
		"max": func(a, b float64) float64 {
			if a > b {
				return a
			}
			return b
		},
		"until": func(n int) []int {
			res := make([]int, n)
			for i := range res {
				res[i] = i
			}
			return res
		},
		// Format large counts as e.g. "12k" for 12000.
		// Accepts int/int64/float64 to tolerate JSON + Go struct inputs.
		"kfmt": func(v interface{}) string {
			switch t := v.(type) {
			case int:
				return fmt.Sprintf("%dk", t/1000)
			case int64:
				return fmt.Sprintf("%dk", t/1000)
			case float64:
				return fmt.Sprintf("%dk", int64(t/1000))
			default:
				return "—"
			}
		},
		"formatLuas": formatLuas,
		"rupiah":     rupiah,
		"inList": func(list []string, v string) bool {
			for _, item := range list {
				if item == v {
					return true
				}
			}
			return false
		},
		"upper": strings.ToUpper,
	}

	// The root main.go embeds ui/templates; package-level tests embed the
	// same tree rooted at templates.
	templatesFS, err := subFS(s.embeddedFiles, "ui/templates", "templates")
	if err != nil {
		log.Printf("[TemplateInit] Error locating templates filesystem: %v", err)
		return fmt.Errorf("failed to locate templates filesystem: %w", err)
	}
	s.templatesFS = templatesFS

	s.templates = template.New("").Funcs(funcMap)

	files1, err := fs.Glob(templatesFS, "*.html")
	if err != nil {
		return fmt.Errorf("failed to glob root templates: %w", err)
	}
	files2, err := fs.Glob(templatesFS, "**/*.html")
	if err != nil {
		return fmt.Errorf("failed to glob nested templates: %w", err)
	}

	files := append(files1, files2...)
	log.Printf("[TemplateInit] Found %d template files: %v", len(files), files)

	for _, file := range files {
		content, err := fs.ReadFile(templatesFS, file)
		if err != nil {
			return fmt.Errorf("failed to read template %s: %w", file, err)
		}
		if _, err := s.templates.New(file).Parse(string(content)); err != nil {
			return fmt.Errorf("failed to parse template %s: %w", file, err)
		}
	}

	s.setupMiddleware()
	s.setupRoutes()

	return nil
}

// subFS returns the first root that resolves inside the embedded tree.
func subFS(fsys fs.FS, roots ...string) (fs.FS, error) {
	for _, root := range roots {
		sub, err := fs.Sub(fsys, root)
		if err != nil {
			continue
		}
		if entries, err := fs.ReadDir(sub, "."); err == nil && len(entries) > 0 {
			return sub, nil
		}
	}
	return nil, fmt.Errorf("none of %v found in embedded filesystem", roots)
}

// setupMiddleware configures static file serving from the embedded filesystem.
func (s *Server) setupMiddleware() {
	staticFS, err := subFS(s.embeddedFiles, "ui/static", "static")
	if err != nil {
		log.Printf("[Static] Error locating static filesystem: %v", err)
		return
	}
	log.Printf("[Static] Serving static files from embedded FS at /static")
	s.router.StaticFS("/static", http.FS(staticFS))
}

// setupRoutes configures the application routes.
func (s *Server) setupRoutes() {
	s.router.GET("/", s.handleIndex)
	s.router.POST("/filter", s.handleFilter)
	s.router.GET("/export-excel", s.handleExportExcel)

	s.router.GET("/upload", s.handleUploadPage)
	s.router.POST("/upload", s.handleUpload)
	s.router.POST("/clear-data", s.handleClearData)

	s.router.GET("/api/stats", s.handleStats)
	s.router.GET("/panduan", s.handlePanduan)

	s.router.NoRoute(s.handleNotFound)
}

// Start starts the web server.
func (s *Server) Start(addr string) error {
	log.Printf("Starting AsetFilter UI on http://%s", addr)
	return s.router.Run(addr)
}

// Router exposes the underlying engine for embedding in other servers.
func (s *Server) Router() http.Handler {
	return s.router
}

// renderTemplate renders a template by name with the given data.
func (s *Server) renderTemplate(c *gin.Context, templateName string, data interface{}) {
	c.Header("Content-Type", "text/html; charset=utf-8")
	if err := s.templates.ExecuteTemplate(c.Writer, templateName, data); err != nil {
		log.Printf("[Render] Error rendering template %s: %v", templateName, err)
		c.AbortWithStatus(http.StatusInternalServerError)
	}
}

// renderErrorPage renders the styled error page for the given status.
func (s *Server) renderErrorPage(c *gin.Context, status int) {
	name := "500.html"
	if status == http.StatusNotFound {
		name = "404.html"
	}
	if s.templates == nil || s.templates.Lookup(name) == nil {
		c.AbortWithStatus(status)
		return
	}
	c.Status(status)
	c.Header("Content-Type", "text/html; charset=utf-8")
	if err := s.templates.ExecuteTemplate(c.Writer, name, nil); err != nil {
		log.Printf("[Render] Error rendering template %s: %v", name, err)
	}
	c.Abort()
}
