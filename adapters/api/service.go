package api

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"asetfilter/app"
	"asetfilter/internal/config"
	"asetfilter/internal/container"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
)

// Service is the headless JSON API for machine consumers. It shares the
// repositories and services with the web UI but speaks only JSON.
type Service struct {
	router  *chi.Mux
	cfg     *config.Config
	db      *sqlx.DB
	assets  *app.AssetService
	options *app.OptionsService
	stats   *app.StatsService
}

// NewService wires the API onto an initialized container.
func NewService(appContainer *container.Container) (*Service, error) {
	if appContainer == nil {
		return nil, fmt.Errorf("container cannot be nil")
	}

	s := &Service{
		router:  chi.NewRouter(),
		cfg:     appContainer.Config,
		db:      appContainer.DB,
		assets:  appContainer.Assets,
		options: appContainer.Options,
		stats:   appContainer.Stats,
	}

	s.setupMiddleware()
	s.setupRoutes()

	return s, nil
}

// setupMiddleware configures HTTP middleware
func (s *Service) setupMiddleware() {
	s.router.Use(middleware.Logger)
	s.router.Use(middleware.Recoverer)
	s.router.Use(middleware.Compress(5))
}

// setupRoutes configures the API routes
func (s *Service) setupRoutes() {
	s.router.Get("/healthz", s.handleHealth)
	s.router.Get("/api/assets", s.handleAssets)
	s.router.Get("/api/assets/options", s.handleOptions)
	s.router.Get("/api/stats", s.handleStats)
}

// Start starts the HTTP server
func (s *Service) Start(addr string) error {
	log.Printf("Starting AsetFilter API on %s", addr)
	return http.ListenAndServe(addr, s.router)
}

// Router exposes the handler for tests and embedding.
func (s *Service) Router() http.Handler {
	return s.router
}

// handleHealth reports process and database health.
func (s *Service) handleHealth(w http.ResponseWriter, r *http.Request) {
	if s.db != nil {
		if err := s.db.PingContext(r.Context()); err != nil {
			log.Printf("[API] Health check failed: %v", err)
			respondError(w, http.StatusServiceUnavailable, "database unreachable")
			return
		}
	}
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleAssets returns one page of assets matching the query parameters.
func (s *Service) handleAssets(w http.ResponseWriter, r *http.Request) {
	query := listQueryFromURL(r.URL.Query())
	query.Normalize(s.cfg.Server.RowsPerPage)

	page, err := s.assets.Page(r.Context(), query)
	if err != nil {
		log.Printf("[API] Failed to list assets: %v", err)
		respondError(w, http.StatusInternalServerError, "failed to list assets")
		return
	}

	respondJSON(w, http.StatusOK, page)
}

// handleOptions returns the distinct filter choices currently in the data.
func (s *Service) handleOptions(w http.ResponseWriter, r *http.Request) {
	opts, err := s.options.Options(r.Context())
	if err != nil {
		log.Printf("[API] Failed to load filter options: %v", err)
		respondError(w, http.StatusInternalServerError, "failed to load filter options")
		return
	}

	respondJSON(w, http.StatusOK, opts)
}

// handleStats returns the dashboard aggregates.
func (s *Service) handleStats(w http.ResponseWriter, r *http.Request) {
	out, err := s.stats.Dashboard(r.Context())
	if err != nil {
		log.Printf("[API] Failed to aggregate stats: %v", err)
		respondError(w, http.StatusInternalServerError, "failed to aggregate statistics")
		return
	}

	respondJSON(w, http.StatusOK, out)
}

type errorResponse struct {
	Error string `json:"error"`
}

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("[API] Failed to encode response: %v", err)
	}
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, errorResponse{Error: message})
}
