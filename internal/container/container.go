package container

import (
	"context"
	"fmt"
	"log"

	"asetfilter/adapters/postgres"
	"asetfilter/app"
	"asetfilter/internal/config"
	"asetfilter/ports"

	"github.com/jmoiron/sqlx"
)

// Container holds all application dependencies and manages their lifecycle
type Container struct {
	Config *config.Config

	// Infrastructure
	DB *sqlx.DB

	// Repositories (data access layer)
	AssetRepo  ports.AssetRepository
	UploadRepo ports.UploadRepository

	// Services
	Assets  *app.AssetService
	Ingest  *app.IngestService
	Options *app.OptionsService
	Stats   *app.StatsService
}

// New creates a new dependency injection container
func New(cfg *config.Config) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}

	return &Container{Config: cfg}, nil
}

// InitWithDatabase initializes components that require database access
func (c *Container) InitWithDatabase(db *sqlx.DB) error {
	if db == nil {
		return fmt.Errorf("database connection cannot be nil")
	}

	c.DB = db

	if err := db.Ping(); err != nil {
		return fmt.Errorf("database connection test failed: %w", err)
	}

	c.initRepositories()
	c.initServices()

	log.Printf("Container initialized successfully with database connection")
	return nil
}

// initRepositories initializes data access repositories
func (c *Container) initRepositories() {
	c.AssetRepo = postgres.NewAssetRepository(c.DB)
	c.UploadRepo = postgres.NewUploadRepository(c.DB)
}

// initServices wires the application services onto the repositories
func (c *Container) initServices() {
	c.Assets = app.NewAssetService(c.AssetRepo, c.Config.Server.RowsPerPage)
	c.Ingest = app.NewIngestService(c.AssetRepo, c.UploadRepo, c.Config.Upload.Dir, c.Config.Ingest.TargetSheet)
	c.Options = app.NewOptionsService(c.AssetRepo)
	c.Stats = app.NewStatsService(c.AssetRepo)
}

// Shutdown gracefully shuts down all components
func (c *Container) Shutdown(ctx context.Context) error {
	if c.DB != nil {
		return c.DB.Close()
	}
	return nil
}
