package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"asetfilter/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Database  DatabaseConfig `validate:"required"`
	Server    ServerConfig   `validate:"required"`
	Upload    UploadConfig   `validate:"required"`
	Ingest    IngestConfig   `validate:"required"`
	Logging   LoggingConfig
	Profiling ProfilingConfig
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	URL      string `validate:"required"`
	User     string
	Password string
	Name     string
	Host     string
	Port     int
	SSLMode  string
}

// ServerConfig holds web server settings
type ServerConfig struct {
	Port        string `validate:"required"`
	GinMode     string
	RowsPerPage int
}

// UploadConfig holds upload handling settings
type UploadConfig struct {
	Dir               string
	MaxBytes          int64
	AllowedExtensions []string
}

// IngestConfig holds workbook parsing settings
type IngestConfig struct {
	TargetSheet string
}

// LoggingConfig holds log output settings
type LoggingConfig struct {
	Level string
}

// ProfilingConfig holds performance profiling settings
type ProfilingConfig struct {
	Port    string
	Enabled bool
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	config := &Config{}

	dbConfig, err := loadDatabaseConfig()
	if err != nil {
		return nil, errors.Wrap(err, "failed to load database configuration")
	}
	config.Database = *dbConfig

	config.Server = *loadServerConfig()
	config.Upload = *loadUploadConfig()
	config.Ingest = *loadIngestConfig()
	config.Logging = *loadLoggingConfig()
	config.Profiling = *loadProfilingConfig()

	if err := validateConfig(config); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}

	return config, nil
}

func loadDatabaseConfig() (*DatabaseConfig, error) {
	cfg := &DatabaseConfig{
		URL:      os.Getenv("DATABASE_URL"),
		User:     getEnvOrDefault("DB_USER", ""),
		Password: getEnvOrDefault("DB_PASS", ""),
		Name:     getEnvOrDefault("DB_NAME", ""),
		Host:     getEnvOrDefault("DB_HOST", ""),
		Port:     getEnvIntOrDefault("DB_PORT", 5432),
		SSLMode:  getEnvOrDefault("SSL_MODE", "disable"),
	}

	// Assemble a DSN from the parts when no full URL is given.
	if cfg.URL == "" && cfg.Host != "" && cfg.Name != "" {
		cfg.URL = fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
			cfg.User, cfg.Password, cfg.Host, cfg.Port, cfg.Name, cfg.SSLMode)
	}

	if cfg.URL == "" {
		return nil, errors.ConfigInvalid("DATABASE_URL is required")
	}

	return cfg, nil
}

func loadServerConfig() *ServerConfig {
	return &ServerConfig{
		Port:        getEnvOrDefault("PORT", "8080"),
		GinMode:     getEnvOrDefault("GIN_MODE", "debug"),
		RowsPerPage: getEnvIntOrDefault("ROWS_PER_PAGE", 20),
	}
}

func loadUploadConfig() *UploadConfig {
	exts := strings.Split(getEnvOrDefault("UPLOAD_EXTENSIONS", ".xlsx"), ",")
	for i := range exts {
		exts[i] = strings.TrimSpace(strings.ToLower(exts[i]))
	}

	return &UploadConfig{
		Dir:               getEnvOrDefault("UPLOAD_DIR", "uploads"),
		MaxBytes:          getEnvInt64OrDefault("UPLOAD_MAX_BYTES", 10<<20),
		AllowedExtensions: exts,
	}
}

func loadIngestConfig() *IngestConfig {
	return &IngestConfig{
		TargetSheet: getEnvOrDefault("TARGET_SHEET", "A"),
	}
}

func loadLoggingConfig() *LoggingConfig {
	return &LoggingConfig{
		Level: getEnvOrDefault("LOG_LEVEL", "INFO"),
	}
}

func loadProfilingConfig() *ProfilingConfig {
	return &ProfilingConfig{
		Port:    getEnvOrDefault("PPROF_PORT", "6060"),
		Enabled: getEnvBoolOrDefault("PPROF_ENABLED", false),
	}
}

func validateConfig(config *Config) error {
	if config.Database.URL == "" {
		return errors.ConfigInvalid("database URL is required")
	}
	if config.Server.Port == "" {
		return errors.ConfigInvalid("server port is required")
	}
	if config.Server.RowsPerPage < 1 {
		return errors.ConfigInvalid("rows per page must be positive")
	}
	if config.Upload.MaxBytes < 1 {
		return errors.ConfigInvalid("upload size limit must be positive")
	}
	if config.Ingest.TargetSheet == "" {
		return errors.ConfigInvalid("target sheet is required")
	}
	return nil
}

// AllowsExtension reports whether the upload config accepts the given file
// extension (compared case-insensitively, leading dot required).
func (u *UploadConfig) AllowsExtension(ext string) bool {
	ext = strings.ToLower(ext)
	for _, allowed := range u.AllowedExtensions {
		if ext == allowed {
			return true
		}
	}
	return false
}

// Helper functions for environment variable parsing
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvInt64OrDefault(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvBoolOrDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}
