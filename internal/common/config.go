package common

import (
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration
type Config struct {
	Database DatabaseConfig
	Ingest   IngestConfig
	Metrics  MetricsConfig
	Log      LogConfig
}

// DatabaseConfig holds database-related configuration.
// DSN selects the backend: empty means a local SQLite file at Path,
// a postgres:// URL selects PostgreSQL via pgx.
type DatabaseConfig struct {
	DSN         string
	Path        string
	DialTimeout time.Duration
}

// IngestConfig holds ingestion-related configuration
type IngestConfig struct {
	RawDir     string
	ExportPath string
}

// MetricsConfig holds the optional Prometheus listener configuration
type MetricsConfig struct {
	Addr string
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string
	Format string
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	return &Config{
		Database: DatabaseConfig{
			DSN:         getEnv("DB_URL", ""),
			Path:        getEnv("INCIDENT_DB_PATH", "data/database/incidentes.db"),
			DialTimeout: getEnvAsDuration("DB_DIAL_TIMEOUT", 3*time.Second),
		},
		Ingest: IngestConfig{
			RawDir:     getEnv("INCIDENT_RAW_DIR", "data/raw"),
			ExportPath: getEnv("INCIDENT_EXPORT_PATH", ""),
		},
		Metrics: MetricsConfig{
			Addr: getEnv("METRICS_ADDR", ""),
		},
		Log: LogConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
	}
}

// Helper functions for environment variable parsing
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// Validate validates the loaded configuration
func (c *Config) Validate() error {
	if c.Database.DSN == "" && c.Database.Path == "" {
		return NewAppError("CONFIG_ERROR", "one of DB_URL or INCIDENT_DB_PATH is required", ErrInvalidInput)
	}
	if c.Ingest.RawDir == "" {
		return NewAppError("CONFIG_ERROR", "INCIDENT_RAW_DIR is required", ErrInvalidInput)
	}
	return nil
}
