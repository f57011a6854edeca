// Package config provides configuration management functionality.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	DataDir             string // Base directory for the profile store (always absolute)
	LogLevel            string
	Port                int
	DevMode             bool
	MaintenanceSchedule string
	Store               string // "sqlite" or "memory"
	Backup              *BackupConfig
}

// Profile store kinds
const (
	StoreSQLite = "sqlite"
	StoreMemory = "memory"
)

// BackupConfig holds the off-site snapshot settings. An empty bucket disables backups.
type BackupConfig struct {
	Bucket        string
	Endpoint      string
	Region        string
	AccessKey     string
	SecretKey     string
	Schedule      string
	RetentionDays int
}

// Enabled reports whether backups are configured
func (b *BackupConfig) Enabled() bool {
	return b != nil && b.Bucket != ""
}

// DatabasePath is the profile store location
func (c *Config) DatabasePath() string {
	return filepath.Join(c.DataDir, "profiles.db")
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	dataDir := getEnv("FINWELL_DATA_DIR", "./data")

	absDataDir, err := filepath.Abs(dataDir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve data directory path: %w", err)
	}

	if err := os.MkdirAll(absDataDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	cfg := &Config{
		DataDir:             absDataDir,
		Port:                getEnvAsInt("FINWELL_PORT", 8010),
		DevMode:             getEnvAsBool("DEV_MODE", false),
		LogLevel:            getEnv("LOG_LEVEL", "info"),
		MaintenanceSchedule: getEnv("FINWELL_MAINTENANCE_SCHEDULE", "0 0 3 * * *"),
		Store:               getEnv("FINWELL_STORE", StoreSQLite),
		Backup:              loadBackupConfig(),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks if required configuration is present
func (c *Config) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port %d", c.Port)
	}
	if c.MaintenanceSchedule == "" {
		return errors.New("maintenance schedule is required")
	}
	if c.Store != StoreSQLite && c.Store != StoreMemory {
		return fmt.Errorf("unknown profile store %q", c.Store)
	}

	b := c.Backup
	if b == nil {
		return nil
	}
	partial := b.Endpoint != "" || b.AccessKey != "" || b.SecretKey != ""
	if !b.Enabled() {
		if partial {
			return errors.New("backup credentials set without FINWELL_BACKUP_BUCKET")
		}
		return nil
	}
	if b.AccessKey == "" || b.SecretKey == "" {
		return errors.New("FINWELL_BACKUP_ACCESS_KEY and FINWELL_BACKUP_SECRET_KEY are required when backups are enabled")
	}
	if b.RetentionDays < 0 {
		return fmt.Errorf("invalid backup retention %d", b.RetentionDays)
	}

	return nil
}

// Helper functions
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

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func loadBackupConfig() *BackupConfig {
	return &BackupConfig{
		Bucket:        getEnv("FINWELL_BACKUP_BUCKET", ""),
		Endpoint:      getEnv("FINWELL_BACKUP_ENDPOINT", ""),
		Region:        getEnv("FINWELL_BACKUP_REGION", "auto"),
		AccessKey:     getEnv("FINWELL_BACKUP_ACCESS_KEY", ""),
		SecretKey:     getEnv("FINWELL_BACKUP_SECRET_KEY", ""),
		Schedule:      getEnv("FINWELL_BACKUP_SCHEDULE", "0 30 3 * * *"),
		RetentionDays: getEnvAsInt("FINWELL_BACKUP_RETENTION_DAYS", 30),
	}
}
