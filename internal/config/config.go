package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	// Server configuration
	Port string

	// Database configuration
	DBPath string

	// StorageQuotaMB caps the database size in megabytes. Zero disables the
	// cap; the filesystem then remains the only limit.
	StorageQuotaMB float64

	// Logging configuration
	LogLevel string
}

// Load loads configuration from a .env file (if present) and environment variables
func Load() (*Config, error) {
	// A missing .env file is fine; env vars alone are enough.
	_ = godotenv.Load()

	cfg := &Config{
		Port:           getEnv("PORT", "3000"),
		DBPath:         getEnv("DB_PATH", "data/mistakebook.db"),
		StorageQuotaMB: getEnvAsFloat("STORAGE_QUOTA_MB", 0),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
	}

	if cfg.DBPath == "" {
		return nil, fmt.Errorf("DB_PATH is required")
	}
	if cfg.StorageQuotaMB < 0 {
		return nil, fmt.Errorf("STORAGE_QUOTA_MB must not be negative")
	}

	return cfg, nil
}

// QuotaBytes returns the configured storage quota in bytes, zero if uncapped.
func (c *Config) QuotaBytes() int64 {
	return int64(c.StorageQuotaMB * 1024 * 1024)
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsFloat gets an environment variable as a float or returns a default value
func getEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		return defaultValue
	}
	return value
}
