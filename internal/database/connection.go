package database

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/glebarez/sqlite"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"mistakebook/internal/config"
	"mistakebook/internal/models"
)

// Connect opens the local SQLite database at the configured path, creating
// the parent directory if needed. The driver is pure Go, so the store works
// anywhere the binary runs.
func Connect(cfg *config.Config) (*gorm.DB, error) {
	dsn := cfg.DBPath

	if !isMemoryPath(cfg.DBPath) {
		if err := os.MkdirAll(filepath.Dir(cfg.DBPath), 0o755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
		// WAL keeps reads open during writes; the busy timeout covers the
		// rare overlap between the server and the healthcheck probe.
		dsn = fmt.Sprintf("%s?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=synchronous(NORMAL)", cfg.DBPath)
	}

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Single-writer store: one connection avoids SQLITE_BUSY entirely.
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying SQL DB: %w", err)
	}
	sqlDB.SetMaxOpenConns(1)

	log.Info().Str("path", cfg.DBPath).Msg("database opened")

	return db, nil
}

func isMemoryPath(path string) bool {
	return path == ":memory:" || strings.Contains(path, "mode=memory")
}

// AutoMigrate runs automatic migrations for all models
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Photo{},
		&models.Unit{},
		&models.Setting{},
	)
}

// Size reports the current database size in bytes (page_count * page_size).
func Size(db *gorm.DB) (int64, error) {
	var pageCount, pageSize int64
	if err := db.Raw("PRAGMA page_count").Scan(&pageCount).Error; err != nil {
		return 0, err
	}
	if err := db.Raw("PRAGMA page_size").Scan(&pageSize).Error; err != nil {
		return 0, err
	}
	return pageCount * pageSize, nil
}

// IsDiskFull reports whether err is SQLite's capacity rejection
// (SQLITE_FULL, surfaced as "database or disk is full").
func IsDiskFull(err error) bool {
	if err == nil {
		return false
	}
	return strings.Contains(err.Error(), "database or disk is full")
}

// Close closes the database connection
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
