package services

import (
	"context"
	"errors"
	"sync"
	"time"

	"gorm.io/gorm"

	"mistakebook/internal/models"
)

// SettingsService is the configuration handle for the settings singleton.
// The record is materialized lazily on first read and cached; updates and
// resets refresh the cache from the persisted row. Reload discards the cache
// explicitly for callers that changed the database out of band.
type SettingsService struct {
	db *gorm.DB

	mu     sync.RWMutex
	cached *models.Setting
}

// SettingsPatch is a partial settings update. Nil fields are left unchanged;
// the identifying key is never touched.
type SettingsPatch struct {
	Language            *string             `json:"language"`
	DisplayMode         *string             `json:"displayMode"`
	GridColumns         *models.GridColumns `json:"gridColumns"`
	ShowFileSize        *bool               `json:"showFileSize"`
	ConfirmBeforeDelete *bool               `json:"confirmBeforeDelete"`
	MaxFileSize         *float64            `json:"maxFileSize"`
	CompressionQuality  *float64            `json:"compressionQuality"`
	LastBackupDate      *time.Time          `json:"lastBackupDate"`
}

// NewSettingsService creates a settings service over the given database.
func NewSettingsService(db *gorm.DB) *SettingsService {
	return &SettingsService{db: db}
}

// DefaultSettings returns the documented first-run settings record.
func DefaultSettings() models.Setting {
	return models.Setting{
		ID:                  models.SettingsID,
		Language:            "zh-TW",
		DisplayMode:         "grid",
		GridColumns:         models.GridColumns{Mobile: 1, Tablet: 2, Desktop: 4},
		ShowFileSize:        true,
		ConfirmBeforeDelete: true,
		MaxFileSize:         10,
		CompressionQuality:  0.8,
		LastBackupDate:      nil,
	}
}

// Get returns the settings record, creating it with defaults on first access.
func (s *SettingsService) Get(ctx context.Context) (models.Setting, error) {
	s.mu.RLock()
	if s.cached != nil {
		settings := *s.cached
		s.mu.RUnlock()
		return settings, nil
	}
	s.mu.RUnlock()

	return s.Reload(ctx)
}

// Reload re-reads the persisted record, creating it with defaults if absent,
// and refreshes the in-memory cache.
func (s *SettingsService) Reload(ctx context.Context) (models.Setting, error) {
	var settings models.Setting
	err := s.db.WithContext(ctx).First(&settings, "id = ?", models.SettingsID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		settings = DefaultSettings()
		err = s.db.WithContext(ctx).Create(&settings).Error
	}
	if err != nil {
		return models.Setting{}, err
	}

	s.mu.Lock()
	s.cached = &settings
	s.mu.Unlock()

	return settings, nil
}

// Update merges the patch into the stored record and returns the result.
func (s *SettingsService) Update(ctx context.Context, patch SettingsPatch) (models.Setting, error) {
	settings, err := s.Get(ctx)
	if err != nil {
		return models.Setting{}, err
	}

	if patch.Language != nil {
		settings.Language = *patch.Language
	}
	if patch.DisplayMode != nil {
		settings.DisplayMode = *patch.DisplayMode
	}
	if patch.GridColumns != nil {
		settings.GridColumns = *patch.GridColumns
	}
	if patch.ShowFileSize != nil {
		settings.ShowFileSize = *patch.ShowFileSize
	}
	if patch.ConfirmBeforeDelete != nil {
		settings.ConfirmBeforeDelete = *patch.ConfirmBeforeDelete
	}
	if patch.MaxFileSize != nil {
		settings.MaxFileSize = *patch.MaxFileSize
	}
	if patch.CompressionQuality != nil {
		settings.CompressionQuality = *patch.CompressionQuality
	}
	if patch.LastBackupDate != nil {
		settings.LastBackupDate = patch.LastBackupDate
	}
	settings.ID = models.SettingsID

	if err := s.db.WithContext(ctx).Save(&settings).Error; err != nil {
		return models.Setting{}, err
	}

	s.mu.Lock()
	s.cached = &settings
	s.mu.Unlock()

	return settings, nil
}

// Reset deletes the record and recreates it with defaults.
func (s *SettingsService) Reset(ctx context.Context) (models.Setting, error) {
	if err := s.db.WithContext(ctx).Delete(&models.Setting{}, "id = ?", models.SettingsID).Error; err != nil {
		return models.Setting{}, err
	}

	s.mu.Lock()
	s.cached = nil
	s.mu.Unlock()

	return s.Reload(ctx)
}
