package services

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"mistakebook/data"
	"mistakebook/internal/models"
	"mistakebook/internal/types"
)

var whitespace = regexp.MustCompile(`\s+`)

// UnitService owns the unit collection: the seeded defaults, user-created
// custom units, and the referential in-use check guarding deletion.
type UnitService struct {
	db *gorm.DB
}

// NewUnitService creates a unit service over the given database.
func NewUnitService(db *gorm.DB) *UnitService {
	return &UnitService{db: db}
}

// UnitID derives the deterministic unit identifier from category and name:
// lowercase, whitespace collapsed to hyphens, "unit-" prefixed. Identical
// inputs always produce the same id.
func UnitID(category, name string) string {
	return fmt.Sprintf("unit-%s-%s", slugify(category), slugify(name))
}

func slugify(s string) string {
	return whitespace.ReplaceAllString(strings.ToLower(strings.TrimSpace(s)), "-")
}

// All returns a snapshot of the unit collection.
func (s *UnitService) All(ctx context.Context) ([]models.Unit, error) {
	var units []models.Unit
	if err := s.db.WithContext(ctx).Find(&units).Error; err != nil {
		return nil, fmt.Errorf("failed to list units: %w", err)
	}
	return units, nil
}

// Create stores a new custom unit. Within a category, names are unique under
// case folding; a collision fails with DUPLICATE_UNIT_NAME and leaves the
// existing unit untouched.
func (s *UnitService) Create(ctx context.Context, name, category string) (models.Unit, error) {
	var existing []models.Unit
	if err := s.db.WithContext(ctx).Where("category = ?", category).Find(&existing).Error; err != nil {
		return models.Unit{}, fmt.Errorf("failed to check for duplicates: %w", err)
	}
	for _, u := range existing {
		if strings.EqualFold(u.Name, name) {
			return models.Unit{}, types.NewDuplicateUnitName(category, name)
		}
	}

	unit := models.Unit{
		ID:        UnitID(category, name),
		Name:      name,
		Category:  category,
		IsCustom:  true,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.db.WithContext(ctx).Create(&unit).Error; err != nil {
		// Slug collision on the primary key means the pair already exists
		// under a normalization the name comparison missed.
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return models.Unit{}, types.NewDuplicateUnitName(category, name)
		}
		return models.Unit{}, fmt.Errorf("failed to create unit: %w", err)
	}

	return unit, nil
}

// Delete removes a unit, unless photos still reference it, in which case it
// fails with UNIT_IN_USE carrying the referencing photo count. The check
// scans all photos; at the expected scale (hundreds) that is fine, but it is
// O(photos), not indexed.
func (s *UnitService) Delete(ctx context.Context, id string) error {
	type photoUnitRef struct {
		ID    string
		Units models.StringList
	}

	var refs []photoUnitRef
	if err := s.db.WithContext(ctx).Model(&models.Photo{}).
		Select("id", "units").Find(&refs).Error; err != nil {
		return fmt.Errorf("failed to check unit usage: %w", err)
	}

	inUse := 0
	for _, ref := range refs {
		if ref.Units.Contains(id) {
			inUse++
		}
	}
	if inUse > 0 {
		return types.NewUnitInUse(inUse)
	}

	if err := s.db.WithContext(ctx).Delete(&models.Unit{}, "id = ?", id).Error; err != nil {
		return fmt.Errorf("failed to delete unit: %w", err)
	}
	return nil
}

// SeedDefaults inserts the embedded default unit set if the collection is
// empty, in a single transaction so a failure seeds nothing. Idempotent: a
// non-empty collection makes it a no-op. Returns the number of units seeded.
func (s *UnitService) SeedDefaults(ctx context.Context) (int, error) {
	var count int64
	if err := s.db.WithContext(ctx).Model(&models.Unit{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count units: %w", err)
	}
	if count > 0 {
		return 0, nil
	}

	var seeds []struct {
		ID       string `json:"id"`
		Name     string `json:"name"`
		Category string `json:"category"`
	}
	if err := json.Unmarshal(data.DefaultUnits, &seeds); err != nil {
		return 0, fmt.Errorf("failed to parse default units: %w", err)
	}

	now := time.Now().UTC()
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, seed := range seeds {
			unit := models.Unit{
				ID:        seed.ID,
				Name:      seed.Name,
				Category:  seed.Category,
				IsCustom:  false,
				CreatedAt: now,
			}
			if err := tx.Create(&unit).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("failed to seed default units: %w", err)
	}

	log.Info().Int("count", len(seeds)).Msg("default units seeded")

	return len(seeds), nil
}
