package services

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"mistakebook/internal/database"
	"mistakebook/internal/imaging"
	"mistakebook/internal/models"
	"mistakebook/internal/types"
)

// maxTagLength bounds a single free-form tag, in runes.
const maxTagLength = 50

// ErrTagTooLong rejects tags longer than 50 characters.
var ErrTagTooLong = errors.New("tag must be 50 characters or fewer")

// PhotoService owns the photo collection: ingestion (validate, compress,
// persist), lookup, listing with filters, tag/unit updates and deletion.
type PhotoService struct {
	db         *gorm.DB
	settings   *SettingsService
	quotaBytes int64
}

// Upload is a raw file handed to Create, of arbitrary origin (camera, picker).
type Upload struct {
	FileName    string
	Size        int64
	ContentType string
	Data        []byte
}

// PhotoMetadata is the optional initial classification for a new photo.
type PhotoMetadata struct {
	Units []string `json:"units"`
	Tags  []string `json:"tags"`
}

// PhotoPatch is a partial photo update. Only Units and Tags are honored;
// identity and provenance fields are immutable and any values supplied for
// them are ignored in favor of the stored ones.
type PhotoPatch struct {
	Units *types.FlexStrings `json:"units"`
	Tags  *types.FlexStrings `json:"tags"`

	// Immutable fields, accepted so permissive clients do not fail, never applied.
	FileName   *string    `json:"fileName"`
	FileSize   *int64     `json:"fileSize"`
	UploadedAt *time.Time `json:"uploadedAt"`
}

// ListOptions controls ListPhotos: optional unit/tag pre-filtering, sorting
// and pagination. Offset applies before Limit.
type ListOptions struct {
	Units []string
	Tags  []string

	SortBy    string // uploadedAt (default), fileName, fileSize
	SortOrder string // desc (default) or asc

	Offset int
	Limit  int
}

// NewPhotoService creates a photo service. quotaBytes caps the database size;
// zero means uncapped.
func NewPhotoService(db *gorm.DB, settings *SettingsService, quotaBytes int64) *PhotoService {
	return &PhotoService{db: db, settings: settings, quotaBytes: quotaBytes}
}

// Create validates the upload, produces both artifacts using the current
// settings and persists the new record. Either artifact failure aborts the
// whole creation with no partial write.
func (s *PhotoService) Create(ctx context.Context, meta PhotoMetadata, file Upload) (models.Photo, error) {
	settings, err := s.settings.Get(ctx)
	if err != nil {
		return models.Photo{}, fmt.Errorf("failed to load settings: %w", err)
	}

	size := file.Size
	if size == 0 {
		size = int64(len(file.Data))
	}

	mimeType := imaging.DetectType(file.ContentType, file.Data)
	if err := imaging.ValidateFile(mimeType, size, settings.MaxFileSize); err != nil {
		return models.Photo{}, err
	}

	original, err := imaging.Compress(file.Data, settings.CompressionQuality, imaging.MaxWidth)
	if err != nil {
		return models.Photo{}, err
	}
	thumbnail, err := imaging.Thumbnail(file.Data)
	if err != nil {
		return models.Photo{}, err
	}

	tags, err := normalizeTags(meta.Tags)
	if err != nil {
		return models.Photo{}, err
	}

	if err := s.checkQuota(ctx, int64(len(original)+len(thumbnail))); err != nil {
		return models.Photo{}, err
	}

	photo := models.Photo{
		ID:            uuid.New().String(),
		OriginalImage: original,
		Thumbnail:     thumbnail,
		UploadedAt:    time.Now().UTC(),
		FileName:      file.FileName,
		FileSize:      size,
		Units:         normalizeList(meta.Units),
		Tags:          tags,
	}

	if err := s.db.WithContext(ctx).Create(&photo).Error; err != nil {
		if database.IsDiskFull(err) {
			return models.Photo{}, types.NewStorageQuotaExceeded(err)
		}
		return models.Photo{}, fmt.Errorf("failed to store photo: %w", err)
	}

	log.Debug().Str("id", photo.ID).Str("fileName", photo.FileName).
		Int64("fileSize", photo.FileSize).Msg("photo created")

	return photo, nil
}

// Get returns the photo with the given id, or nil if it does not exist.
// A missing id is not an error.
func (s *PhotoService) Get(ctx context.Context, id string) (*models.Photo, error) {
	var photo models.Photo
	err := s.db.WithContext(ctx).First(&photo, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get photo: %w", err)
	}
	return &photo, nil
}

// List returns photos pre-filtered by unit/tag membership, sorted (default:
// upload time, newest first) and paginated. The filter step preserves input
// order; the sort is stable.
func (s *PhotoService) List(ctx context.Context, opts ListOptions) ([]models.Photo, error) {
	var photos []models.Photo
	if err := s.db.WithContext(ctx).Find(&photos).Error; err != nil {
		return nil, fmt.Errorf("failed to list photos: %w", err)
	}

	photos = ApplyFilters(photos, Filters{Units: opts.Units, Tags: opts.Tags})
	sortPhotos(photos, opts.SortBy, opts.SortOrder)

	if opts.Offset > 0 {
		if opts.Offset >= len(photos) {
			photos = nil
		} else {
			photos = photos[opts.Offset:]
		}
	}
	if opts.Limit > 0 && opts.Limit < len(photos) {
		photos = photos[:opts.Limit]
	}

	return photos, nil
}

// Update merges the patch into the stored photo. Identity and provenance
// fields keep their stored values regardless of the patch contents.
func (s *PhotoService) Update(ctx context.Context, id string, patch PhotoPatch) (models.Photo, error) {
	var photo models.Photo
	err := s.db.WithContext(ctx).First(&photo, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Photo{}, types.NewNotFound("photo", id)
	}
	if err != nil {
		return models.Photo{}, fmt.Errorf("failed to get photo: %w", err)
	}

	if patch.Units != nil {
		photo.Units = normalizeList(patch.Units.Slice())
	}
	if patch.Tags != nil {
		tags, err := normalizeTags(patch.Tags.Slice())
		if err != nil {
			return models.Photo{}, err
		}
		photo.Tags = tags
	}

	if err := s.db.WithContext(ctx).Save(&photo).Error; err != nil {
		if database.IsDiskFull(err) {
			return models.Photo{}, types.NewStorageQuotaExceeded(err)
		}
		return models.Photo{}, fmt.Errorf("failed to update photo: %w", err)
	}

	return photo, nil
}

// Delete removes the photo unconditionally. Deleting an absent id is a no-op.
func (s *PhotoService) Delete(ctx context.Context, id string) error {
	if err := s.db.WithContext(ctx).Delete(&models.Photo{}, "id = ?", id).Error; err != nil {
		return fmt.Errorf("failed to delete photo: %w", err)
	}
	return nil
}

// Count returns the number of stored photos.
func (s *PhotoService) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := s.db.WithContext(ctx).Model(&models.Photo{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count photos: %w", err)
	}
	return count, nil
}

// FilteredPhotos loads all photos newest-first and applies the given filters.
func (s *PhotoService) FilteredPhotos(ctx context.Context, filters Filters) ([]models.Photo, error) {
	return s.List(ctx, ListOptions{Units: filters.Units, Tags: filters.Tags})
}

// checkQuota rejects a write of incoming bytes that would push the database
// past the configured quota ceiling.
func (s *PhotoService) checkQuota(ctx context.Context, incoming int64) error {
	if s.quotaBytes <= 0 {
		return nil
	}
	used, err := database.Size(s.db.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("failed to measure database size: %w", err)
	}
	if used+incoming > s.quotaBytes {
		return types.NewStorageQuotaExceeded(nil)
	}
	return nil
}

func normalizeList(values []string) models.StringList {
	if values == nil {
		return models.StringList{}
	}
	return models.StringList(values)
}

func normalizeTags(tags []string) (models.StringList, error) {
	for _, tag := range tags {
		if utf8.RuneCountInString(tag) > maxTagLength {
			return nil, fmt.Errorf("%w: %q", ErrTagTooLong, tag)
		}
	}
	return normalizeList(tags), nil
}

// sortPhotos orders photos by the chosen field. The sort is stable, with a
// secondary comparison on the stringified sort key for deterministic output
// across equal primary keys.
func sortPhotos(photos []models.Photo, sortBy, sortOrder string) {
	desc := sortOrder != "asc"

	sort.SliceStable(photos, func(i, j int) bool {
		a, b := photos[i], photos[j]
		if desc {
			a, b = b, a
		}

		switch sortBy {
		case "fileName":
			if a.FileName != b.FileName {
				return a.FileName < b.FileName
			}
		case "fileSize":
			if a.FileSize != b.FileSize {
				return a.FileSize < b.FileSize
			}
		default: // uploadedAt
			if !a.UploadedAt.Equal(b.UploadedAt) {
				return a.UploadedAt.Before(b.UploadedAt)
			}
		}

		return strings.Compare(sortKey(a, sortBy), sortKey(b, sortBy)) < 0
	})
}

func sortKey(p models.Photo, sortBy string) string {
	switch sortBy {
	case "fileName":
		return p.FileName
	case "fileSize":
		return fmt.Sprintf("%d", p.FileSize)
	default:
		return p.UploadedAt.Format(time.RFC3339Nano)
	}
}
