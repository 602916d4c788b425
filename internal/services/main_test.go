package services_test

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"mistakebook/internal/models"
)

// setupTestDB creates an in-memory SQLite database for testing
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}

	// A second pooled connection would get its own empty memory database.
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("Failed to get underlying SQL DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(&models.Photo{}, &models.Unit{}, &models.Setting{}); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	return db
}

// makeJPEG encodes a solid-color JPEG of the given dimensions.
func makeJPEG(t *testing.T, width, height int) []byte {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, color.RGBA{R: 200, G: 80, B: 40, A: 255})
		}
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: 90}); err != nil {
		t.Fatalf("Failed to encode test JPEG: %v", err)
	}
	return buf.Bytes()
}

// makePNG encodes a solid-color PNG of the given dimensions.
func makePNG(t *testing.T, width, height int) []byte {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("Failed to encode test PNG: %v", err)
	}
	return buf.Bytes()
}

// storedPhoto inserts a photo row directly, bypassing ingestion, so tests can
// control the upload timestamp and metadata exactly.
func storedPhoto(t *testing.T, db *gorm.DB, id, fileName string, fileSize int64, uploadedAt time.Time, units, tags []string) models.Photo {
	t.Helper()

	photo := models.Photo{
		ID:            id,
		OriginalImage: []byte{0xff},
		Thumbnail:     []byte{0xff},
		UploadedAt:    uploadedAt,
		FileName:      fileName,
		FileSize:      fileSize,
		Units:         models.StringList(units),
		Tags:          models.StringList(tags),
	}
	if err := db.Create(&photo).Error; err != nil {
		t.Fatalf("Failed to insert test photo: %v", err)
	}
	return photo
}
