package services_test

import (
	"bytes"
	"context"
	"image"
	"image/jpeg"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mistakebook/internal/services"
	"mistakebook/internal/types"
)

func newPhotoService(t *testing.T) (*services.PhotoService, *services.SettingsService) {
	db := setupTestDB(t)
	settings := services.NewSettingsService(db)
	return services.NewPhotoService(db, settings, 0), settings
}

func TestCreatePhoto(t *testing.T) {
	svc, _ := newPhotoService(t)
	ctx := context.Background()

	data := makeJPEG(t, 120, 80)
	photo, err := svc.Create(ctx, services.PhotoMetadata{
		Units: []string{"unit-math-algebra"},
		Tags:  []string{"重要"},
	}, services.Upload{
		FileName:    "mistake.jpg",
		Size:        int64(len(data)),
		ContentType: "image/jpeg",
		Data:        data,
	})
	require.NoError(t, err)

	assert.NotEmpty(t, photo.ID)
	assert.Equal(t, "mistake.jpg", photo.FileName)
	assert.Equal(t, int64(len(data)), photo.FileSize)
	assert.Equal(t, []string{"unit-math-algebra"}, []string(photo.Units))
	assert.Equal(t, []string{"重要"}, []string(photo.Tags))
	assert.False(t, photo.UploadedAt.IsZero())

	// Both artifacts must be present and decodable.
	stored, err := svc.Get(ctx, photo.ID)
	require.NoError(t, err)
	require.NotNil(t, stored)
	for _, artifact := range [][]byte{stored.OriginalImage, stored.Thumbnail} {
		_, err := jpeg.Decode(bytes.NewReader(artifact))
		require.NoError(t, err)
	}
}

func TestCreatePhotoSniffsContentType(t *testing.T) {
	svc, _ := newPhotoService(t)

	data := makePNG(t, 50, 50)
	photo, err := svc.Create(context.Background(), services.PhotoMetadata{}, services.Upload{
		FileName: "clipboard.png",
		Data:     data,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, photo.ID)
	assert.Empty(t, []string(photo.Units))
	assert.Empty(t, []string(photo.Tags))
}

func TestCreatePhotoRejectsInvalidType(t *testing.T) {
	svc, _ := newPhotoService(t)

	_, err := svc.Create(context.Background(), services.PhotoMetadata{}, services.Upload{
		FileName:    "notes.pdf",
		Size:        10,
		ContentType: "application/pdf",
		Data:        []byte("%PDF-1.4"),
	})
	require.Error(t, err)

	code, ok := types.CodeOf(err)
	require.True(t, ok)
	assert.Equal(t, types.ErrCodeInvalidFileType, code)

	count, err := svc.Count(context.Background())
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestCreatePhotoRejectsOversizedFile(t *testing.T) {
	svc, _ := newPhotoService(t)

	// Default limit is 10MB; the declared size is checked, not the buffer.
	_, err := svc.Create(context.Background(), services.PhotoMetadata{}, services.Upload{
		FileName:    "huge.jpg",
		Size:        11 * 1024 * 1024,
		ContentType: "image/jpeg",
		Data:        makeJPEG(t, 10, 10),
	})
	require.Error(t, err)

	code, ok := types.CodeOf(err)
	require.True(t, ok)
	assert.Equal(t, types.ErrCodeFileSizeExceeded, code)
}

func TestCreatePhotoRejectsUndecodableData(t *testing.T) {
	svc, _ := newPhotoService(t)

	_, err := svc.Create(context.Background(), services.PhotoMetadata{}, services.Upload{
		FileName:    "broken.jpg",
		Size:        12,
		ContentType: "image/jpeg",
		Data:        []byte("not an image"),
	})
	require.Error(t, err)

	code, ok := types.CodeOf(err)
	require.True(t, ok)
	assert.Equal(t, types.ErrCodeCompression, code)
}

func TestCreatePhotoRejectsOverlongTag(t *testing.T) {
	svc, _ := newPhotoService(t)

	_, err := svc.Create(context.Background(), services.PhotoMetadata{
		Tags: []string{strings.Repeat("長", 51)},
	}, services.Upload{
		FileName:    "tagged.jpg",
		ContentType: "image/jpeg",
		Data:        makeJPEG(t, 10, 10),
	})
	require.ErrorIs(t, err, services.ErrTagTooLong)

	// 50 runes exactly is fine, even multibyte.
	_, err = svc.Create(context.Background(), services.PhotoMetadata{
		Tags: []string{strings.Repeat("長", 50)},
	}, services.Upload{
		FileName:    "tagged.jpg",
		ContentType: "image/jpeg",
		Data:        makeJPEG(t, 10, 10),
	})
	require.NoError(t, err)
}

func TestCreatePhotoQuotaExceeded(t *testing.T) {
	db := setupTestDB(t)
	settings := services.NewSettingsService(db)
	svc := services.NewPhotoService(db, settings, 1) // quota far below the empty database size

	_, err := svc.Create(context.Background(), services.PhotoMetadata{}, services.Upload{
		FileName:    "over.jpg",
		ContentType: "image/jpeg",
		Data:        makeJPEG(t, 10, 10),
	})
	require.Error(t, err)

	code, ok := types.CodeOf(err)
	require.True(t, ok)
	assert.Equal(t, types.ErrCodeStorageQuotaExceeded, code)
}

func TestGetPhotoMissing(t *testing.T) {
	svc, _ := newPhotoService(t)

	photo, err := svc.Get(context.Background(), "no-such-id")
	require.NoError(t, err)
	assert.Nil(t, photo)
}

func TestUpdatePhoto(t *testing.T) {
	db := setupTestDB(t)
	settings := services.NewSettingsService(db)
	svc := services.NewPhotoService(db, settings, 0)
	ctx := context.Background()

	uploaded := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	storedPhoto(t, db, "p1", "before.jpg", 1234, uploaded, []string{"unit-a"}, []string{"old"})

	units := types.FlexStrings{"unit-b", "unit-c"}
	tags := types.FlexStrings{"new"}
	otherName := "after.jpg"
	otherSize := int64(999)
	photo, err := svc.Update(ctx, "p1", services.PhotoPatch{
		Units:    &units,
		Tags:     &tags,
		FileName: &otherName,
		FileSize: &otherSize,
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"unit-b", "unit-c"}, []string(photo.Units))
	assert.Equal(t, []string{"new"}, []string(photo.Tags))

	// Identity and provenance are immutable.
	assert.Equal(t, "before.jpg", photo.FileName)
	assert.Equal(t, int64(1234), photo.FileSize)
	assert.True(t, photo.UploadedAt.Equal(uploaded))
}

func TestUpdatePhotoPartialPatch(t *testing.T) {
	db := setupTestDB(t)
	settings := services.NewSettingsService(db)
	svc := services.NewPhotoService(db, settings, 0)

	storedPhoto(t, db, "p1", "a.jpg", 1, time.Now().UTC(), []string{"unit-a"}, []string{"keep"})

	units := types.FlexStrings{"unit-b"}
	photo, err := svc.Update(context.Background(), "p1", services.PhotoPatch{Units: &units})
	require.NoError(t, err)

	assert.Equal(t, []string{"unit-b"}, []string(photo.Units))
	assert.Equal(t, []string{"keep"}, []string(photo.Tags), "absent patch field must not clear tags")
}

func TestUpdatePhotoMissing(t *testing.T) {
	svc, _ := newPhotoService(t)

	_, err := svc.Update(context.Background(), "no-such-id", services.PhotoPatch{})
	require.Error(t, err)

	code, ok := types.CodeOf(err)
	require.True(t, ok)
	assert.Equal(t, types.ErrCodeNotFound, code)
}

func TestDeletePhotoIdempotent(t *testing.T) {
	db := setupTestDB(t)
	settings := services.NewSettingsService(db)
	svc := services.NewPhotoService(db, settings, 0)
	ctx := context.Background()

	storedPhoto(t, db, "p1", "a.jpg", 1, time.Now().UTC(), nil, nil)

	require.NoError(t, svc.Delete(ctx, "p1"))
	require.NoError(t, svc.Delete(ctx, "p1"), "deleting an absent id must succeed")

	count, err := svc.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestListPhotosDefaultOrder(t *testing.T) {
	db := setupTestDB(t)
	settings := services.NewSettingsService(db)
	svc := services.NewPhotoService(db, settings, 0)

	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	storedPhoto(t, db, "old", "a.jpg", 1, base, nil, nil)
	storedPhoto(t, db, "mid", "b.jpg", 2, base.Add(time.Hour), nil, nil)
	storedPhoto(t, db, "new", "c.jpg", 3, base.Add(2*time.Hour), nil, nil)

	photos, err := svc.List(context.Background(), services.ListOptions{})
	require.NoError(t, err)
	require.Len(t, photos, 3)

	assert.Equal(t, "new", photos[0].ID)
	assert.Equal(t, "mid", photos[1].ID)
	assert.Equal(t, "old", photos[2].ID)
}

func TestListPhotosSortVariants(t *testing.T) {
	db := setupTestDB(t)
	settings := services.NewSettingsService(db)
	svc := services.NewPhotoService(db, settings, 0)
	ctx := context.Background()

	now := time.Now().UTC()
	storedPhoto(t, db, "p1", "banana.jpg", 300, now, nil, nil)
	storedPhoto(t, db, "p2", "apple.jpg", 100, now.Add(time.Minute), nil, nil)
	storedPhoto(t, db, "p3", "cherry.jpg", 200, now.Add(2*time.Minute), nil, nil)

	byName, err := svc.List(ctx, services.ListOptions{SortBy: "fileName", SortOrder: "asc"})
	require.NoError(t, err)
	assert.Equal(t, []string{"apple.jpg", "banana.jpg", "cherry.jpg"},
		[]string{byName[0].FileName, byName[1].FileName, byName[2].FileName})

	bySize, err := svc.List(ctx, services.ListOptions{SortBy: "fileSize"})
	require.NoError(t, err)
	assert.Equal(t, []int64{300, 200, 100},
		[]int64{bySize[0].FileSize, bySize[1].FileSize, bySize[2].FileSize})
}

func TestListPhotosPagination(t *testing.T) {
	db := setupTestDB(t)
	settings := services.NewSettingsService(db)
	svc := services.NewPhotoService(db, settings, 0)
	ctx := context.Background()

	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	for i, id := range []string{"p1", "p2", "p3", "p4", "p5"} {
		storedPhoto(t, db, id, id+".jpg", 1, base.Add(time.Duration(i)*time.Hour), nil, nil)
	}

	// Newest first: p5 p4 p3 p2 p1. Offset applies before limit.
	page, err := svc.List(ctx, services.ListOptions{Offset: 1, Limit: 2})
	require.NoError(t, err)
	require.Len(t, page, 2)
	assert.Equal(t, "p4", page[0].ID)
	assert.Equal(t, "p3", page[1].ID)

	empty, err := svc.List(ctx, services.ListOptions{Offset: 10})
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestListPhotosWithFilters(t *testing.T) {
	db := setupTestDB(t)
	settings := services.NewSettingsService(db)
	svc := services.NewPhotoService(db, settings, 0)

	now := time.Now().UTC()
	storedPhoto(t, db, "p1", "a.jpg", 1, now, []string{"unit-math-algebra"}, []string{"重要"})
	storedPhoto(t, db, "p2", "b.jpg", 1, now.Add(time.Minute), []string{"unit-physics-mechanics"}, []string{"重要", "複習"})
	storedPhoto(t, db, "p3", "c.jpg", 1, now.Add(2*time.Minute), []string{"unit-math-geometry"}, nil)

	photos, err := svc.FilteredPhotos(context.Background(), services.Filters{
		Units: []string{"unit-math-algebra", "unit-physics-mechanics"},
		Tags:  []string{"重要"},
	})
	require.NoError(t, err)
	require.Len(t, photos, 2)
	assert.Equal(t, "p2", photos[0].ID)
	assert.Equal(t, "p1", photos[1].ID)
}

func TestCompressBoundsStoredWidth(t *testing.T) {
	svc, _ := newPhotoService(t)

	data := makeJPEG(t, 2400, 60)
	photo, err := svc.Create(context.Background(), services.PhotoMetadata{}, services.Upload{
		FileName:    "wide.jpg",
		ContentType: "image/jpeg",
		Data:        data,
	})
	require.NoError(t, err)

	stored, err := svc.Get(context.Background(), photo.ID)
	require.NoError(t, err)
	require.NotNil(t, stored)

	cfg, err := jpeg.DecodeConfig(bytes.NewReader(stored.OriginalImage))
	require.NoError(t, err)
	assert.Equal(t, 2000, cfg.Width)

	thumb, err := jpeg.DecodeConfig(bytes.NewReader(stored.Thumbnail))
	require.NoError(t, err)
	assert.Equal(t, image.Point{X: 300, Y: 300}, image.Point{X: thumb.Width, Y: thumb.Height})
}
