package handlers

import (
	"io"

	"github.com/gofiber/fiber/v2"

	"mistakebook/internal/services"
	"mistakebook/internal/utils"
)

// PhotoHandler handles photo routes
type PhotoHandler struct {
	Photos *services.PhotoService
}

// CreatePhoto handles POST /api/photos
// @Summary Upload a photo
// @Description Validates, compresses and stores a mistake photo with optional initial units/tags
// @Tags Photos
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Image file (JPEG, PNG, WebP or HEIC)"
// @Param units formData string false "Comma-separated unit ids"
// @Param tags formData string false "Comma-separated tags"
// @Success 201 {object} models.Photo
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 422 {object} utils.ErrorResponseStruct
// @Failure 507 {object} utils.ErrorResponseStruct
// @Router /photos [post]
func (h *PhotoHandler) CreatePhoto(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return utils.ErrorResponse(c, "multipart field 'file' is required", fiber.StatusBadRequest, "photos.create")
	}

	f, err := fileHeader.Open()
	if err != nil {
		return utils.ErrorResponse(c, "failed to open uploaded file", fiber.StatusBadRequest, "photos.create")
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return utils.ErrorResponse(c, "failed to read uploaded file", fiber.StatusBadRequest, "photos.create")
	}

	meta := services.PhotoMetadata{
		Units: formList(c, "units"),
		Tags:  formList(c, "tags"),
	}

	photo, err := h.Photos.Create(c.Context(), meta, services.Upload{
		FileName:    fileHeader.Filename,
		Size:        fileHeader.Size,
		ContentType: fileHeader.Header.Get("Content-Type"),
		Data:        data,
	})
	if err != nil {
		return sendServiceError(c, err, "photos.create")
	}

	return c.Status(fiber.StatusCreated).JSON(photo)
}

// ListPhotos handles GET /api/photos
// @Summary List photos
// @Description List photos with optional unit/tag filters, sorting and pagination
// @Tags Photos
// @Produce json
// @Param units query string false "Unit ids (OR filter, repeatable or comma-separated)"
// @Param tags query string false "Tags (AND filter, repeatable or comma-separated)"
// @Param sortBy query string false "uploadedAt (default), fileName or fileSize"
// @Param sortOrder query string false "desc (default) or asc"
// @Param offset query int false "Offset, applied before limit"
// @Param limit query int false "Limit"
// @Success 200 {array} models.Photo
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /photos [get]
func (h *PhotoHandler) ListPhotos(c *fiber.Ctx) error {
	opts := services.ListOptions{
		Units:     parseListParam(c, "units"),
		Tags:      parseListParam(c, "tags"),
		SortBy:    c.Query("sortBy"),
		SortOrder: c.Query("sortOrder"),
		Offset:    c.QueryInt("offset"),
		Limit:     c.QueryInt("limit"),
	}

	photos, err := h.Photos.List(c.Context(), opts)
	if err != nil {
		return sendServiceError(c, err, "photos.list")
	}

	return c.Status(fiber.StatusOK).JSON(photos)
}

// CountPhotos handles GET /api/photos/count
// @Summary Count photos
// @Tags Photos
// @Produce json
// @Success 200 {object} map[string]int64
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /photos/count [get]
func (h *PhotoHandler) CountPhotos(c *fiber.Ctx) error {
	count, err := h.Photos.Count(c.Context())
	if err != nil {
		return sendServiceError(c, err, "photos.count")
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"count": count})
}

// GetPhoto handles GET /api/photos/:id
// @Summary Get a photo record
// @Tags Photos
// @Produce json
// @Param id path string true "Photo ID"
// @Success 200 {object} models.Photo
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /photos/{id} [get]
func (h *PhotoHandler) GetPhoto(c *fiber.Ctx) error {
	photo, err := h.Photos.Get(c.Context(), c.Params("id"))
	if err != nil {
		return sendServiceError(c, err, "photos.get")
	}
	if photo == nil {
		return utils.NotFoundResponse(c, "photo not found")
	}
	return c.Status(fiber.StatusOK).JSON(photo)
}

// GetPhotoImage handles GET /api/photos/:id/image
// @Summary Get the full-resolution artifact
// @Tags Photos
// @Produce jpeg
// @Param id path string true "Photo ID"
// @Success 200 {file} binary
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /photos/{id}/image [get]
func (h *PhotoHandler) GetPhotoImage(c *fiber.Ctx) error {
	photo, err := h.Photos.Get(c.Context(), c.Params("id"))
	if err != nil {
		return sendServiceError(c, err, "photos.image")
	}
	if photo == nil {
		return utils.NotFoundResponse(c, "photo not found")
	}
	c.Set(fiber.HeaderContentType, "image/jpeg")
	return c.Send(photo.OriginalImage)
}

// GetPhotoThumbnail handles GET /api/photos/:id/thumbnail
// @Summary Get the thumbnail artifact
// @Tags Photos
// @Produce jpeg
// @Param id path string true "Photo ID"
// @Success 200 {file} binary
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /photos/{id}/thumbnail [get]
func (h *PhotoHandler) GetPhotoThumbnail(c *fiber.Ctx) error {
	photo, err := h.Photos.Get(c.Context(), c.Params("id"))
	if err != nil {
		return sendServiceError(c, err, "photos.thumbnail")
	}
	if photo == nil {
		return utils.NotFoundResponse(c, "photo not found")
	}
	c.Set(fiber.HeaderContentType, "image/jpeg")
	return c.Send(photo.Thumbnail)
}

// UpdatePhoto handles PATCH /api/photos/:id
// @Summary Update a photo's units and tags
// @Description Identity and provenance fields are immutable; only units and tags are applied
// @Tags Photos
// @Accept json
// @Produce json
// @Param id path string true "Photo ID"
// @Param body body services.PhotoPatch true "Fields to update"
// @Success 200 {object} models.Photo
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /photos/{id} [patch]
func (h *PhotoHandler) UpdatePhoto(c *fiber.Ctx) error {
	var patch services.PhotoPatch
	if err := c.BodyParser(&patch); err != nil {
		return utils.ErrorResponse(c, "invalid request body", fiber.StatusBadRequest, "photos.update")
	}

	photo, err := h.Photos.Update(c.Context(), c.Params("id"), patch)
	if err != nil {
		return sendServiceError(c, err, "photos.update")
	}

	return c.Status(fiber.StatusOK).JSON(photo)
}

// DeletePhoto handles DELETE /api/photos/:id
// @Summary Delete a photo
// @Description Idempotent: deleting an absent id succeeds
// @Tags Photos
// @Param id path string true "Photo ID"
// @Success 204
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /photos/{id} [delete]
func (h *PhotoHandler) DeletePhoto(c *fiber.Ctx) error {
	if err := h.Photos.Delete(c.Context(), c.Params("id")); err != nil {
		return sendServiceError(c, err, "photos.delete")
	}
	return c.SendStatus(fiber.StatusNoContent)
}
