package utils

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"mistakebook/internal/types"
)

// HTTPStatus maps a storage error code to its HTTP status. The mapping is
// exhaustive over the closed code set.
func HTTPStatus(code types.ErrorCode) int {
	switch code {
	case types.ErrCodeInvalidFileType, types.ErrCodeFileSizeExceeded:
		return fiber.StatusBadRequest
	case types.ErrCodeNotFound:
		return fiber.StatusNotFound
	case types.ErrCodeDuplicateUnitName, types.ErrCodeUnitInUse:
		return fiber.StatusConflict
	case types.ErrCodeCompression:
		return fiber.StatusUnprocessableEntity
	case types.ErrCodeStorageQuotaExceeded:
		return fiber.StatusInsufficientStorage
	}
	return fiber.StatusInternalServerError
}

// StorageErrorResponse sends a storage failure in the standard envelope,
// carrying the machine-readable code (and blocking photo count for UNIT_IN_USE).
func StorageErrorResponse(c *fiber.Ctx, se *types.StorageError) error {
	status := HTTPStatus(se.Code)
	body := fiber.Map{
		"status":    status,
		"message":   se.Message,
		"ok":        false,
		"code":      se.Code,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"url":       c.OriginalURL(),
	}
	if se.Code == types.ErrCodeUnitInUse {
		body["photoCount"] = se.PhotoCount
	}
	return c.Status(status).JSON(body)
}

// ErrorResponse sends a standard error response
func ErrorResponse(c *fiber.Ctx, message string, status int, errorType string) error {
	return c.Status(status).JSON(fiber.Map{
		"status":    status,
		"message":   message,
		"ok":        false,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"url":       c.OriginalURL(),
		"type":      errorType,
	})
}

// NotFoundResponse sends a 404 not found response
func NotFoundResponse(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
		"status":    fiber.StatusNotFound,
		"message":   message,
		"ok":        false,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"url":       c.OriginalURL(),
	})
}

// MutationSuccessResponse sends a success response for mutations without a body
func MutationSuccessResponse(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message":   "Success",
		"ok":        true,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// SuccessResponseStruct defines the schema for mutation success responses
type SuccessResponseStruct struct {
	Message   string `json:"message"`
	Ok        bool   `json:"ok"`
	Timestamp string `json:"timestamp"`
}

// ErrorResponseStruct defines the schema for error responses
type ErrorResponseStruct struct {
	Status     int    `json:"status"`
	Message    string `json:"message"`
	Ok         bool   `json:"ok"`
	Code       string `json:"code,omitempty"`
	PhotoCount int    `json:"photoCount,omitempty"`
	Timestamp  string `json:"timestamp"`
	URL        string `json:"url"`
	Type       string `json:"type,omitempty"`
}
