package types

import (
	"errors"
	"fmt"
)

// ErrorCode identifies a storage failure. The set is closed: every error the
// storage layer raises carries exactly one of these codes, and callers match
// on the code rather than on dynamic error types.
type ErrorCode string

const (
	ErrCodeInvalidFileType      ErrorCode = "INVALID_FILE_TYPE"
	ErrCodeFileSizeExceeded     ErrorCode = "FILE_SIZE_EXCEEDED"
	ErrCodeStorageQuotaExceeded ErrorCode = "STORAGE_QUOTA_EXCEEDED"
	ErrCodeCompression          ErrorCode = "COMPRESSION_ERROR"
	ErrCodeDuplicateUnitName    ErrorCode = "DUPLICATE_UNIT_NAME"
	ErrCodeUnitInUse            ErrorCode = "UNIT_IN_USE"
	ErrCodeNotFound             ErrorCode = "NOT_FOUND"
)

// StorageError is the error type for all storage-layer failures.
type StorageError struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`

	// PhotoCount is the number of photos blocking the operation.
	// Only set for UNIT_IN_USE.
	PhotoCount int `json:"photoCount,omitempty"`

	cause error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *StorageError) Unwrap() error {
	return e.cause
}

// CodeOf extracts the storage error code from err, unwrapping as needed.
func CodeOf(err error) (ErrorCode, bool) {
	var se *StorageError
	if errors.As(err, &se) {
		return se.Code, true
	}
	return "", false
}

// NewInvalidFileType reports an upload with a MIME type outside the allow-list.
func NewInvalidFileType(mimeType string) *StorageError {
	return &StorageError{
		Code:    ErrCodeInvalidFileType,
		Message: fmt.Sprintf("only JPEG, PNG, WebP and HEIC images are accepted, got %q", mimeType),
	}
}

// NewFileSizeExceeded reports an upload larger than the configured limit.
func NewFileSizeExceeded(maxFileSizeMB float64) *StorageError {
	return &StorageError{
		Code:    ErrCodeFileSizeExceeded,
		Message: fmt.Sprintf("file size must not exceed %gMB", maxFileSizeMB),
	}
}

// NewStorageQuotaExceeded reports that the backing store rejected a write for
// lack of capacity.
func NewStorageQuotaExceeded(cause error) *StorageError {
	return &StorageError{
		Code:    ErrCodeStorageQuotaExceeded,
		Message: "storage quota exceeded; delete some photos or export a backup to free space",
		cause:   cause,
	}
}

// NewCompressionError wraps a codec failure during artifact generation.
func NewCompressionError(cause error) *StorageError {
	msg := "image compression failed"
	if cause != nil {
		msg = fmt.Sprintf("image compression failed: %v", cause)
	}
	return &StorageError{
		Code:    ErrCodeCompression,
		Message: msg,
		cause:   cause,
	}
}

// NewDuplicateUnitName reports a unit creation that collides with an existing
// unit in the same category.
func NewDuplicateUnitName(category, name string) *StorageError {
	return &StorageError{
		Code:    ErrCodeDuplicateUnitName,
		Message: fmt.Sprintf("unit %q already exists in category %q", name, category),
	}
}

// NewUnitInUse reports a unit deletion blocked by referencing photos.
func NewUnitInUse(photoCount int) *StorageError {
	return &StorageError{
		Code:       ErrCodeUnitInUse,
		Message:    fmt.Sprintf("cannot delete unit: %d photos still use it", photoCount),
		PhotoCount: photoCount,
	}
}

// NewNotFound reports a missing update or lookup target.
func NewNotFound(what, id string) *StorageError {
	return &StorageError{
		Code:    ErrCodeNotFound,
		Message: fmt.Sprintf("%s %q not found", what, id),
	}
}
