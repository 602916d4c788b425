package imaging

import (
	"github.com/gabriel-vasile/mimetype"

	"mistakebook/internal/types"
)

// allowedTypes is the fixed upload allow-list.
var allowedTypes = map[string]struct{}{
	"image/jpeg": {},
	"image/png":  {},
	"image/webp": {},
	"image/heic": {},
}

// DetectType returns the effective MIME type of an upload. The declared type
// wins when present; otherwise the content is sniffed.
func DetectType(declared string, data []byte) string {
	if declared != "" {
		return declared
	}
	return mimetype.Detect(data).String()
}

// ValidateFile checks an upload against the MIME allow-list and the
// configured size limit (in MB). The type check runs before the size check.
// Pure: no I/O, no side effects.
func ValidateFile(mimeType string, size int64, maxFileSizeMB float64) error {
	if _, ok := allowedTypes[mimeType]; !ok {
		return types.NewInvalidFileType(mimeType)
	}

	maxSizeBytes := int64(maxFileSizeMB * 1024 * 1024)
	if size > maxSizeBytes {
		return types.NewFileSizeExceeded(maxFileSizeMB)
	}

	return nil
}
