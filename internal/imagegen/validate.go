package imagegen

import (
	"fmt"
	"strings"

	"roomdesign/internal/domain"
)

// MaxImageBytes is the largest accepted upload. Larger files are rejected.
const MaxImageBytes = 10 * 1024 * 1024

var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
	"image/heic": true,
	"image/heif": true,
}

// ValidationError describes a rejected upload. Kind is
// domain.ErrUnsupportedMediaType or domain.ErrPayloadTooLarge. Field names the
// single-file form field; Index is the 1-based position in multi-file forms.
type ValidationError struct {
	Kind        error
	Field       string
	Index       int
	ContentType string
}

func (e *ValidationError) Error() string {
	switch {
	case e.Kind == domain.ErrUnsupportedMediaType && e.Index > 0:
		return fmt.Sprintf("Unsupported file type for furniture image %d: %s", e.Index, e.ContentType)
	case e.Kind == domain.ErrUnsupportedMediaType && e.Field != "":
		return fmt.Sprintf("Unsupported file type for %s: %s", e.Field, e.ContentType)
	case e.Kind == domain.ErrUnsupportedMediaType:
		return fmt.Sprintf("Unsupported file type: %s", e.ContentType)
	case e.Index > 0:
		return fmt.Sprintf("Furniture image %d exceeds 10MB size limit", e.Index)
	case e.Field != "":
		return fmt.Sprintf("Image exceeds 10MB size limit for %s", e.Field)
	default:
		return "Image exceeds 10MB size limit"
	}
}

func (e *ValidationError) Unwrap() error { return e.Kind }

// ValidateImage checks the declared content type, then the size.
func ValidateImage(u Upload, field string, index int) error {
	if !IsAllowedImageType(u.ContentType) {
		return &ValidationError{Kind: domain.ErrUnsupportedMediaType, Field: field, Index: index, ContentType: u.ContentType}
	}
	if len(u.Data) > MaxImageBytes {
		return &ValidationError{Kind: domain.ErrPayloadTooLarge, Field: field, Index: index, ContentType: u.ContentType}
	}
	return nil
}

// IsAllowedImageType reports whether contentType, ignoring parameters and
// case, is on the upload allow-list.
func IsAllowedImageType(contentType string) bool {
	mediaType, _, _ := strings.Cut(contentType, ";")
	return allowedImageTypes[strings.ToLower(strings.TrimSpace(mediaType))]
}
