package storage

import (
	"context"
	"errors"
	"io"
)

// ErrUnsupportedType is returned for uploads that are not an accepted image type.
var ErrUnsupportedType = errors.New("unsupported file type, expected jpeg, png, webp or pdf")

// ErrNotConfigured is returned when no image host credentials are set.
var ErrNotConfigured = errors.New("image storage is not configured")

// ImageStore persists uploaded proof-of-payment files and returns a public URL.
type ImageStore interface {
	Upload(ctx context.Context, body io.Reader, mimeType string) (string, error)
}

var allowedTypes = map[string]bool{
	"image/jpeg":      true,
	"image/png":       true,
	"image/webp":      true,
	"application/pdf": true,
}

// AllowedMimeType reports whether proofs of this type are accepted.
func AllowedMimeType(mimeType string) bool {
	return allowedTypes[mimeType]
}

type unconfiguredStore struct{}

// NewUnconfiguredStore returns an ImageStore whose uploads always fail.
func NewUnconfiguredStore() ImageStore { return unconfiguredStore{} }

func (unconfiguredStore) Upload(context.Context, io.Reader, string) (string, error) {
	return "", ErrNotConfigured
}
