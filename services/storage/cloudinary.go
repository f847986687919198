package storage

import (
	"context"
	"fmt"
	"io"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// CloudinaryImageStore uploads proofs to a Cloudinary folder.
type CloudinaryImageStore struct {
	cld    *cloudinary.Cloudinary
	folder string
}

func NewCloudinaryImageStore(cld *cloudinary.Cloudinary, folder string) *CloudinaryImageStore {
	return &CloudinaryImageStore{cld: cld, folder: folder}
}

func (s *CloudinaryImageStore) Upload(ctx context.Context, body io.Reader, mimeType string) (string, error) {
	if !AllowedMimeType(mimeType) {
		return "", ErrUnsupportedType
	}

	resourceType := "image"
	if mimeType == "application/pdf" {
		resourceType = "raw"
	}

	res, err := s.cld.Upload.Upload(ctx, body, uploader.UploadParams{
		Folder:       s.folder,
		ResourceType: resourceType,
	})
	if err != nil {
		return "", fmt.Errorf("CloudinaryImageStore: upload failed: %w", err)
	}
	if res.Error.Message != "" {
		return "", fmt.Errorf("CloudinaryImageStore: upload rejected: %s", res.Error.Message)
	}
	return res.SecureURL, nil
}
