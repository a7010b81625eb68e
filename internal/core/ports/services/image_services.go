package services

import (
	"context"
	"io"

	"github.com/NgurahFajar/damar-exchange-backend/internal/core/domain"
)

// ImageSvcFacade defines operations for gallery and icon images.
type ImageSvcFacade interface {
	// UploadImage stores the file bytes and persists a metadata row.
	UploadImage(ctx context.Context, fileName, contentType string, size int64, content io.Reader, creatorUserID string) (*domain.Image, error)

	// ListImages retrieves all images, newest first.
	ListImages(ctx context.Context) ([]domain.Image, error)

	// DeleteImage removes an image and its stored bytes.
	DeleteImage(ctx context.Context, imageID string, deleterUserID string) error
}
