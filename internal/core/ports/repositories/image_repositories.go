package repositories

import (
	"context"

	"github.com/NgurahFajar/damar-exchange-backend/internal/core/domain"
)

// ImageReader defines read operations for image metadata
type ImageReader interface {
	// FindImageByID retrieves a specific image by its ID.
	FindImageByID(ctx context.Context, imageID string) (*domain.Image, error)

	// ListImages retrieves all images, newest first.
	ListImages(ctx context.Context) ([]domain.Image, error)

	// CountImages returns the number of stored images.
	CountImages(ctx context.Context) (int64, error)
}

// ImageWriter defines write operations for image metadata
type ImageWriter interface {
	// SaveImage persists a new image metadata row.
	SaveImage(ctx context.Context, image domain.Image) error

	// DeleteImage removes an image metadata row by ID.
	DeleteImage(ctx context.Context, imageID string) error
}

// ImageRepositoryFacade combines all image-related repository interfaces
type ImageRepositoryFacade interface {
	ImageReader
	ImageWriter
}
