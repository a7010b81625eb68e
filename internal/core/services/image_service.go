package services

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	"github.com/NgurahFajar/damar-exchange-backend/internal/apperrors"
	"github.com/NgurahFajar/damar-exchange-backend/internal/core/domain"
	portsrepo "github.com/NgurahFajar/damar-exchange-backend/internal/core/ports/repositories"
	"github.com/NgurahFajar/damar-exchange-backend/internal/platform/storage"
	"github.com/google/uuid"
)

// MaxImageSizeBytes caps uploads at 2 MiB, matching what the admin UI accepts.
const MaxImageSizeBytes int64 = 2 << 20

var allowedImageTypes = map[string]string{
	"image/jpeg":    ".jpg",
	"image/png":     ".png",
	"image/webp":    ".webp",
	"image/svg+xml": ".svg",
}

// ImageService provides business logic for gallery and icon images.
type ImageService struct {
	imageRepo portsrepo.ImageRepositoryFacade
	files     storage.FileStore
	baseURL   string
}

// NewImageService creates a new ImageService. baseURL is the public prefix
// stored in image URLs (e.g. "/static/images").
func NewImageService(imageRepo portsrepo.ImageRepositoryFacade, files storage.FileStore, baseURL string) *ImageService {
	return &ImageService{
		imageRepo: imageRepo,
		files:     files,
		baseURL:   strings.TrimSuffix(baseURL, "/"),
	}
}

func (s *ImageService) UploadImage(ctx context.Context, fileName, contentType string, size int64, content io.Reader, creatorUserID string) (*domain.Image, error) {
	if size > MaxImageSizeBytes {
		return nil, fmt.Errorf("%w: image exceeds %d bytes", apperrors.ErrPayloadTooLarge, MaxImageSizeBytes)
	}
	ext, ok := allowedImageTypes[contentType]
	if !ok {
		return nil, fmt.Errorf("%w: unsupported content type %q", apperrors.ErrValidation, contentType)
	}

	imageID := uuid.NewString()
	storedName := imageID + ext

	// LimitReader guards against clients lying about the declared size.
	written, err := s.files.Save(ctx, storedName, io.LimitReader(content, MaxImageSizeBytes+1))
	if err != nil {
		return nil, fmt.Errorf("failed to store image bytes: %w", err)
	}
	if written > MaxImageSizeBytes {
		_ = s.files.Remove(ctx, storedName)
		return nil, fmt.Errorf("%w: image exceeds %d bytes", apperrors.ErrPayloadTooLarge, MaxImageSizeBytes)
	}

	now := time.Now()
	image := domain.Image{
		ImageID:     imageID,
		FileName:    fileName,
		ContentType: contentType,
		SizeBytes:   written,
		URL:         s.baseURL + "/" + storedName,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.imageRepo.SaveImage(ctx, image); err != nil {
		_ = s.files.Remove(ctx, storedName)
		return nil, fmt.Errorf("failed to save image metadata: %w", err)
	}

	return &image, nil
}

func (s *ImageService) ListImages(ctx context.Context) ([]domain.Image, error) {
	images, err := s.imageRepo.ListImages(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list images in service: %w", err)
	}
	if images == nil {
		return []domain.Image{}, nil
	}
	return images, nil
}

func (s *ImageService) DeleteImage(ctx context.Context, imageID string, deleterUserID string) error {
	image, err := s.imageRepo.FindImageByID(ctx, imageID)
	if err != nil {
		return fmt.Errorf("failed to load image %s for delete: %w", imageID, err)
	}

	if err := s.imageRepo.DeleteImage(ctx, imageID); err != nil {
		return fmt.Errorf("failed to delete image %s in service: %w", imageID, err)
	}

	// Metadata row is gone; a leftover file is harmless and logged upstream.
	_ = s.files.Remove(ctx, path.Base(image.URL))
	return nil
}
