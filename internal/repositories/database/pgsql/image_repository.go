package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/NgurahFajar/damar-exchange-backend/internal/apperrors"
	"github.com/NgurahFajar/damar-exchange-backend/internal/core/domain"
	portsrepo "github.com/NgurahFajar/damar-exchange-backend/internal/core/ports/repositories"
	"github.com/NgurahFajar/damar-exchange-backend/internal/models"
	"github.com/NgurahFajar/damar-exchange-backend/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxImageRepository struct {
	BaseRepository
}

// newPgxImageRepository creates a new repository for image metadata.
func newPgxImageRepository(pool *pgxpool.Pool) portsrepo.ImageRepositoryFacade {
	return &PgxImageRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.ImageRepositoryFacade = (*PgxImageRepository)(nil)

// SaveImage persists a new image metadata row.
func (r *PgxImageRepository) SaveImage(ctx context.Context, image domain.Image) error {
	modelImg := mapping.ToModelImage(image)

	query := `
		INSERT INTO images (image_id, file_name, content_type, size_bytes, url, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`

	_, err := r.Pool.Exec(ctx, query,
		modelImg.ImageID,
		modelImg.FileName,
		modelImg.ContentType,
		modelImg.SizeBytes,
		modelImg.URL,
		modelImg.CreatedAt,
		modelImg.CreatedBy,
		modelImg.LastUpdatedAt,
		modelImg.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save image %s: %w", modelImg.ImageID, err)
	}
	return nil
}

// DeleteImage removes an image metadata row by ID.
func (r *PgxImageRepository) DeleteImage(ctx context.Context, imageID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM images WHERE image_id = $1;`, imageID)
	if err != nil {
		return fmt.Errorf("failed to delete image %s: %w", imageID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// FindImageByID retrieves an image by its ID.
func (r *PgxImageRepository) FindImageByID(ctx context.Context, imageID string) (*domain.Image, error) {
	query := `
		SELECT image_id, file_name, content_type, size_bytes, url, created_at, created_by, last_updated_at, last_updated_by
		FROM images
		WHERE image_id = $1;
	`
	var modelImg models.Image
	err := r.Pool.QueryRow(ctx, query, imageID).Scan(
		&modelImg.ImageID,
		&modelImg.FileName,
		&modelImg.ContentType,
		&modelImg.SizeBytes,
		&modelImg.URL,
		&modelImg.CreatedAt,
		&modelImg.CreatedBy,
		&modelImg.LastUpdatedAt,
		&modelImg.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find image by id %s: %w", imageID, err)
	}

	domainImg := mapping.ToDomainImage(modelImg)
	return &domainImg, nil
}

// ListImages retrieves all images, newest first.
func (r *PgxImageRepository) ListImages(ctx context.Context) ([]domain.Image, error) {
	query := `
		SELECT image_id, file_name, content_type, size_bytes, url, created_at, created_by, last_updated_at, last_updated_by
		FROM images
		ORDER BY created_at DESC;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query images: %w", err)
	}
	defer rows.Close()

	modelImages, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Image, error) {
		var image models.Image
		err := row.Scan(
			&image.ImageID,
			&image.FileName,
			&image.ContentType,
			&image.SizeBytes,
			&image.URL,
			&image.CreatedAt,
			&image.CreatedBy,
			&image.LastUpdatedAt,
			&image.LastUpdatedBy,
		)
		return image, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to collect image rows: %w", err)
	}

	return mapping.ToDomainImageSlice(modelImages), nil
}

// CountImages returns the number of stored images.
func (r *PgxImageRepository) CountImages(ctx context.Context) (int64, error) {
	var count int64
	if err := r.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM images;`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count images: %w", err)
	}
	return count, nil
}
