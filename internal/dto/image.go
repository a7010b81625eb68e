package dto

import (
	"time"

	"github.com/NgurahFajar/damar-exchange-backend/internal/core/domain"
)

// ImageResponse defines the data returned for a stored image.
type ImageResponse struct {
	ImageID     string    `json:"imageID"`
	FileName    string    `json:"fileName"`
	ContentType string    `json:"contentType"`
	SizeBytes   int64     `json:"sizeBytes"`
	URL         string    `json:"url"`
	CreatedAt   time.Time `json:"createdAt"`
}

// ToImageResponse converts a domain.Image to ImageResponse DTO
func ToImageResponse(img *domain.Image) ImageResponse {
	return ImageResponse{
		ImageID:     img.ImageID,
		FileName:    img.FileName,
		ContentType: img.ContentType,
		SizeBytes:   img.SizeBytes,
		URL:         img.URL,
		CreatedAt:   img.CreatedAt,
	}
}

// ToListImageResponse converts a slice of domain.Image to response DTOs
func ToListImageResponse(images []domain.Image) []ImageResponse {
	res := make([]ImageResponse, len(images))
	for i := range images {
		res[i] = ToImageResponse(&images[i])
	}
	return res
}
