package mapping

import (
	"github.com/NgurahFajar/damar-exchange-backend/internal/core/domain"
	"github.com/NgurahFajar/damar-exchange-backend/internal/models"
)

// ToModelImage converts a domain Image to a model Image
func ToModelImage(d domain.Image) models.Image {
	return models.Image{
		ImageID:     d.ImageID,
		FileName:    d.FileName,
		ContentType: d.ContentType,
		SizeBytes:   d.SizeBytes,
		URL:         d.URL,
		AuditFields: toModelAudit(d.AuditFields),
	}
}

// ToDomainImage converts a model Image to a domain Image
func ToDomainImage(m models.Image) domain.Image {
	return domain.Image{
		ImageID:     m.ImageID,
		FileName:    m.FileName,
		ContentType: m.ContentType,
		SizeBytes:   m.SizeBytes,
		URL:         m.URL,
		AuditFields: toDomainAudit(m.AuditFields),
	}
}

// ToDomainImageSlice converts a slice of model Images to domain Images
func ToDomainImageSlice(ms []models.Image) []domain.Image {
	ds := make([]domain.Image, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainImage(m)
	}
	return ds
}
