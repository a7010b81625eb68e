package models

// Image represents a stored gallery or icon image metadata row.
type Image struct {
	ImageID     string `json:"imageID" db:"image_id"`
	FileName    string `json:"fileName" db:"file_name"`
	ContentType string `json:"contentType" db:"content_type"`
	SizeBytes   int64  `json:"sizeBytes" db:"size_bytes"`
	URL         string `json:"url" db:"url"`
	AuditFields
}
