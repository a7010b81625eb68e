package domain

// Image represents a stored gallery or icon image. The binary itself lives in
// the file store; this is the metadata row.
type Image struct {
	ImageID     string `json:"imageID"` // Primary Key (UUID)
	FileName    string `json:"fileName"`
	ContentType string `json:"contentType"`
	SizeBytes   int64  `json:"sizeBytes"`
	URL         string `json:"url"`
	AuditFields
}
