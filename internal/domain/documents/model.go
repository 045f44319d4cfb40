package documents

import (
	"time"

	"github.com/google/uuid"
)

// Document is file metadata only; the binary lives in object storage
// and is addressed by StorageKey.
type Document struct {
	ID         uuid.UUID  `db:"id" json:"id"`
	Title      string     `db:"title" json:"title"`
	Category   string     `db:"category" json:"category"`
	MimeType   string     `db:"mime_type" json:"mime_type"`
	SizeBytes  int64      `db:"size_bytes" json:"size_bytes"`
	StorageKey string     `db:"storage_key" json:"storage_key"`
	UploadedBy *uuid.UUID `db:"uploaded_by" json:"uploaded_by,omitempty"`
	CreatedAt  time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt  time.Time  `db:"updated_at" json:"updated_at"`
}
