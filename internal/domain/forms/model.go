package forms

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Form statuses.
const (
	StatusDraft     = "draft"
	StatusPublished = "published"
	StatusArchived  = "archived"
)

// Form is a patient-facing intake or consent form. Fields holds the
// form schema as raw JSON so the builder UI owns its shape.
type Form struct {
	ID          uuid.UUID       `db:"id" json:"id"`
	Name        string          `db:"name" json:"name"`
	Status      string          `db:"status" json:"status"`
	Fields      json.RawMessage `db:"fields" json:"fields"`
	Submissions int             `db:"submissions" json:"submissions"`
	CreatedAt   time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time       `db:"updated_at" json:"updated_at"`
}
