package workflows

import (
	"time"

	"github.com/google/uuid"
)

// Workflow statuses.
const (
	StatusActive  = "active"
	StatusDraft   = "draft"
	StatusBlocked = "blocked"
)

// Workflow maps to the workflow table.
type Workflow struct {
	ID         uuid.UUID  `db:"id" json:"id"`
	Name       string     `db:"name" json:"name"`
	Status     string     `db:"status" json:"status"`
	StepsTotal int        `db:"steps_total" json:"steps_total"`
	StepsDone  int        `db:"steps_done" json:"steps_done"`
	TemplateID *uuid.UUID `db:"template_id" json:"template_id,omitempty"`
	CreatedAt  time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt  time.Time  `db:"updated_at" json:"updated_at"`
}

// Template is a globally shared workflow blueprint. Templates live in the
// shared schema and are the one deliberately cross-practice collection.
type Template struct {
	ID          uuid.UUID `db:"id" json:"id"`
	Name        string    `db:"name" json:"name"`
	Category    string    `db:"category" json:"category"`
	Description *string   `db:"description" json:"description,omitempty"`
	Steps       int       `db:"steps" json:"steps"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}
