package tickets

import (
	"time"

	"github.com/google/uuid"
)

// Ticket statuses.
const (
	StatusOpen       = "open"
	StatusInProgress = "in_progress"
	StatusResolved   = "resolved"
	StatusClosed     = "closed"
)

// Ticket maps to the ticket table.
type Ticket struct {
	ID         uuid.UUID  `db:"id" json:"id"`
	Subject    string     `db:"subject" json:"subject"`
	Status     string     `db:"status" json:"status"`
	Priority   string     `db:"priority" json:"priority"`
	Category   *string    `db:"category" json:"category,omitempty"`
	ReporterID *uuid.UUID `db:"reporter_id" json:"reporter_id,omitempty"`
	ResolvedAt *time.Time `db:"resolved_at" json:"resolved_at,omitempty"`
	CreatedAt  time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt  time.Time  `db:"updated_at" json:"updated_at"`
}

// Settled reports whether the ticket reached a terminal state.
func (t *Ticket) Settled() bool {
	return t.Status == StatusResolved || t.Status == StatusClosed
}
