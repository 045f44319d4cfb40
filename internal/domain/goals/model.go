package goals

import (
	"time"

	"github.com/google/uuid"
)

// Goal statuses.
const (
	StatusActive    = "active"
	StatusCompleted = "completed"
	StatusArchived  = "archived"
)

// Goal maps to the goal table.
type Goal struct {
	ID        uuid.UUID  `db:"id" json:"id"`
	Title     string     `db:"title" json:"title"`
	Status    string     `db:"status" json:"status"`
	Progress  int        `db:"progress" json:"progress"`
	OwnerID   *uuid.UUID `db:"owner_id" json:"owner_id,omitempty"`
	DueDate   *time.Time `db:"due_date" json:"due_date,omitempty"`
	CreatedAt time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt time.Time  `db:"updated_at" json:"updated_at"`
}

// Overdue reports whether the goal is past due and not completed.
func (g *Goal) Overdue(now time.Time) bool {
	return g.Status == StatusActive && g.DueDate != nil && g.DueDate.Before(now)
}

// Todo maps to the todo table.
type Todo struct {
	ID         uuid.UUID  `db:"id" json:"id"`
	Title      string     `db:"title" json:"title"`
	Done       bool       `db:"done" json:"done"`
	AssigneeID *uuid.UUID `db:"assignee_id" json:"assignee_id,omitempty"`
	DueDate    *time.Time `db:"due_date" json:"due_date,omitempty"`
	CreatedAt  time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt  time.Time  `db:"updated_at" json:"updated_at"`
}
