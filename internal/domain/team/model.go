package team

import (
	"time"

	"github.com/google/uuid"
)

// Employment states for a team member.
const (
	EmploymentActive   = "active"
	EmploymentInactive = "inactive"
)

// TeamMember maps to the team_member table.
type TeamMember struct {
	ID         uuid.UUID  `db:"id" json:"id"`
	Name       string     `db:"name" json:"name"`
	Role       string     `db:"role" json:"role"`
	Email      *string    `db:"email" json:"email,omitempty"`
	Employment string     `db:"employment" json:"employment"`
	FTE        float64    `db:"fte" json:"fte"`
	HiredAt    *time.Time `db:"hired_at" json:"hired_at,omitempty"`
	CreatedAt  time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt  time.Time  `db:"updated_at" json:"updated_at"`
}

// Position is a seat in the org chart. A position with no holder is vacant.
type Position struct {
	ID         uuid.UUID  `db:"id" json:"id"`
	Title      string     `db:"title" json:"title"`
	Department *string    `db:"department" json:"department,omitempty"`
	HolderID   *uuid.UUID `db:"holder_id" json:"holder_id,omitempty"`
	CreatedAt  time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt  time.Time  `db:"updated_at" json:"updated_at"`
}

// Vacant reports whether the position has no holder.
func (p *Position) Vacant() bool {
	return p.HolderID == nil
}

// Responsibility assigns an area of accountability to a position.
type Responsibility struct {
	ID          uuid.UUID `db:"id" json:"id"`
	PositionID  uuid.UUID `db:"position_id" json:"position_id"`
	Description string    `db:"description" json:"description"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}
