package skills

import (
	"time"

	"github.com/google/uuid"
)

// Skill is a competency the practice tracks, e.g. "Prophylaxe" or
// "Abrechnung GOZ".
type Skill struct {
	ID        uuid.UUID `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	Category  *string   `db:"category" json:"category,omitempty"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// SkillAssignment grades a team member on a skill. Level runs 1..5.
type SkillAssignment struct {
	ID        uuid.UUID `db:"id" json:"id"`
	SkillID   uuid.UUID `db:"skill_id" json:"skill_id"`
	MemberID  uuid.UUID `db:"member_id" json:"member_id"`
	Level     int       `db:"level" json:"level"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}
