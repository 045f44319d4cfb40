package hygiene

import (
	"time"

	"github.com/google/uuid"
)

// HygienePlan is a recurring cleaning or sterilization duty for an
// area of the practice.
type HygienePlan struct {
	ID           uuid.UUID  `db:"id" json:"id"`
	Name         string     `db:"name" json:"name"`
	Area         string     `db:"area" json:"area"`
	IntervalDays int        `db:"interval_days" json:"interval_days"`
	LastDone     *time.Time `db:"last_done" json:"last_done,omitempty"`
	AssigneeID   *uuid.UUID `db:"assignee_id" json:"assignee_id,omitempty"`
	CreatedAt    time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time  `db:"updated_at" json:"updated_at"`
}

// NextDue returns when the plan is next due. A plan never completed
// is due immediately.
func (p *HygienePlan) NextDue() time.Time {
	if p.LastDone == nil {
		return time.Time{}
	}
	return p.LastDone.AddDate(0, 0, p.IntervalDays)
}

// Overdue reports whether the plan's next due date has passed.
func (p *HygienePlan) Overdue(now time.Time) bool {
	return p.NextDue().Before(now)
}
