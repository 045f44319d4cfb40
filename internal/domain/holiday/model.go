package holiday

import (
	"time"

	"github.com/google/uuid"
)

// Request statuses.
const (
	StatusRequested = "requested"
	StatusApproved  = "approved"
	StatusRejected  = "rejected"
)

// HolidayRequest is a vacation request for a team member. Days is the
// number of working days the request covers.
type HolidayRequest struct {
	ID        uuid.UUID `db:"id" json:"id"`
	MemberID  uuid.UUID `db:"member_id" json:"member_id"`
	From      time.Time `db:"from_date" json:"from"`
	To        time.Time `db:"to_date" json:"to"`
	Days      int       `db:"days" json:"days"`
	Status    string    `db:"status" json:"status"`
	Note      *string   `db:"note" json:"note,omitempty"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}
