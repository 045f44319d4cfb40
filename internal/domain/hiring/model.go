package hiring

import (
	"time"

	"github.com/google/uuid"
)

// Posting statuses.
const (
	PostingOpen   = "open"
	PostingPaused = "paused"
	PostingClosed = "closed"
)

// Applicant stages, in pipeline order.
const (
	StageApplied   = "applied"
	StageScreening = "screening"
	StageInterview = "interview"
	StageOffer     = "offer"
	StageHired     = "hired"
	StageRejected  = "rejected"
)

// stageOrder gives each pipeline stage a rank so transitions can be
// checked for backwards moves. Rejected is terminal from anywhere.
var stageOrder = map[string]int{
	StageApplied:   0,
	StageScreening: 1,
	StageInterview: 2,
	StageOffer:     3,
	StageHired:     4,
}

// JobPosting is an open position advertised by the practice.
type JobPosting struct {
	ID        uuid.UUID `db:"id" json:"id"`
	Title     string    `db:"title" json:"title"`
	Status    string    `db:"status" json:"status"`
	Employ    string    `db:"employment_type" json:"employment_type"`
	Notes     *string   `db:"notes" json:"notes,omitempty"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// Applicant is a candidate on a posting, tracked through the stages.
type Applicant struct {
	ID        uuid.UUID `db:"id" json:"id"`
	PostingID uuid.UUID `db:"posting_id" json:"posting_id"`
	Name      string    `db:"name" json:"name"`
	Email     *string   `db:"email" json:"email,omitempty"`
	Stage     string    `db:"stage" json:"stage"`
	Notes     *string   `db:"notes" json:"notes,omitempty"`
	AppliedAt time.Time `db:"applied_at" json:"applied_at"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// CanAdvanceTo reports whether moving from the applicant's current
// stage to next is a forward move. Rejection is always allowed.
func (a *Applicant) CanAdvanceTo(next string) bool {
	if next == StageRejected {
		return a.Stage != StageRejected
	}
	cur, ok := stageOrder[a.Stage]
	if !ok {
		return false
	}
	n, ok := stageOrder[next]
	if !ok {
		return false
	}
	return n > cur
}
