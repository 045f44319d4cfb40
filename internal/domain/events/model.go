package events

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// ChangeEvent is one append-only audit log entry. Events are never
// updated or deleted through the API.
type ChangeEvent struct {
	ID        uuid.UUID  `db:"id" json:"id"`
	ActorID   *uuid.UUID `db:"actor_id" json:"actor_id,omitempty"`
	Entity    string     `db:"entity" json:"entity"`
	Action    string     `db:"action" json:"action"`
	Detail    *string    `db:"detail" json:"detail,omitempty"`
	CreatedAt time.Time  `db:"created_at" json:"created_at"`
}

// InsightHistory records one generated insight report for audit and
// later comparison.
type InsightHistory struct {
	ID         uuid.UUID       `db:"id" json:"id"`
	PracticeID string          `db:"practice_id" json:"practice_id"`
	UserID     string          `db:"user_id" json:"user_id"`
	ReportType string          `db:"report_type" json:"report_type"`
	Summary    string          `db:"summary" json:"summary"`
	Report     json.RawMessage `db:"report" json:"report"`
	Metadata   json.RawMessage `db:"metadata" json:"metadata,omitempty"`
	CreatedAt  time.Time       `db:"created_at" json:"created_at"`
}
