package practice

import (
	"time"

	"github.com/google/uuid"
)

// Practice maps to the practice table: the tenant's own profile record.
type Practice struct {
	ID          uuid.UUID `db:"id" json:"id"`
	Slug        string    `db:"slug" json:"slug"`
	Name        string    `db:"name" json:"name"`
	Specialty   *string   `db:"specialty" json:"specialty,omitempty"`
	City        *string   `db:"city" json:"city,omitempty"`
	Phone       *string   `db:"phone" json:"phone,omitempty"`
	Website     *string   `db:"website" json:"website,omitempty"`
	FoundedYear *int      `db:"founded_year" json:"founded_year,omitempty"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time `db:"updated_at" json:"updated_at"`
}

// Settings holds per-practice feature configuration. It is fetched per
// request and passed by value into the services that need it; nothing caches
// it between requests.
type Settings struct {
	PracticeID       uuid.UUID `db:"practice_id" json:"practice_id"`
	AIEnabled        bool      `db:"ai_enabled" json:"ai_enabled"`
	AnalyticsSharing bool      `db:"analytics_sharing" json:"analytics_sharing"`
	Locale           string    `db:"locale" json:"locale"`
	UpdatedAt        time.Time `db:"updated_at" json:"updated_at"`
}

// DefaultSettings are the values a practice runs with before it ever
// saves an explicit settings row. They must mirror the column defaults:
// AI analysis on, analytics sharing opt-in.
func DefaultSettings(practiceID uuid.UUID) *Settings {
	return &Settings{
		PracticeID: practiceID,
		AIEnabled:  true,
		Locale:     "de-DE",
	}
}
