package seo

import (
	"time"

	"github.com/google/uuid"
)

// KeywordSnapshot is a point-in-time ranking observation for one
// search keyword.
type KeywordSnapshot struct {
	ID           uuid.UUID `db:"id" json:"id"`
	Keyword      string    `db:"keyword" json:"keyword"`
	Position     int       `db:"position" json:"position"`
	SearchVolume int       `db:"search_volume" json:"search_volume"`
	CapturedAt   time.Time `db:"captured_at" json:"captured_at"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}

// PageAudit is a crawl result for one page of the practice site.
type PageAudit struct {
	ID        uuid.UUID `db:"id" json:"id"`
	URL       string    `db:"url" json:"url"`
	Score     int       `db:"score" json:"score"`
	Issues    int       `db:"issues" json:"issues"`
	AuditedAt time.Time `db:"audited_at" json:"audited_at"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// Analysis is the response of the SEO analysis endpoint.
type Analysis struct {
	Text        string    `json:"text"`
	Generated   bool      `json:"generated"`
	GeneratedAt time.Time `json:"generated_at"`
}
