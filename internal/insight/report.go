package insight

import "time"

// Insight severity kinds.
const (
	TypeSuccess     = "success"
	TypeWarning     = "warning"
	TypeImprovement = "improvement"
)

// CategoryKeys is the fixed set of report categories. Every report,
// generated or fallback, carries exactly these keys.
var CategoryKeys = []string{
	"team", "goals", "workflows", "documents", "knowledge",
	"finance", "support", "ratings", "organization", "recruiting",
}

// Insight is one categorized finding.
type Insight struct {
	Type        string `json:"type"`
	Category    string `json:"category"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Metric      string `json:"metric,omitempty"`
}

// CategoryScore is the per-domain portion of a report.
type CategoryScore struct {
	Score           int      `json:"score"`
	Findings        []string `json:"findings"`
	Recommendations []string `json:"recommendations"`
}

// InsightReport is the output artifact of an analysis run. Reports are
// immutable once generated; persistence keeps them as history rows.
type InsightReport struct {
	OverallScore    int                      `json:"overallScore"`
	Summary         string                   `json:"summary"`
	Insights        []Insight                `json:"insights"`
	Recommendations []string                 `json:"recommendations"`
	Categories      map[string]CategoryScore `json:"categories"`
	GeneratedAt     time.Time                `json:"generatedAt"`
}

func clampScore(n int) int {
	if n < 0 {
		return 0
	}
	if n > 100 {
		return 100
	}
	return n
}
