package insight

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/praxis/praxis/internal/domain/practice"
	"github.com/praxis/praxis/internal/platform/auth"
)

func validRequest(practiceID uuid.UUID) AnalyzeRequest {
	return AnalyzeRequest{
		PracticeID:   practiceID.String(),
		UserID:       uuid.NewString(),
		UserPractice: practiceID.String(),
		Role:         auth.RoleOwner,
	}
}

// generatedJSON builds a model response carrying every required
// category key, wrapped in prose the way models tend to answer.
func generatedJSON(t *testing.T, overall int) string {
	t.Helper()
	cats := make(map[string]CategoryScore, len(CategoryKeys))
	for _, k := range CategoryKeys {
		cats[k] = CategoryScore{Score: 70, Findings: []string{"ok"}, Recommendations: []string{}}
	}
	body, err := json.Marshal(InsightReport{
		OverallScore: overall,
		Summary:      "The practice is in good shape.",
		Categories:   cats,
	})
	if err != nil {
		t.Fatalf("marshal report: %v", err)
	}
	return "Here is the analysis:\n```json\n" + string(body) + "\n```\nLet me know if you need more."
}

func TestAnalyzeAuthorizationOrder(t *testing.T) {
	practiceID := uuid.New()
	svc := NewService(emptyRepos(practiceID), stubGenerator{err: errors.New("should not be called")}, nil)

	tests := []struct {
		name    string
		req     AnalyzeRequest
		wantErr error
	}{
		{
			name:    "missing user",
			req:     AnalyzeRequest{PracticeID: practiceID.String()},
			wantErr: ErrUnauthenticated,
		},
		{
			name:    "missing practice id",
			req:     AnalyzeRequest{UserID: "u1", Role: auth.RoleOwner},
			wantErr: ErrPracticeRequired,
		},
		{
			name: "cross practice access",
			req: AnalyzeRequest{
				PracticeID:   practiceID.String(),
				UserID:       "u1",
				UserPractice: uuid.NewString(),
				Role:         auth.RoleStaff,
			},
			wantErr: ErrForbidden,
		},
		{
			name: "malformed practice id",
			req: AnalyzeRequest{
				PracticeID:   "not-a-uuid",
				UserID:       "u1",
				UserPractice: "not-a-uuid",
				Role:         auth.RoleOwner,
			},
			wantErr: ErrPracticeRequired,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Analyze(context.Background(), tt.req)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Analyze() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestAnalyzeSettingsUnavailable(t *testing.T) {
	practiceID := uuid.New()
	repos := emptyRepos(practiceID)
	repos.Settings = stubSettings{err: errors.New("connection refused")}
	svc := NewService(repos, stubGenerator{}, nil)

	_, err := svc.Analyze(context.Background(), validRequest(practiceID))
	if !errors.Is(err, ErrTemporarilyUnavailable) {
		t.Fatalf("Analyze() error = %v, want %v", err, ErrTemporarilyUnavailable)
	}
}

func TestAnalyzeFeatureDisabled(t *testing.T) {
	practiceID := uuid.New()
	repos := emptyRepos(practiceID)
	repos.Settings = stubSettings{s: &practice.Settings{PracticeID: practiceID, AIEnabled: false}}
	svc := NewService(repos, stubGenerator{err: errors.New("down")}, nil)

	req := validRequest(practiceID)
	_, err := svc.Analyze(context.Background(), req)
	if !errors.Is(err, ErrFeatureDisabled) {
		t.Fatalf("Analyze() error = %v, want %v", err, ErrFeatureDisabled)
	}

	// Admins bypass the feature flag.
	req.Role = auth.RoleAdmin
	req.UserPractice = uuid.NewString()
	report, err := svc.Analyze(context.Background(), req)
	if err != nil {
		t.Fatalf("Analyze() as admin: %v", err)
	}
	if report == nil {
		t.Fatal("Analyze() as admin returned nil report")
	}
}

func TestAnalyzeGeneratorFailureFallsBack(t *testing.T) {
	practiceID := uuid.New()
	history := &stubHistory{}
	repos := emptyRepos(practiceID)
	repos.History = history
	svc := NewService(repos, stubGenerator{err: errors.New("api timeout")}, nil)

	report, err := svc.Analyze(context.Background(), validRequest(practiceID))
	if err != nil {
		t.Fatalf("Analyze() = %v, want fallback report", err)
	}
	if report.OverallScore != 30 {
		t.Errorf("empty practice fallback score = %d, want 30", report.OverallScore)
	}
	if len(report.Categories) != len(CategoryKeys) {
		t.Errorf("categories = %d, want %d", len(report.Categories), len(CategoryKeys))
	}
	for _, k := range CategoryKeys {
		if _, ok := report.Categories[k]; !ok {
			t.Errorf("fallback report missing category %q", k)
		}
	}
	if report.GeneratedAt.IsZero() {
		t.Error("GeneratedAt not stamped")
	}
	if len(history.inserted) != 1 {
		t.Fatalf("history rows = %d, want 1", len(history.inserted))
	}
	if history.inserted[0].ReportType != "practice_insight" {
		t.Errorf("report type = %q", history.inserted[0].ReportType)
	}
}

func TestAnalyzeUnusableOutputFallsBack(t *testing.T) {
	practiceID := uuid.New()
	svc := NewService(emptyRepos(practiceID), stubGenerator{text: "I cannot help with that."}, nil)

	report, err := svc.Analyze(context.Background(), validRequest(practiceID))
	if err != nil {
		t.Fatalf("Analyze() = %v", err)
	}
	if report.OverallScore != 30 {
		t.Errorf("score = %d, want fallback 30", report.OverallScore)
	}
}

func TestAnalyzeUsesGeneratedReport(t *testing.T) {
	practiceID := uuid.New()
	svc := NewService(emptyRepos(practiceID), stubGenerator{text: generatedJSON(t, 82)}, nil)

	report, err := svc.Analyze(context.Background(), validRequest(practiceID))
	if err != nil {
		t.Fatalf("Analyze() = %v", err)
	}
	if report.OverallScore != 82 {
		t.Errorf("score = %d, want 82", report.OverallScore)
	}
	if report.Summary != "The practice is in good shape." {
		t.Errorf("summary = %q", report.Summary)
	}
}

func TestAnalyzeClampsGeneratedScore(t *testing.T) {
	practiceID := uuid.New()
	svc := NewService(emptyRepos(practiceID), stubGenerator{text: generatedJSON(t, 140)}, nil)

	report, err := svc.Analyze(context.Background(), validRequest(practiceID))
	if err != nil {
		t.Fatalf("Analyze() = %v", err)
	}
	if report.OverallScore != 100 {
		t.Errorf("score = %d, want clamp to 100", report.OverallScore)
	}
}

func TestAnalyzeSoftFailingCollection(t *testing.T) {
	practiceID := uuid.New()
	repos := emptyRepos(practiceID)
	repos.Members = stubMembers{err: errors.New("relation does not exist")}
	repos.Tickets = stubTickets{err: errors.New("timeout")}
	svc := NewService(repos, stubGenerator{err: errors.New("down")}, nil)

	report, err := svc.Analyze(context.Background(), validRequest(practiceID))
	if err != nil {
		t.Fatalf("failing collections must not abort analysis: %v", err)
	}
	if report.OverallScore != 30 {
		t.Errorf("score = %d, want 30 from empty metrics", report.OverallScore)
	}
}

func TestAnalyzeHistoryFailureIsNotFatal(t *testing.T) {
	practiceID := uuid.New()
	repos := emptyRepos(practiceID)
	repos.History = &stubHistory{err: errors.New("disk full")}
	svc := NewService(repos, stubGenerator{text: generatedJSON(t, 75)}, nil)

	report, err := svc.Analyze(context.Background(), validRequest(practiceID))
	if err != nil {
		t.Fatalf("Analyze() = %v, history write must be best-effort", err)
	}
	if report.OverallScore != 75 {
		t.Errorf("score = %d, want 75", report.OverallScore)
	}
}

func TestAnalyzeBenchmarkOnlyWhenShared(t *testing.T) {
	practiceID := uuid.New()
	repos := emptyRepos(practiceID)
	repos.Settings = stubSettings{s: &practice.Settings{
		PracticeID: practiceID, AIEnabled: true, AnalyticsSharing: true,
	}}
	svc := NewService(repos, stubGenerator{text: generatedJSON(t, 60)}, StaticBenchmarks{})

	if _, err := svc.Analyze(context.Background(), validRequest(practiceID)); err != nil {
		t.Fatalf("Analyze() with benchmarks = %v", err)
	}
}

func TestAnalyzeDeterministicFallback(t *testing.T) {
	practiceID := uuid.New()
	svc := NewService(emptyRepos(practiceID), stubGenerator{err: errors.New("down")}, nil)

	a, err := svc.Analyze(context.Background(), validRequest(practiceID))
	if err != nil {
		t.Fatal(err)
	}
	time.Sleep(5 * time.Millisecond)
	b, err := svc.Analyze(context.Background(), validRequest(practiceID))
	if err != nil {
		t.Fatal(err)
	}
	if a.OverallScore != b.OverallScore || a.Summary != b.Summary {
		t.Error("fallback report not deterministic for identical data")
	}
}
