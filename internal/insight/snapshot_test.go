package insight

import (
	"reflect"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/praxis/praxis/internal/domain/finance"
	"github.com/praxis/praxis/internal/domain/goals"
	"github.com/praxis/praxis/internal/domain/hiring"
	"github.com/praxis/praxis/internal/domain/practice"
	"github.com/praxis/praxis/internal/domain/ratings"
	"github.com/praxis/praxis/internal/domain/team"
	"github.com/praxis/praxis/internal/domain/tickets"
	"github.com/praxis/praxis/internal/domain/workflows"
)

func strPtr(s string) *string { return &s }

func TestRate(t *testing.T) {
	tests := []struct {
		part, total int
		want        float64
	}{
		{0, 0, 0},
		{5, 0, 0},
		{0, 10, 0},
		{1, 3, 33.3},
		{2, 3, 66.7},
		{10, 10, 100},
	}
	for _, tt := range tests {
		if got := rate(tt.part, tt.total); got != tt.want {
			t.Errorf("rate(%d, %d) = %v, want %v", tt.part, tt.total, got, tt.want)
		}
	}
}

func TestAverage(t *testing.T) {
	if got := average(0, 0); got != 0 {
		t.Errorf("average(0, 0) = %v, want 0", got)
	}
	if got := average(10, 4); got != 2.5 {
		t.Errorf("average(10, 4) = %v, want 2.5", got)
	}
	if got := average(10, 3); got != 3.3 {
		t.Errorf("average(10, 3) = %v, want 3.3", got)
	}
}

func TestBucket(t *testing.T) {
	if got := bucket(nil); got != "Unassigned" {
		t.Errorf("bucket(nil) = %q", got)
	}
	if got := bucket(strPtr("")); got != "Unassigned" {
		t.Errorf("bucket(empty) = %q", got)
	}
	if got := bucket(strPtr("it")); got != "it" {
		t.Errorf("bucket(it) = %q", got)
	}
}

func TestDeriveMetricsEmpty(t *testing.T) {
	s := deriveMetrics(rawData{}, time.Now())

	if s.TeamSize != 0 || s.TotalGoals != 0 || s.TotalWorkflows != 0 {
		t.Error("empty raw data must yield zero counts")
	}
	if s.GoalCompletionRate != 0 || s.TicketResolutionRate != 0 || s.AverageRating != 0 {
		t.Error("zero denominators must yield 0, not NaN")
	}
	if s.RoleCounts == nil || s.TicketCategories == nil || s.ExpenseCategories == nil {
		t.Error("distribution maps must be initialized")
	}
}

func TestDeriveMetricsTeam(t *testing.T) {
	raw := rawData{
		members: []*team.TeamMember{
			{Name: "A", Role: "dentist", Employment: team.EmploymentActive, FTE: 1.0},
			{Name: "B", Role: "assistant", Employment: team.EmploymentActive, FTE: 0.5},
			{Name: "C", Role: "assistant", Employment: team.EmploymentInactive, FTE: 1.0},
		},
	}
	s := deriveMetrics(raw, time.Now())

	if s.TeamSize != 3 {
		t.Errorf("TeamSize = %d, want 3", s.TeamSize)
	}
	if s.ActiveMembers != 2 {
		t.Errorf("ActiveMembers = %d, want 2", s.ActiveMembers)
	}
	if s.TotalFTE != 1.5 {
		t.Errorf("TotalFTE = %v, want 1.5 (inactive members excluded)", s.TotalFTE)
	}
	if s.RoleCounts["assistant"] != 2 {
		t.Errorf("RoleCounts[assistant] = %d, want 2", s.RoleCounts["assistant"])
	}
}

func TestDeriveMetricsGoals(t *testing.T) {
	now := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)
	past := now.AddDate(0, -1, 0)
	future := now.AddDate(0, 1, 0)
	raw := rawData{
		goals: []*goals.Goal{
			{Status: goals.StatusActive, Progress: 40, DueDate: &future},
			{Status: goals.StatusActive, Progress: 20, DueDate: &past},
			{Status: goals.StatusCompleted, Progress: 100},
			{Status: goals.StatusCompleted, Progress: 100, DueDate: &past},
		},
	}
	s := deriveMetrics(raw, now)

	if s.ActiveGoals != 2 || s.CompletedGoals != 2 {
		t.Errorf("active/completed = %d/%d, want 2/2", s.ActiveGoals, s.CompletedGoals)
	}
	if s.OverdueGoals != 1 {
		t.Errorf("OverdueGoals = %d, want 1 (completed goals are never overdue)", s.OverdueGoals)
	}
	if s.GoalCompletionRate != 50 {
		t.Errorf("GoalCompletionRate = %v, want 50", s.GoalCompletionRate)
	}
	if s.AvgGoalProgress != 65 {
		t.Errorf("AvgGoalProgress = %v, want 65", s.AvgGoalProgress)
	}
}

func TestDeriveMetricsWorkflowProgress(t *testing.T) {
	raw := rawData{
		workflows: []*workflows.Workflow{
			{Status: workflows.StatusActive, StepsTotal: 4, StepsDone: 2},
			{Status: workflows.StatusBlocked, StepsTotal: 10, StepsDone: 5},
			{Status: workflows.StatusDraft, StepsTotal: 0, StepsDone: 0},
		},
	}
	s := deriveMetrics(raw, time.Now())

	if s.ActiveWorkflows != 1 || s.BlockedWorkflows != 1 {
		t.Errorf("active/blocked = %d/%d, want 1/1", s.ActiveWorkflows, s.BlockedWorkflows)
	}
	// (50 + 50 + 0) / 3; the zero-step workflow contributes nothing.
	if s.AvgWorkflowProgress != 33.3 {
		t.Errorf("AvgWorkflowProgress = %v, want 33.3", s.AvgWorkflowProgress)
	}
}

func TestDeriveMetricsTickets(t *testing.T) {
	raw := rawData{
		tickets: []*tickets.Ticket{
			{Status: tickets.StatusOpen, Category: strPtr("it")},
			{Status: tickets.StatusInProgress, Category: nil},
			{Status: tickets.StatusResolved, Category: strPtr("it")},
			{Status: tickets.StatusClosed, Category: strPtr("billing")},
		},
	}
	s := deriveMetrics(raw, time.Now())

	if s.OpenTickets != 2 {
		t.Errorf("OpenTickets = %d, want 2 (in_progress counts as open)", s.OpenTickets)
	}
	if s.ResolvedTickets != 2 {
		t.Errorf("ResolvedTickets = %d, want 2 (closed counts as resolved)", s.ResolvedTickets)
	}
	if s.TicketResolutionRate != 50 {
		t.Errorf("TicketResolutionRate = %v, want 50", s.TicketResolutionRate)
	}
	if s.TicketCategories["Unassigned"] != 1 {
		t.Errorf("uncategorized tickets = %d, want 1", s.TicketCategories["Unassigned"])
	}
}

func TestDeriveMetricsFinance(t *testing.T) {
	raw := rawData{
		transactions: []*finance.Transaction{
			{Kind: finance.KindIncome, AmountCents: 150000, Category: strPtr("treatment")},
			{Kind: finance.KindExpense, AmountCents: 40000, Category: strPtr("materials")},
			{Kind: finance.KindExpense, AmountCents: 20000},
			{Kind: finance.KindIncome, AmountCents: 80000},
		},
	}
	s := deriveMetrics(raw, time.Now())

	if s.IncomeCents != 230000 {
		t.Errorf("IncomeCents = %d, want 230000", s.IncomeCents)
	}
	if s.ExpenseCents != 60000 {
		t.Errorf("ExpenseCents = %d, want 60000", s.ExpenseCents)
	}
	if s.CategorizationRate != 50 {
		t.Errorf("CategorizationRate = %v, want 50", s.CategorizationRate)
	}
	if s.ExpenseCategories["Unassigned"] != 1 || s.ExpenseCategories["materials"] != 1 {
		t.Errorf("ExpenseCategories = %v", s.ExpenseCategories)
	}
}

func TestDeriveMetricsRatingsRecency(t *testing.T) {
	now := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	raw := rawData{
		ratings: []*ratings.Rating{
			{Stars: 5, RatedAt: now.AddDate(0, 0, -10)},
			{Stars: 4, RatedAt: now.AddDate(0, 0, -29)},
			{Stars: 3, RatedAt: now.AddDate(0, 0, -60)},
		},
	}
	s := deriveMetrics(raw, now)

	if s.AverageRating != 4.0 {
		t.Errorf("AverageRating = %v, want 4.0", s.AverageRating)
	}
	if s.RecentRatings != 2 {
		t.Errorf("RecentRatings = %d, want 2", s.RecentRatings)
	}
}

func TestDeriveMetricsHiringPipeline(t *testing.T) {
	raw := rawData{
		postings: []*hiring.JobPosting{
			{Status: hiring.PostingOpen},
			{Status: hiring.PostingClosed},
		},
		applicants: []*hiring.Applicant{
			{Stage: hiring.StageApplied},
			{Stage: hiring.StageInterview},
			{Stage: hiring.StageHired},
			{Stage: hiring.StageRejected},
		},
	}
	s := deriveMetrics(raw, time.Now())

	if s.OpenPostings != 1 {
		t.Errorf("OpenPostings = %d, want 1", s.OpenPostings)
	}
	if s.PipelineActive != 2 {
		t.Errorf("PipelineActive = %d, want 2 (hired and rejected excluded)", s.PipelineActive)
	}
	if s.HiredApplicants != 1 {
		t.Errorf("HiredApplicants = %d, want 1", s.HiredApplicants)
	}
}

func TestDeriveMetricsPracticeProfile(t *testing.T) {
	year := 2008
	raw := rawData{
		practice: &practice.Practice{
			ID:          uuid.New(),
			Name:        "Zahnarztpraxis am Markt",
			Specialty:   strPtr("dentistry"),
			City:        strPtr("Münster"),
			FoundedYear: &year,
		},
	}
	s := deriveMetrics(raw, time.Now())

	if s.PracticeName != "Zahnarztpraxis am Markt" || s.Specialty != "dentistry" || s.City != "Münster" {
		t.Errorf("profile = %q/%q/%q", s.PracticeName, s.Specialty, s.City)
	}
	if s.FoundedYear != 2008 {
		t.Errorf("FoundedYear = %d, want 2008", s.FoundedYear)
	}
}

func TestDeriveMetricsRepeatable(t *testing.T) {
	now := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	past := now.AddDate(0, -1, 0)
	raw := rawData{
		members: []*team.TeamMember{
			{Name: "A", Role: "dentist", Employment: team.EmploymentActive, FTE: 1.0},
			{Name: "B", Role: "assistant", Employment: team.EmploymentActive, FTE: 0.5},
		},
		goals: []*goals.Goal{
			{Status: goals.StatusActive, Progress: 40, DueDate: &past},
			{Status: goals.StatusCompleted, Progress: 100},
		},
		workflows: []*workflows.Workflow{
			{Status: workflows.StatusActive, StepsTotal: 4, StepsDone: 2},
		},
		tickets: []*tickets.Ticket{
			{Status: tickets.StatusOpen, Category: strPtr("it")},
			{Status: tickets.StatusResolved, Category: nil},
		},
		transactions: []*finance.Transaction{
			{Kind: finance.KindIncome, AmountCents: 150000, Category: strPtr("treatment")},
			{Kind: finance.KindExpense, AmountCents: 40000},
		},
		ratings: []*ratings.Rating{
			{Stars: 5, RatedAt: now.AddDate(0, 0, -10)},
			{Stars: 3, RatedAt: now.AddDate(0, 0, -60)},
		},
	}

	first := deriveMetrics(raw, now)
	second := deriveMetrics(raw, now)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("deriveMetrics not stable on identical input:\nfirst  %+v\nsecond %+v", first, second)
	}
}
