package insight

import (
	"math"
	"time"

	"github.com/praxis/praxis/internal/domain/finance"
	"github.com/praxis/praxis/internal/domain/goals"
	"github.com/praxis/praxis/internal/domain/hiring"
	"github.com/praxis/praxis/internal/domain/holiday"
	"github.com/praxis/praxis/internal/domain/team"
	"github.com/praxis/praxis/internal/domain/tickets"
	"github.com/praxis/praxis/internal/domain/workflows"
)

// Snapshot is the flat set of derived statistics one analysis run works
// from. It is computed fresh per request and never cached.
type Snapshot struct {
	// Practice profile
	PracticeName string
	Specialty    string
	City         string
	FoundedYear  int

	// Team
	TeamSize      int
	ActiveMembers int
	TotalFTE      float64
	RoleCounts    map[string]int

	// Org structure
	TotalPositions      int
	VacantPositions     int
	ResponsibilityCount int

	// Goals and todos
	TotalGoals         int
	ActiveGoals        int
	CompletedGoals     int
	OverdueGoals       int
	GoalCompletionRate float64
	AvgGoalProgress    float64
	TotalTodos         int
	DoneTodos          int
	TodoCompletionRate float64

	// Workflows
	TotalWorkflows      int
	ActiveWorkflows     int
	BlockedWorkflows    int
	TemplateCount       int
	AvgWorkflowProgress float64

	// Support tickets
	TotalTickets         int
	OpenTickets          int
	ResolvedTickets      int
	TicketResolutionRate float64
	TicketCategories     map[string]int

	// Finance
	TotalTransactions  int
	IncomeCents        int64
	ExpenseCents       int64
	CategorizationRate float64
	ExpenseCategories  map[string]int

	// Ratings
	TotalRatings  int
	AverageRating float64
	RecentRatings int

	// Documents
	TotalDocuments     int
	DocumentCategories map[string]int

	// Hiring
	OpenPostings    int
	TotalApplicants int
	PipelineActive  int
	HiredApplicants int

	// Skills
	SkillCount      int
	AssignmentCount int
	AvgSkillLevel   float64

	// Hygiene
	HygienePlans        int
	OverdueHygienePlans int

	// Holiday
	PendingHolidayRequests  int
	ApprovedHolidayRequests int

	// SEO
	KeywordCount       int
	AvgKeywordPosition float64
	AuditCount         int
	AvgAuditScore      float64

	// Email
	EmailAccounts       int
	ActiveEmailAccounts int

	// Forms
	TotalForms     int
	PublishedForms int

	// Change log
	ChangesLast30Days int
}

// rate returns part/total as a percentage rounded to one decimal. A
// zero total yields 0, never NaN.
func rate(part, total int) float64 {
	if total == 0 {
		return 0
	}
	return math.Round(float64(part)/float64(total)*1000) / 10
}

// average returns sum/n, 0 when n is 0.
func average(sum float64, n int) float64 {
	if n == 0 {
		return 0
	}
	return math.Round(sum/float64(n)*10) / 10
}

// bucket returns the distribution label for an optional category.
func bucket(category *string) string {
	if category == nil || *category == "" {
		return "Unassigned"
	}
	return *category
}

// deriveMetrics is a pure function from raw rows to a Snapshot. All
// zero-denominator cases yield neutral values; nil optionals count as
// zero or land in the Unassigned bucket.
func deriveMetrics(raw rawData, now time.Time) Snapshot {
	var s Snapshot

	if raw.practice != nil {
		s.PracticeName = raw.practice.Name
		if raw.practice.Specialty != nil {
			s.Specialty = *raw.practice.Specialty
		}
		if raw.practice.City != nil {
			s.City = *raw.practice.City
		}
		if raw.practice.FoundedYear != nil {
			s.FoundedYear = *raw.practice.FoundedYear
		}
	}

	s.TeamSize = len(raw.members)
	s.RoleCounts = map[string]int{}
	for _, m := range raw.members {
		if m.Employment == team.EmploymentActive {
			s.ActiveMembers++
			s.TotalFTE += m.FTE
		}
		if m.Role != "" {
			s.RoleCounts[m.Role]++
		}
	}

	s.TotalPositions = len(raw.positions)
	for _, p := range raw.positions {
		if p.Vacant() {
			s.VacantPositions++
		}
	}
	s.ResponsibilityCount = len(raw.responsibilities)

	s.TotalGoals = len(raw.goals)
	var progressSum float64
	for _, g := range raw.goals {
		progressSum += float64(g.Progress)
		switch g.Status {
		case goals.StatusActive:
			s.ActiveGoals++
		case goals.StatusCompleted:
			s.CompletedGoals++
		}
		if g.Overdue(now) {
			s.OverdueGoals++
		}
	}
	s.GoalCompletionRate = rate(s.CompletedGoals, s.TotalGoals)
	s.AvgGoalProgress = average(progressSum, s.TotalGoals)

	s.TotalTodos = len(raw.todos)
	for _, t := range raw.todos {
		if t.Done {
			s.DoneTodos++
		}
	}
	s.TodoCompletionRate = rate(s.DoneTodos, s.TotalTodos)

	s.TotalWorkflows = len(raw.workflows)
	var wfProgress float64
	for _, w := range raw.workflows {
		switch w.Status {
		case workflows.StatusActive:
			s.ActiveWorkflows++
		case workflows.StatusBlocked:
			s.BlockedWorkflows++
		}
		if w.StepsTotal > 0 {
			wfProgress += float64(w.StepsDone) / float64(w.StepsTotal) * 100
		}
	}
	s.AvgWorkflowProgress = average(wfProgress, s.TotalWorkflows)
	s.TemplateCount = len(raw.templates)

	s.TotalTickets = len(raw.tickets)
	s.TicketCategories = map[string]int{}
	for _, t := range raw.tickets {
		switch t.Status {
		case tickets.StatusOpen, tickets.StatusInProgress:
			s.OpenTickets++
		case tickets.StatusResolved, tickets.StatusClosed:
			s.ResolvedTickets++
		}
		s.TicketCategories[bucket(t.Category)]++
	}
	s.TicketResolutionRate = rate(s.ResolvedTickets, s.TotalTickets)

	s.TotalTransactions = len(raw.transactions)
	s.ExpenseCategories = map[string]int{}
	categorized := 0
	for _, t := range raw.transactions {
		if t.Kind == finance.KindIncome {
			s.IncomeCents += t.AmountCents
		} else {
			s.ExpenseCents += t.AmountCents
			s.ExpenseCategories[bucket(t.Category)]++
		}
		if t.Category != nil && *t.Category != "" {
			categorized++
		}
	}
	s.CategorizationRate = rate(categorized, s.TotalTransactions)

	s.TotalRatings = len(raw.ratings)
	var starSum float64
	cutoff := now.AddDate(0, 0, -30)
	for _, r := range raw.ratings {
		starSum += float64(r.Stars)
		if !r.RatedAt.Before(cutoff) {
			s.RecentRatings++
		}
	}
	s.AverageRating = average(starSum, s.TotalRatings)

	s.TotalDocuments = len(raw.documents)
	s.DocumentCategories = map[string]int{}
	for _, d := range raw.documents {
		s.DocumentCategories[d.Category]++
	}

	for _, p := range raw.postings {
		if p.Status == hiring.PostingOpen {
			s.OpenPostings++
		}
	}
	s.TotalApplicants = len(raw.applicants)
	for _, a := range raw.applicants {
		switch a.Stage {
		case hiring.StageHired:
			s.HiredApplicants++
		case hiring.StageRejected:
		default:
			s.PipelineActive++
		}
	}

	s.SkillCount = len(raw.skills)
	s.AssignmentCount = len(raw.assignments)
	var levelSum float64
	for _, a := range raw.assignments {
		levelSum += float64(a.Level)
	}
	s.AvgSkillLevel = average(levelSum, s.AssignmentCount)

	s.HygienePlans = len(raw.hygienePlans)
	for _, p := range raw.hygienePlans {
		if p.Overdue(now) {
			s.OverdueHygienePlans++
		}
	}

	for _, hr := range raw.holidayRequests {
		switch hr.Status {
		case holiday.StatusRequested:
			s.PendingHolidayRequests++
		case holiday.StatusApproved:
			s.ApprovedHolidayRequests++
		}
	}

	s.KeywordCount = len(raw.keywords)
	var posSum float64
	for _, k := range raw.keywords {
		posSum += float64(k.Position)
	}
	s.AvgKeywordPosition = average(posSum, s.KeywordCount)

	s.AuditCount = len(raw.audits)
	var scoreSum float64
	for _, a := range raw.audits {
		scoreSum += float64(a.Score)
	}
	s.AvgAuditScore = average(scoreSum, s.AuditCount)

	s.EmailAccounts = len(raw.emailAccounts)
	for _, a := range raw.emailAccounts {
		if a.Active {
			s.ActiveEmailAccounts++
		}
	}

	s.TotalForms = len(raw.forms)
	for _, f := range raw.forms {
		if f.Status == "published" {
			s.PublishedForms++
		}
	}

	for _, e := range raw.changeEvents {
		if !e.CreatedAt.Before(cutoff) {
			s.ChangesLast30Days++
		}
	}

	return s
}
