package insight

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/praxis/praxis/internal/domain/documents"
	"github.com/praxis/praxis/internal/domain/email"
	"github.com/praxis/praxis/internal/domain/events"
	"github.com/praxis/praxis/internal/domain/finance"
	"github.com/praxis/praxis/internal/domain/forms"
	"github.com/praxis/praxis/internal/domain/goals"
	"github.com/praxis/praxis/internal/domain/hiring"
	"github.com/praxis/praxis/internal/domain/holiday"
	"github.com/praxis/praxis/internal/domain/hygiene"
	"github.com/praxis/praxis/internal/domain/practice"
	"github.com/praxis/praxis/internal/domain/ratings"
	"github.com/praxis/praxis/internal/domain/seo"
	"github.com/praxis/praxis/internal/domain/skills"
	"github.com/praxis/praxis/internal/domain/team"
	"github.com/praxis/praxis/internal/domain/tickets"
	"github.com/praxis/praxis/internal/domain/workflows"
	"github.com/praxis/praxis/internal/platform/auth"
	"github.com/praxis/praxis/internal/platform/llm"
)

// BenchmarkSource supplies the optional anonymized cross-tenant
// context block for the prompt. Only consulted when the tenant has
// opted into analytics sharing.
type BenchmarkSource interface {
	Context(ctx context.Context) (string, error)
}

// Repos bundles the read-side dependencies of the aggregator.
type Repos struct {
	Practices        practice.Repository
	Settings         practice.SettingsRepository
	Members          team.MemberRepository
	Positions        team.PositionRepository
	Responsibilities team.ResponsibilityRepository
	Goals            goals.GoalRepository
	Todos            goals.TodoRepository
	Workflows        workflows.WorkflowRepository
	Templates        workflows.TemplateRepository
	Tickets          tickets.Repository
	Transactions     finance.Repository
	Ratings          ratings.Repository
	Documents        documents.Repository
	Postings         hiring.PostingRepository
	Applicants       hiring.ApplicantRepository
	Skills           skills.SkillRepository
	Assignments      skills.AssignmentRepository
	HygienePlans     hygiene.Repository
	HolidayRequests  holiday.Repository
	Keywords         seo.KeywordRepository
	Audits           seo.AuditRepository
	EmailAccounts    email.AccountRepository
	Forms            forms.Repository
	ChangeEvents     events.ChangeEventRepository
	History          events.InsightHistoryRepository

	// Conns supplies each fan-out read with its own tenant-scoped
	// connection. Nil means the reads run on the request context
	// directly, which is only safe with in-memory repositories.
	Conns ConnSource
}

type Service struct {
	practices        practice.Repository
	settings         practice.SettingsRepository
	members          team.MemberRepository
	positions        team.PositionRepository
	responsibilities team.ResponsibilityRepository
	goals            goals.GoalRepository
	todos            goals.TodoRepository
	workflows        workflows.WorkflowRepository
	templates        workflows.TemplateRepository
	tickets          tickets.Repository
	transactions     finance.Repository
	ratings          ratings.Repository
	documents        documents.Repository
	postings         hiring.PostingRepository
	applicants       hiring.ApplicantRepository
	skills           skills.SkillRepository
	assignments      skills.AssignmentRepository
	hygienePlans     hygiene.Repository
	holidayRequests  holiday.Repository
	keywords         seo.KeywordRepository
	audits           seo.AuditRepository
	emailAccounts    email.AccountRepository
	forms            forms.Repository
	changeEvents     events.ChangeEventRepository
	history          events.InsightHistoryRepository

	conns      ConnSource
	gen        llm.Generator
	benchmarks BenchmarkSource
}

func NewService(r Repos, gen llm.Generator, benchmarks BenchmarkSource) *Service {
	return &Service{
		practices:        r.Practices,
		settings:         r.Settings,
		members:          r.Members,
		positions:        r.Positions,
		responsibilities: r.Responsibilities,
		goals:            r.Goals,
		todos:            r.Todos,
		workflows:        r.Workflows,
		templates:        r.Templates,
		tickets:          r.Tickets,
		transactions:     r.Transactions,
		ratings:          r.Ratings,
		documents:        r.Documents,
		postings:         r.Postings,
		applicants:       r.Applicants,
		skills:           r.Skills,
		assignments:      r.Assignments,
		hygienePlans:     r.HygienePlans,
		holidayRequests:  r.HolidayRequests,
		keywords:         r.Keywords,
		audits:           r.Audits,
		emailAccounts:    r.EmailAccounts,
		forms:            r.Forms,
		changeEvents:     r.ChangeEvents,
		history:          r.History,
		conns:            r.Conns,
		gen:              gen,
		benchmarks:       benchmarks,
	}
}

// AnalyzeRequest carries the caller identity and target practice.
type AnalyzeRequest struct {
	PracticeID   string
	UserID       string
	UserPractice string
	Role         string
}

// Analyze runs the full aggregation: authorize, fan out the reads,
// derive metrics, generate (or fall back), persist history, return the
// report. Any authorized call yields a report; only the setup phase
// can fail.
func (s *Service) Analyze(ctx context.Context, req AnalyzeRequest) (*InsightReport, error) {
	if req.UserID == "" {
		return nil, ErrUnauthenticated
	}
	if req.PracticeID == "" {
		return nil, ErrPracticeRequired
	}
	if !auth.CanAccessPractice(req.Role, req.UserPractice, req.PracticeID) {
		log.Warn().
			Str("user_id", req.UserID).
			Str("user_practice", req.UserPractice).
			Str("requested_practice", req.PracticeID).
			Msg("tenant isolation violation attempt")
		return nil, ErrForbidden
	}
	practiceID, err := uuid.Parse(req.PracticeID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid practice id", ErrPracticeRequired)
	}

	// The settings lookup is the one read whose failure is surfaced:
	// rate limiting or transient store trouble here must not be
	// mistaken for a hard error by the caller.
	settings, err := s.settings.Get(ctx, practiceID)
	if err != nil {
		log.Warn().Err(err).Str("practice_id", req.PracticeID).Msg("settings lookup failed")
		return nil, ErrTemporarilyUnavailable
	}
	if !settings.AIEnabled && req.Role != auth.RoleAdmin {
		return nil, ErrFeatureDisabled
	}

	now := time.Now()
	raw := s.fetchAll(ctx, practiceID)
	snap := deriveMetrics(raw, now)

	benchmark := ""
	if settings.AnalyticsSharing && s.benchmarks != nil {
		if b, err := s.benchmarks.Context(ctx); err == nil {
			benchmark = b
		} else {
			log.Warn().Err(err).Msg("benchmark context unavailable")
		}
	}

	report := s.generateOrFallback(ctx, snap, benchmark, now)
	if report.GeneratedAt.IsZero() {
		report.GeneratedAt = now
	}

	s.persistHistory(ctx, req, snap, report)
	return report, nil
}

func (s *Service) generateOrFallback(ctx context.Context, snap Snapshot, benchmark string, now time.Time) *InsightReport {
	text, err := s.gen.Generate(ctx, systemPrompt, buildPrompt(snap, benchmark))
	if err != nil {
		log.Warn().Err(err).Msg("insight generation failed, using fallback scorer")
		return fallbackReport(snap, now)
	}
	report, err := parseReport(text)
	if err != nil {
		log.Warn().Err(err).Msg("generated report unusable, using fallback scorer")
		return fallbackReport(snap, now)
	}
	return report
}

// persistHistory writes the audit row. Best-effort: failure is logged
// and the caller still gets the report.
func (s *Service) persistHistory(ctx context.Context, req AnalyzeRequest, snap Snapshot, report *InsightReport) {
	body, err := json.Marshal(report)
	if err != nil {
		log.Error().Err(err).Msg("insight history marshal failed")
		return
	}
	meta, _ := json.Marshal(map[string]int{
		"teamSize":       snap.TeamSize,
		"totalGoals":     snap.TotalGoals,
		"totalWorkflows": snap.TotalWorkflows,
		"totalDocuments": snap.TotalDocuments,
	})
	h := &events.InsightHistory{
		PracticeID: req.PracticeID,
		UserID:     req.UserID,
		ReportType: "practice_insight",
		Summary:    report.Summary,
		Report:     body,
		Metadata:   meta,
	}
	if err := s.history.Insert(ctx, h); err != nil {
		log.Warn().Err(err).Str("practice_id", req.PracticeID).Msg("insight history write failed")
	}
}
