package insight

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

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
)

// Row limits for the fan-out. Each read is newest-first and bounded so
// one oversized tenant cannot stall analysis.
const (
	defaultLimit     = 1000
	transactionLimit = 500
	changeEventLimit = 200
	ratingLimit      = 50
)

// rawData holds one named slot per collection. Every slot is written
// by exactly one goroutine, so no locking is needed.
type rawData struct {
	practice         *practice.Practice
	members          []*team.TeamMember
	positions        []*team.Position
	responsibilities []*team.Responsibility
	goals            []*goals.Goal
	todos            []*goals.Todo
	workflows        []*workflows.Workflow
	templates        []*workflows.Template
	tickets          []*tickets.Ticket
	transactions     []*finance.Transaction
	ratings          []*ratings.Rating
	documents        []*documents.Document
	postings         []*hiring.JobPosting
	applicants       []*hiring.Applicant
	skills           []*skills.Skill
	assignments      []*skills.SkillAssignment
	hygienePlans     []*hygiene.HygienePlan
	holidayRequests  []*holiday.HolidayRequest
	keywords         []*seo.KeywordSnapshot
	audits           []*seo.PageAudit
	emailAccounts    []*email.EmailAccount
	forms            []*forms.Form
	changeEvents     []*events.ChangeEvent
}

// ConnSource hands each fan-out read its own tenant-scoped database
// connection. The connection the tenant middleware pins to the request
// serves one query at a time, so the concurrent batch must not share it.
type ConnSource interface {
	// Scoped returns a child context carrying a dedicated connection
	// for the practice recorded in ctx, plus its release func.
	Scoped(ctx context.Context) (context.Context, func(), error)
}

// softQuery leases a connection from conns, runs fn on it and
// substitutes fallback on any error. Domain reads must never abort the
// aggregation; the failure is logged and the metrics for that
// collection derive from the empty set.
func softQuery[T any](ctx context.Context, conns ConnSource, name string, fallback T, fn func(context.Context) (T, error)) T {
	if conns != nil {
		scoped, release, err := conns.Scoped(ctx)
		if err != nil {
			log.Warn().Err(err).Str("collection", name).Msg("insight query soft-failed")
			return fallback
		}
		defer release()
		ctx = scoped
	}
	out, err := fn(ctx)
	if err != nil {
		log.Warn().Err(err).Str("collection", name).Msg("insight query soft-failed")
		return fallback
	}
	return out
}

// listOnly adapts a paginated List call to the softQuery shape.
func listOnly[T any](limit int, list func(ctx context.Context, limit, offset int) ([]T, int, error)) func(context.Context) ([]T, error) {
	return func(ctx context.Context) ([]T, error) {
		items, _, err := list(ctx, limit, 0)
		return items, err
	}
}

// fetchAll issues the collection reads as one concurrent batch. Every
// read soft-fails independently, so Wait never reports an error.
func (s *Service) fetchAll(ctx context.Context, practiceID uuid.UUID) rawData {
	var raw rawData
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		raw.practice = softQuery(gctx, s.conns, "practice", nil, func(ctx context.Context) (*practice.Practice, error) {
			return s.practices.GetByID(ctx, practiceID)
		})
		return nil
	})
	g.Go(func() error {
		raw.members = softQuery(gctx, s.conns, "team_members", nil, listOnly(defaultLimit, s.members.List))
		return nil
	})
	g.Go(func() error {
		raw.positions = softQuery(gctx, s.conns, "positions", nil, listOnly(defaultLimit, s.positions.List))
		return nil
	})
	g.Go(func() error {
		raw.responsibilities = softQuery(gctx, s.conns, "responsibilities", nil, listOnly(defaultLimit, s.responsibilities.List))
		return nil
	})
	g.Go(func() error {
		raw.goals = softQuery(gctx, s.conns, "goals", nil, listOnly(defaultLimit, s.goals.List))
		return nil
	})
	g.Go(func() error {
		raw.todos = softQuery(gctx, s.conns, "todos", nil, listOnly(defaultLimit, s.todos.List))
		return nil
	})
	g.Go(func() error {
		raw.workflows = softQuery(gctx, s.conns, "workflows", nil, listOnly(defaultLimit, s.workflows.List))
		return nil
	})
	g.Go(func() error {
		raw.templates = softQuery(gctx, s.conns, "workflow_templates", nil, listOnly(defaultLimit, s.templates.List))
		return nil
	})
	g.Go(func() error {
		raw.tickets = softQuery(gctx, s.conns, "tickets", nil, listOnly(defaultLimit, s.tickets.List))
		return nil
	})
	g.Go(func() error {
		raw.transactions = softQuery(gctx, s.conns, "transactions", nil, listOnly(transactionLimit, s.transactions.List))
		return nil
	})
	g.Go(func() error {
		raw.ratings = softQuery(gctx, s.conns, "ratings", nil, listOnly(ratingLimit, s.ratings.List))
		return nil
	})
	g.Go(func() error {
		raw.documents = softQuery(gctx, s.conns, "documents", nil, listOnly(defaultLimit, s.documents.List))
		return nil
	})
	g.Go(func() error {
		raw.postings = softQuery(gctx, s.conns, "job_postings", nil, listOnly(defaultLimit, s.postings.List))
		return nil
	})
	g.Go(func() error {
		raw.applicants = softQuery(gctx, s.conns, "applicants", nil, listOnly(defaultLimit, s.applicants.List))
		return nil
	})
	g.Go(func() error {
		raw.skills = softQuery(gctx, s.conns, "skills", nil, listOnly(defaultLimit, s.skills.List))
		return nil
	})
	g.Go(func() error {
		raw.assignments = softQuery(gctx, s.conns, "skill_assignments", nil, listOnly(defaultLimit, s.assignments.List))
		return nil
	})
	g.Go(func() error {
		raw.hygienePlans = softQuery(gctx, s.conns, "hygiene_plans", nil, listOnly(defaultLimit, s.hygienePlans.List))
		return nil
	})
	g.Go(func() error {
		raw.holidayRequests = softQuery(gctx, s.conns, "holiday_requests", nil, listOnly(defaultLimit, s.holidayRequests.List))
		return nil
	})
	g.Go(func() error {
		raw.keywords = softQuery(gctx, s.conns, "seo_keywords", nil, listOnly(defaultLimit, s.keywords.List))
		return nil
	})
	g.Go(func() error {
		raw.audits = softQuery(gctx, s.conns, "page_audits", nil, listOnly(defaultLimit, s.audits.List))
		return nil
	})
	g.Go(func() error {
		raw.emailAccounts = softQuery(gctx, s.conns, "email_accounts", nil, listOnly(defaultLimit, s.emailAccounts.List))
		return nil
	})
	g.Go(func() error {
		raw.forms = softQuery(gctx, s.conns, "forms", nil, listOnly(defaultLimit, s.forms.List))
		return nil
	})
	g.Go(func() error {
		raw.changeEvents = softQuery(gctx, s.conns, "change_events", nil, listOnly(changeEventLimit, s.changeEvents.List))
		return nil
	})

	_ = g.Wait()
	return raw
}
