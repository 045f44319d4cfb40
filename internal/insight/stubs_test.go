package insight

import (
	"context"
	"time"

	"github.com/google/uuid"

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

// Hand-rolled stubs for the read-side interfaces. Each stub serves a
// fixed slice (or error) from memory; write methods are no-ops.

type stubPractices struct {
	p   *practice.Practice
	err error
}

func (s stubPractices) Create(context.Context, *practice.Practice) error { return nil }
func (s stubPractices) GetByID(context.Context, uuid.UUID) (*practice.Practice, error) {
	return s.p, s.err
}
func (s stubPractices) GetBySlug(context.Context, string) (*practice.Practice, error) {
	return s.p, s.err
}
func (s stubPractices) Update(context.Context, *practice.Practice) error { return nil }
func (s stubPractices) Delete(context.Context, uuid.UUID) error          { return nil }
func (s stubPractices) List(context.Context, int, int) ([]*practice.Practice, int, error) {
	return nil, 0, nil
}

type stubSettings struct {
	s   *practice.Settings
	err error
}

func (s stubSettings) Get(context.Context, uuid.UUID) (*practice.Settings, error) {
	return s.s, s.err
}
func (s stubSettings) Upsert(context.Context, *practice.Settings) error { return nil }

type stubMembers struct {
	items []*team.TeamMember
	err   error
}

func (s stubMembers) Create(context.Context, *team.TeamMember) error { return nil }
func (s stubMembers) GetByID(context.Context, uuid.UUID) (*team.TeamMember, error) {
	return nil, nil
}
func (s stubMembers) Update(context.Context, *team.TeamMember) error { return nil }
func (s stubMembers) Delete(context.Context, uuid.UUID) error        { return nil }
func (s stubMembers) List(context.Context, int, int) ([]*team.TeamMember, int, error) {
	return s.items, len(s.items), s.err
}

type stubPositions struct{ items []*team.Position }

func (s stubPositions) Create(context.Context, *team.Position) error { return nil }
func (s stubPositions) GetByID(context.Context, uuid.UUID) (*team.Position, error) {
	return nil, nil
}
func (s stubPositions) Update(context.Context, *team.Position) error { return nil }
func (s stubPositions) Delete(context.Context, uuid.UUID) error      { return nil }
func (s stubPositions) List(context.Context, int, int) ([]*team.Position, int, error) {
	return s.items, len(s.items), nil
}

type stubResponsibilities struct{ items []*team.Responsibility }

func (s stubResponsibilities) Create(context.Context, *team.Responsibility) error { return nil }
func (s stubResponsibilities) Delete(context.Context, uuid.UUID) error            { return nil }
func (s stubResponsibilities) ListByPosition(context.Context, uuid.UUID) ([]*team.Responsibility, error) {
	return nil, nil
}
func (s stubResponsibilities) List(context.Context, int, int) ([]*team.Responsibility, int, error) {
	return s.items, len(s.items), nil
}

type stubGoals struct{ items []*goals.Goal }

func (s stubGoals) Create(context.Context, *goals.Goal) error                { return nil }
func (s stubGoals) GetByID(context.Context, uuid.UUID) (*goals.Goal, error)  { return nil, nil }
func (s stubGoals) Update(context.Context, *goals.Goal) error                { return nil }
func (s stubGoals) Delete(context.Context, uuid.UUID) error                  { return nil }
func (s stubGoals) List(context.Context, int, int) ([]*goals.Goal, int, error) {
	return s.items, len(s.items), nil
}

type stubTodos struct{ items []*goals.Todo }

func (s stubTodos) Create(context.Context, *goals.Todo) error               { return nil }
func (s stubTodos) GetByID(context.Context, uuid.UUID) (*goals.Todo, error) { return nil, nil }
func (s stubTodos) Update(context.Context, *goals.Todo) error               { return nil }
func (s stubTodos) Delete(context.Context, uuid.UUID) error                 { return nil }
func (s stubTodos) List(context.Context, int, int) ([]*goals.Todo, int, error) {
	return s.items, len(s.items), nil
}

type stubWorkflows struct{ items []*workflows.Workflow }

func (s stubWorkflows) Create(context.Context, *workflows.Workflow) error { return nil }
func (s stubWorkflows) GetByID(context.Context, uuid.UUID) (*workflows.Workflow, error) {
	return nil, nil
}
func (s stubWorkflows) Update(context.Context, *workflows.Workflow) error { return nil }
func (s stubWorkflows) Delete(context.Context, uuid.UUID) error           { return nil }
func (s stubWorkflows) List(context.Context, int, int) ([]*workflows.Workflow, int, error) {
	return s.items, len(s.items), nil
}

type stubTemplates struct{ items []*workflows.Template }

func (s stubTemplates) List(context.Context, int, int) ([]*workflows.Template, int, error) {
	return s.items, len(s.items), nil
}
func (s stubTemplates) GetByID(context.Context, uuid.UUID) (*workflows.Template, error) {
	return nil, nil
}

type stubTickets struct {
	items []*tickets.Ticket
	err   error
}

func (s stubTickets) Create(context.Context, *tickets.Ticket) error { return nil }
func (s stubTickets) GetByID(context.Context, uuid.UUID) (*tickets.Ticket, error) {
	return nil, nil
}
func (s stubTickets) Update(context.Context, *tickets.Ticket) error { return nil }
func (s stubTickets) Delete(context.Context, uuid.UUID) error       { return nil }
func (s stubTickets) List(context.Context, int, int) ([]*tickets.Ticket, int, error) {
	return s.items, len(s.items), s.err
}

type stubTransactions struct{ items []*finance.Transaction }

func (s stubTransactions) Create(context.Context, *finance.Transaction) error { return nil }
func (s stubTransactions) GetByID(context.Context, uuid.UUID) (*finance.Transaction, error) {
	return nil, nil
}
func (s stubTransactions) Update(context.Context, *finance.Transaction) error { return nil }
func (s stubTransactions) Delete(context.Context, uuid.UUID) error            { return nil }
func (s stubTransactions) List(context.Context, int, int) ([]*finance.Transaction, int, error) {
	return s.items, len(s.items), nil
}

type stubRatings struct{ items []*ratings.Rating }

func (s stubRatings) Create(context.Context, *ratings.Rating) error { return nil }
func (s stubRatings) GetByID(context.Context, uuid.UUID) (*ratings.Rating, error) {
	return nil, nil
}
func (s stubRatings) Delete(context.Context, uuid.UUID) error { return nil }
func (s stubRatings) List(context.Context, int, int) ([]*ratings.Rating, int, error) {
	return s.items, len(s.items), nil
}

type stubDocuments struct{ items []*documents.Document }

func (s stubDocuments) Create(context.Context, *documents.Document) error { return nil }
func (s stubDocuments) GetByID(context.Context, uuid.UUID) (*documents.Document, error) {
	return nil, nil
}
func (s stubDocuments) Update(context.Context, *documents.Document) error { return nil }
func (s stubDocuments) Delete(context.Context, uuid.UUID) error           { return nil }
func (s stubDocuments) List(context.Context, int, int) ([]*documents.Document, int, error) {
	return s.items, len(s.items), nil
}

type stubPostings struct{ items []*hiring.JobPosting }

func (s stubPostings) Create(context.Context, *hiring.JobPosting) error { return nil }
func (s stubPostings) GetByID(context.Context, uuid.UUID) (*hiring.JobPosting, error) {
	return nil, nil
}
func (s stubPostings) Update(context.Context, *hiring.JobPosting) error { return nil }
func (s stubPostings) Delete(context.Context, uuid.UUID) error          { return nil }
func (s stubPostings) List(context.Context, int, int) ([]*hiring.JobPosting, int, error) {
	return s.items, len(s.items), nil
}

type stubApplicants struct{ items []*hiring.Applicant }

func (s stubApplicants) Create(context.Context, *hiring.Applicant) error { return nil }
func (s stubApplicants) GetByID(context.Context, uuid.UUID) (*hiring.Applicant, error) {
	return nil, nil
}
func (s stubApplicants) Update(context.Context, *hiring.Applicant) error { return nil }
func (s stubApplicants) Delete(context.Context, uuid.UUID) error         { return nil }
func (s stubApplicants) List(context.Context, int, int) ([]*hiring.Applicant, int, error) {
	return s.items, len(s.items), nil
}
func (s stubApplicants) ListByPosting(context.Context, uuid.UUID) ([]*hiring.Applicant, error) {
	return nil, nil
}

type stubSkills struct{ items []*skills.Skill }

func (s stubSkills) Create(context.Context, *skills.Skill) error { return nil }
func (s stubSkills) GetByID(context.Context, uuid.UUID) (*skills.Skill, error) {
	return nil, nil
}
func (s stubSkills) Update(context.Context, *skills.Skill) error { return nil }
func (s stubSkills) Delete(context.Context, uuid.UUID) error     { return nil }
func (s stubSkills) List(context.Context, int, int) ([]*skills.Skill, int, error) {
	return s.items, len(s.items), nil
}

type stubAssignments struct{ items []*skills.SkillAssignment }

func (s stubAssignments) Upsert(context.Context, *skills.SkillAssignment) error { return nil }
func (s stubAssignments) Delete(context.Context, uuid.UUID) error               { return nil }
func (s stubAssignments) List(context.Context, int, int) ([]*skills.SkillAssignment, int, error) {
	return s.items, len(s.items), nil
}
func (s stubAssignments) ListByMember(context.Context, uuid.UUID) ([]*skills.SkillAssignment, error) {
	return nil, nil
}

type stubHygiene struct{ items []*hygiene.HygienePlan }

func (s stubHygiene) Create(context.Context, *hygiene.HygienePlan) error { return nil }
func (s stubHygiene) GetByID(context.Context, uuid.UUID) (*hygiene.HygienePlan, error) {
	return nil, nil
}
func (s stubHygiene) Update(context.Context, *hygiene.HygienePlan) error { return nil }
func (s stubHygiene) Delete(context.Context, uuid.UUID) error            { return nil }
func (s stubHygiene) List(context.Context, int, int) ([]*hygiene.HygienePlan, int, error) {
	return s.items, len(s.items), nil
}
func (s stubHygiene) MarkDone(context.Context, uuid.UUID, time.Time) error { return nil }

type stubHoliday struct{ items []*holiday.HolidayRequest }

func (s stubHoliday) Create(context.Context, *holiday.HolidayRequest) error { return nil }
func (s stubHoliday) GetByID(context.Context, uuid.UUID) (*holiday.HolidayRequest, error) {
	return nil, nil
}
func (s stubHoliday) Update(context.Context, *holiday.HolidayRequest) error { return nil }
func (s stubHoliday) Delete(context.Context, uuid.UUID) error               { return nil }
func (s stubHoliday) List(context.Context, int, int) ([]*holiday.HolidayRequest, int, error) {
	return s.items, len(s.items), nil
}
func (s stubHoliday) ApprovedDays(context.Context, uuid.UUID, int) (int, error) { return 0, nil }

type stubKeywords struct{ items []*seo.KeywordSnapshot }

func (s stubKeywords) Create(context.Context, *seo.KeywordSnapshot) error { return nil }
func (s stubKeywords) Delete(context.Context, uuid.UUID) error            { return nil }
func (s stubKeywords) List(context.Context, int, int) ([]*seo.KeywordSnapshot, int, error) {
	return s.items, len(s.items), nil
}

type stubAudits struct{ items []*seo.PageAudit }

func (s stubAudits) Create(context.Context, *seo.PageAudit) error { return nil }
func (s stubAudits) Delete(context.Context, uuid.UUID) error      { return nil }
func (s stubAudits) List(context.Context, int, int) ([]*seo.PageAudit, int, error) {
	return s.items, len(s.items), nil
}

type stubAccounts struct{ items []*email.EmailAccount }

func (s stubAccounts) Create(context.Context, *email.EmailAccount) error { return nil }
func (s stubAccounts) GetByID(context.Context, uuid.UUID) (*email.EmailAccount, error) {
	return nil, nil
}
func (s stubAccounts) Update(context.Context, *email.EmailAccount) error { return nil }
func (s stubAccounts) Delete(context.Context, uuid.UUID) error           { return nil }
func (s stubAccounts) List(context.Context, int, int) ([]*email.EmailAccount, int, error) {
	return s.items, len(s.items), nil
}

type stubForms struct{ items []*forms.Form }

func (s stubForms) Create(context.Context, *forms.Form) error                { return nil }
func (s stubForms) GetByID(context.Context, uuid.UUID) (*forms.Form, error)  { return nil, nil }
func (s stubForms) Update(context.Context, *forms.Form) error                { return nil }
func (s stubForms) Delete(context.Context, uuid.UUID) error                  { return nil }
func (s stubForms) List(context.Context, int, int) ([]*forms.Form, int, error) {
	return s.items, len(s.items), nil
}

type stubChangeEvents struct{ items []*events.ChangeEvent }

func (s stubChangeEvents) Append(context.Context, *events.ChangeEvent) error { return nil }
func (s stubChangeEvents) List(context.Context, int, int) ([]*events.ChangeEvent, int, error) {
	return s.items, len(s.items), nil
}

type stubHistory struct {
	inserted []*events.InsightHistory
	err      error
}

func (s *stubHistory) Insert(_ context.Context, h *events.InsightHistory) error {
	if s.err != nil {
		return s.err
	}
	s.inserted = append(s.inserted, h)
	return nil
}
func (s *stubHistory) List(context.Context, int, int) ([]*events.InsightHistory, int, error) {
	return s.inserted, len(s.inserted), nil
}

type stubGenerator struct {
	text string
	err  error
}

func (g stubGenerator) Generate(context.Context, string, string) (string, error) {
	return g.text, g.err
}

// emptyRepos returns a Repos bundle where every collection is empty
// and the practice has AI analysis enabled. Tests override fields.
func emptyRepos(practiceID uuid.UUID) Repos {
	return Repos{
		Practices:        stubPractices{p: &practice.Practice{ID: practiceID, Name: "Testpraxis"}},
		Settings:         stubSettings{s: &practice.Settings{PracticeID: practiceID, AIEnabled: true}},
		Members:          stubMembers{},
		Positions:        stubPositions{},
		Responsibilities: stubResponsibilities{},
		Goals:            stubGoals{},
		Todos:            stubTodos{},
		Workflows:        stubWorkflows{},
		Templates:        stubTemplates{},
		Tickets:          stubTickets{},
		Transactions:     stubTransactions{},
		Ratings:          stubRatings{},
		Documents:        stubDocuments{},
		Postings:         stubPostings{},
		Applicants:       stubApplicants{},
		Skills:           stubSkills{},
		Assignments:      stubAssignments{},
		HygienePlans:     stubHygiene{},
		HolidayRequests:  stubHoliday{},
		Keywords:         stubKeywords{},
		Audits:           stubAudits{},
		EmailAccounts:    stubAccounts{},
		Forms:            stubForms{},
		ChangeEvents:     stubChangeEvents{},
		History:          &stubHistory{},
	}
}
