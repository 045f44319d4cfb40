package hiring

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

var validPostingStatuses = map[string]bool{
	PostingOpen: true, PostingPaused: true, PostingClosed: true,
}

type Service struct {
	postings   PostingRepository
	applicants ApplicantRepository
}

func NewService(postings PostingRepository, applicants ApplicantRepository) *Service {
	return &Service{postings: postings, applicants: applicants}
}

func (s *Service) CreatePosting(ctx context.Context, p *JobPosting) error {
	if p.Title == "" {
		return fmt.Errorf("title is required")
	}
	if p.Status == "" {
		p.Status = PostingOpen
	}
	if !validPostingStatuses[p.Status] {
		return fmt.Errorf("invalid status: %s", p.Status)
	}
	if p.Employ == "" {
		p.Employ = "full_time"
	}
	return s.postings.Create(ctx, p)
}

func (s *Service) GetPosting(ctx context.Context, id uuid.UUID) (*JobPosting, error) {
	return s.postings.GetByID(ctx, id)
}

func (s *Service) UpdatePosting(ctx context.Context, p *JobPosting) error {
	if p.Title == "" {
		return fmt.Errorf("title is required")
	}
	if !validPostingStatuses[p.Status] {
		return fmt.Errorf("invalid status: %s", p.Status)
	}
	return s.postings.Update(ctx, p)
}

func (s *Service) DeletePosting(ctx context.Context, id uuid.UUID) error {
	return s.postings.Delete(ctx, id)
}

func (s *Service) ListPostings(ctx context.Context, limit, offset int) ([]*JobPosting, int, error) {
	return s.postings.List(ctx, limit, offset)
}

func (s *Service) CreateApplicant(ctx context.Context, a *Applicant) error {
	if a.Name == "" {
		return fmt.Errorf("name is required")
	}
	if a.PostingID == uuid.Nil {
		return fmt.Errorf("posting_id is required")
	}
	// Applicants only land on open postings.
	p, err := s.postings.GetByID(ctx, a.PostingID)
	if err != nil {
		return fmt.Errorf("posting not found")
	}
	if p.Status != PostingOpen {
		return fmt.Errorf("posting is not open")
	}
	a.Stage = StageApplied
	if a.AppliedAt.IsZero() {
		a.AppliedAt = time.Now()
	}
	return s.applicants.Create(ctx, a)
}

func (s *Service) GetApplicant(ctx context.Context, id uuid.UUID) (*Applicant, error) {
	return s.applicants.GetByID(ctx, id)
}

// AdvanceApplicant moves an applicant to the next stage. Backwards
// moves are rejected; rejection is allowed from any non-terminal stage.
func (s *Service) AdvanceApplicant(ctx context.Context, id uuid.UUID, stage string) (*Applicant, error) {
	a, err := s.applicants.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !a.CanAdvanceTo(stage) {
		return nil, fmt.Errorf("cannot move applicant from %s to %s", a.Stage, stage)
	}
	a.Stage = stage
	if err := s.applicants.Update(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *Service) UpdateApplicant(ctx context.Context, a *Applicant) error {
	if a.Name == "" {
		return fmt.Errorf("name is required")
	}
	return s.applicants.Update(ctx, a)
}

func (s *Service) DeleteApplicant(ctx context.Context, id uuid.UUID) error {
	return s.applicants.Delete(ctx, id)
}

func (s *Service) ListApplicants(ctx context.Context, limit, offset int) ([]*Applicant, int, error) {
	return s.applicants.List(ctx, limit, offset)
}

func (s *Service) PostingApplicants(ctx context.Context, postingID uuid.UUID) ([]*Applicant, error) {
	return s.applicants.ListByPosting(ctx, postingID)
}
