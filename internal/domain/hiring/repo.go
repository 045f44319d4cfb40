package hiring

import (
	"context"

	"github.com/google/uuid"
)

type PostingRepository interface {
	Create(ctx context.Context, p *JobPosting) error
	GetByID(ctx context.Context, id uuid.UUID) (*JobPosting, error)
	Update(ctx context.Context, p *JobPosting) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, limit, offset int) ([]*JobPosting, int, error)
}

type ApplicantRepository interface {
	Create(ctx context.Context, a *Applicant) error
	GetByID(ctx context.Context, id uuid.UUID) (*Applicant, error)
	Update(ctx context.Context, a *Applicant) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, limit, offset int) ([]*Applicant, int, error)
	ListByPosting(ctx context.Context, postingID uuid.UUID) ([]*Applicant, error)
}
