package hygiene

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type Repository interface {
	Create(ctx context.Context, p *HygienePlan) error
	GetByID(ctx context.Context, id uuid.UUID) (*HygienePlan, error)
	Update(ctx context.Context, p *HygienePlan) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, limit, offset int) ([]*HygienePlan, int, error)
	MarkDone(ctx context.Context, id uuid.UUID, at time.Time) error
}
