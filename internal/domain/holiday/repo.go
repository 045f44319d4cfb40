package holiday

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	Create(ctx context.Context, r *HolidayRequest) error
	GetByID(ctx context.Context, id uuid.UUID) (*HolidayRequest, error)
	Update(ctx context.Context, r *HolidayRequest) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, limit, offset int) ([]*HolidayRequest, int, error)
	ApprovedDays(ctx context.Context, memberID uuid.UUID, year int) (int, error)
}
