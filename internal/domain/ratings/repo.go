package ratings

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	Create(ctx context.Context, rt *Rating) error
	GetByID(ctx context.Context, id uuid.UUID) (*Rating, error)
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, limit, offset int) ([]*Rating, int, error)
}
