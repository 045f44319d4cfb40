package ratings

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

type Service struct {
	ratings Repository
}

func NewService(ratings Repository) *Service {
	return &Service{ratings: ratings}
}

func (s *Service) Create(ctx context.Context, rt *Rating) error {
	if rt.Stars < 1 || rt.Stars > 5 {
		return fmt.Errorf("stars must be between 1 and 5")
	}
	if rt.Source == "" {
		rt.Source = "manual"
	}
	if rt.RatedAt.IsZero() {
		rt.RatedAt = time.Now()
	}
	return s.ratings.Create(ctx, rt)
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Rating, error) {
	return s.ratings.GetByID(ctx, id)
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.ratings.Delete(ctx, id)
}

func (s *Service) List(ctx context.Context, limit, offset int) ([]*Rating, int, error) {
	return s.ratings.List(ctx, limit, offset)
}
