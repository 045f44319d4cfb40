package hygiene

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

type Service struct {
	plans Repository
}

func NewService(plans Repository) *Service {
	return &Service{plans: plans}
}

func (s *Service) validate(p *HygienePlan) error {
	if p.Name == "" {
		return fmt.Errorf("name is required")
	}
	if p.Area == "" {
		return fmt.Errorf("area is required")
	}
	if p.IntervalDays < 1 {
		return fmt.Errorf("interval_days must be at least 1")
	}
	return nil
}

func (s *Service) Create(ctx context.Context, p *HygienePlan) error {
	if err := s.validate(p); err != nil {
		return err
	}
	return s.plans.Create(ctx, p)
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*HygienePlan, error) {
	return s.plans.GetByID(ctx, id)
}

func (s *Service) Update(ctx context.Context, p *HygienePlan) error {
	if err := s.validate(p); err != nil {
		return err
	}
	return s.plans.Update(ctx, p)
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.plans.Delete(ctx, id)
}

func (s *Service) MarkDone(ctx context.Context, id uuid.UUID) error {
	return s.plans.MarkDone(ctx, id, time.Now())
}

func (s *Service) List(ctx context.Context, limit, offset int) ([]*HygienePlan, int, error) {
	return s.plans.List(ctx, limit, offset)
}
