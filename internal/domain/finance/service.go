package finance

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

type Service struct {
	transactions Repository
}

func NewService(transactions Repository) *Service {
	return &Service{transactions: transactions}
}

func (s *Service) validate(t *Transaction) error {
	if t.Description == "" {
		return fmt.Errorf("description is required")
	}
	if t.AmountCents <= 0 {
		return fmt.Errorf("amount must be positive")
	}
	if t.Kind != KindIncome && t.Kind != KindExpense {
		return fmt.Errorf("invalid kind: %s", t.Kind)
	}
	return nil
}

func (s *Service) Create(ctx context.Context, t *Transaction) error {
	if t.BookedAt.IsZero() {
		t.BookedAt = time.Now()
	}
	if err := s.validate(t); err != nil {
		return err
	}
	return s.transactions.Create(ctx, t)
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Transaction, error) {
	return s.transactions.GetByID(ctx, id)
}

func (s *Service) Update(ctx context.Context, t *Transaction) error {
	if err := s.validate(t); err != nil {
		return err
	}
	return s.transactions.Update(ctx, t)
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.transactions.Delete(ctx, id)
}

func (s *Service) List(ctx context.Context, limit, offset int) ([]*Transaction, int, error) {
	return s.transactions.List(ctx, limit, offset)
}
