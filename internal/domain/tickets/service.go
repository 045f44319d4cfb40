package tickets

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

var validStatuses = map[string]bool{
	StatusOpen: true, StatusInProgress: true, StatusResolved: true, StatusClosed: true,
}

var validPriorities = map[string]bool{
	"low": true, "normal": true, "high": true, "urgent": true,
}

type Service struct {
	tickets Repository
}

func NewService(tickets Repository) *Service {
	return &Service{tickets: tickets}
}

func (s *Service) Create(ctx context.Context, t *Ticket) error {
	if t.Subject == "" {
		return fmt.Errorf("subject is required")
	}
	if t.Status == "" {
		t.Status = StatusOpen
	}
	if !validStatuses[t.Status] {
		return fmt.Errorf("invalid status: %s", t.Status)
	}
	if t.Priority == "" {
		t.Priority = "normal"
	}
	if !validPriorities[t.Priority] {
		return fmt.Errorf("invalid priority: %s", t.Priority)
	}
	return s.tickets.Create(ctx, t)
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Ticket, error) {
	return s.tickets.GetByID(ctx, id)
}

func (s *Service) Update(ctx context.Context, t *Ticket) error {
	if t.Status != "" && !validStatuses[t.Status] {
		return fmt.Errorf("invalid status: %s", t.Status)
	}
	// Stamp resolution time on transition into a terminal state.
	if t.Settled() && t.ResolvedAt == nil {
		now := time.Now()
		t.ResolvedAt = &now
	}
	return s.tickets.Update(ctx, t)
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.tickets.Delete(ctx, id)
}

func (s *Service) List(ctx context.Context, limit, offset int) ([]*Ticket, int, error) {
	return s.tickets.List(ctx, limit, offset)
}
