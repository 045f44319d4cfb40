package goals

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

var validStatuses = map[string]bool{
	StatusActive: true, StatusCompleted: true, StatusArchived: true,
}

type Service struct {
	goals GoalRepository
	todos TodoRepository
}

func NewService(goals GoalRepository, todos TodoRepository) *Service {
	return &Service{goals: goals, todos: todos}
}

// -- Goals --

func (s *Service) CreateGoal(ctx context.Context, g *Goal) error {
	if g.Title == "" {
		return fmt.Errorf("title is required")
	}
	if g.Status == "" {
		g.Status = StatusActive
	}
	if !validStatuses[g.Status] {
		return fmt.Errorf("invalid status: %s", g.Status)
	}
	if g.Progress < 0 || g.Progress > 100 {
		return fmt.Errorf("progress must be in [0,100], got %d", g.Progress)
	}
	return s.goals.Create(ctx, g)
}

func (s *Service) GetGoal(ctx context.Context, id uuid.UUID) (*Goal, error) {
	return s.goals.GetByID(ctx, id)
}

func (s *Service) UpdateGoal(ctx context.Context, g *Goal) error {
	if g.Status != "" && !validStatuses[g.Status] {
		return fmt.Errorf("invalid status: %s", g.Status)
	}
	if g.Progress < 0 || g.Progress > 100 {
		return fmt.Errorf("progress must be in [0,100], got %d", g.Progress)
	}
	// Completing a goal implies full progress.
	if g.Status == StatusCompleted {
		g.Progress = 100
	}
	return s.goals.Update(ctx, g)
}

func (s *Service) DeleteGoal(ctx context.Context, id uuid.UUID) error {
	return s.goals.Delete(ctx, id)
}

func (s *Service) ListGoals(ctx context.Context, limit, offset int) ([]*Goal, int, error) {
	return s.goals.List(ctx, limit, offset)
}

// -- Todos --

func (s *Service) CreateTodo(ctx context.Context, t *Todo) error {
	if t.Title == "" {
		return fmt.Errorf("title is required")
	}
	return s.todos.Create(ctx, t)
}

func (s *Service) GetTodo(ctx context.Context, id uuid.UUID) (*Todo, error) {
	return s.todos.GetByID(ctx, id)
}

func (s *Service) UpdateTodo(ctx context.Context, t *Todo) error {
	return s.todos.Update(ctx, t)
}

func (s *Service) DeleteTodo(ctx context.Context, id uuid.UUID) error {
	return s.todos.Delete(ctx, id)
}

func (s *Service) ListTodos(ctx context.Context, limit, offset int) ([]*Todo, int, error) {
	return s.todos.List(ctx, limit, offset)
}
