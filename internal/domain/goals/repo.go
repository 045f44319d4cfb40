package goals

import (
	"context"

	"github.com/google/uuid"
)

type GoalRepository interface {
	Create(ctx context.Context, g *Goal) error
	GetByID(ctx context.Context, id uuid.UUID) (*Goal, error)
	Update(ctx context.Context, g *Goal) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, limit, offset int) ([]*Goal, int, error)
}

type TodoRepository interface {
	Create(ctx context.Context, t *Todo) error
	GetByID(ctx context.Context, id uuid.UUID) (*Todo, error)
	Update(ctx context.Context, t *Todo) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, limit, offset int) ([]*Todo, int, error)
}
