package workflows

import (
	"context"

	"github.com/google/uuid"
)

type WorkflowRepository interface {
	Create(ctx context.Context, w *Workflow) error
	GetByID(ctx context.Context, id uuid.UUID) (*Workflow, error)
	Update(ctx context.Context, w *Workflow) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, limit, offset int) ([]*Workflow, int, error)
}

type TemplateRepository interface {
	List(ctx context.Context, limit, offset int) ([]*Template, int, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Template, error)
}
