package practice

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	Create(ctx context.Context, p *Practice) error
	GetByID(ctx context.Context, id uuid.UUID) (*Practice, error)
	GetBySlug(ctx context.Context, slug string) (*Practice, error)
	Update(ctx context.Context, p *Practice) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, limit, offset int) ([]*Practice, int, error)
}

type SettingsRepository interface {
	Get(ctx context.Context, practiceID uuid.UUID) (*Settings, error)
	Upsert(ctx context.Context, s *Settings) error
}
