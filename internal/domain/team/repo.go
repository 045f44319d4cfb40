package team

import (
	"context"

	"github.com/google/uuid"
)

type MemberRepository interface {
	Create(ctx context.Context, m *TeamMember) error
	GetByID(ctx context.Context, id uuid.UUID) (*TeamMember, error)
	Update(ctx context.Context, m *TeamMember) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, limit, offset int) ([]*TeamMember, int, error)
}

type PositionRepository interface {
	Create(ctx context.Context, p *Position) error
	GetByID(ctx context.Context, id uuid.UUID) (*Position, error)
	Update(ctx context.Context, p *Position) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, limit, offset int) ([]*Position, int, error)
}

type ResponsibilityRepository interface {
	Create(ctx context.Context, r *Responsibility) error
	Delete(ctx context.Context, id uuid.UUID) error
	ListByPosition(ctx context.Context, positionID uuid.UUID) ([]*Responsibility, error)
	List(ctx context.Context, limit, offset int) ([]*Responsibility, int, error)
}
