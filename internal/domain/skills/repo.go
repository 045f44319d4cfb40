package skills

import (
	"context"

	"github.com/google/uuid"
)

type SkillRepository interface {
	Create(ctx context.Context, sk *Skill) error
	GetByID(ctx context.Context, id uuid.UUID) (*Skill, error)
	Update(ctx context.Context, sk *Skill) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, limit, offset int) ([]*Skill, int, error)
}

type AssignmentRepository interface {
	Upsert(ctx context.Context, a *SkillAssignment) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, limit, offset int) ([]*SkillAssignment, int, error)
	ListByMember(ctx context.Context, memberID uuid.UUID) ([]*SkillAssignment, error)
}
