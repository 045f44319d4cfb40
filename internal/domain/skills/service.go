package skills

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

type Service struct {
	skills      SkillRepository
	assignments AssignmentRepository
}

func NewService(skills SkillRepository, assignments AssignmentRepository) *Service {
	return &Service{skills: skills, assignments: assignments}
}

func (s *Service) CreateSkill(ctx context.Context, sk *Skill) error {
	if sk.Name == "" {
		return fmt.Errorf("name is required")
	}
	return s.skills.Create(ctx, sk)
}

func (s *Service) GetSkill(ctx context.Context, id uuid.UUID) (*Skill, error) {
	return s.skills.GetByID(ctx, id)
}

func (s *Service) UpdateSkill(ctx context.Context, sk *Skill) error {
	if sk.Name == "" {
		return fmt.Errorf("name is required")
	}
	return s.skills.Update(ctx, sk)
}

func (s *Service) DeleteSkill(ctx context.Context, id uuid.UUID) error {
	return s.skills.Delete(ctx, id)
}

func (s *Service) ListSkills(ctx context.Context, limit, offset int) ([]*Skill, int, error) {
	return s.skills.List(ctx, limit, offset)
}

func (s *Service) Assign(ctx context.Context, a *SkillAssignment) error {
	if a.SkillID == uuid.Nil || a.MemberID == uuid.Nil {
		return fmt.Errorf("skill_id and member_id are required")
	}
	if a.Level < 1 || a.Level > 5 {
		return fmt.Errorf("level must be between 1 and 5")
	}
	return s.assignments.Upsert(ctx, a)
}

func (s *Service) Unassign(ctx context.Context, id uuid.UUID) error {
	return s.assignments.Delete(ctx, id)
}

func (s *Service) ListAssignments(ctx context.Context, limit, offset int) ([]*SkillAssignment, int, error) {
	return s.assignments.List(ctx, limit, offset)
}

func (s *Service) MemberAssignments(ctx context.Context, memberID uuid.UUID) ([]*SkillAssignment, error) {
	return s.assignments.ListByMember(ctx, memberID)
}
