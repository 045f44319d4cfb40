package team

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

var validEmployment = map[string]bool{
	EmploymentActive: true, EmploymentInactive: true,
}

type Service struct {
	members          MemberRepository
	positions        PositionRepository
	responsibilities ResponsibilityRepository
}

func NewService(members MemberRepository, positions PositionRepository, responsibilities ResponsibilityRepository) *Service {
	return &Service{members: members, positions: positions, responsibilities: responsibilities}
}

// -- Team Members --

func (s *Service) CreateMember(ctx context.Context, m *TeamMember) error {
	if m.Name == "" {
		return fmt.Errorf("name is required")
	}
	if m.Employment == "" {
		m.Employment = EmploymentActive
	}
	if !validEmployment[m.Employment] {
		return fmt.Errorf("invalid employment: %s", m.Employment)
	}
	if m.FTE <= 0 {
		m.FTE = 1.0
	}
	return s.members.Create(ctx, m)
}

func (s *Service) GetMember(ctx context.Context, id uuid.UUID) (*TeamMember, error) {
	return s.members.GetByID(ctx, id)
}

func (s *Service) UpdateMember(ctx context.Context, m *TeamMember) error {
	if m.Employment != "" && !validEmployment[m.Employment] {
		return fmt.Errorf("invalid employment: %s", m.Employment)
	}
	return s.members.Update(ctx, m)
}

func (s *Service) DeleteMember(ctx context.Context, id uuid.UUID) error {
	return s.members.Delete(ctx, id)
}

func (s *Service) ListMembers(ctx context.Context, limit, offset int) ([]*TeamMember, int, error) {
	return s.members.List(ctx, limit, offset)
}

// -- Positions --

func (s *Service) CreatePosition(ctx context.Context, p *Position) error {
	if p.Title == "" {
		return fmt.Errorf("title is required")
	}
	return s.positions.Create(ctx, p)
}

func (s *Service) GetPosition(ctx context.Context, id uuid.UUID) (*Position, error) {
	return s.positions.GetByID(ctx, id)
}

func (s *Service) UpdatePosition(ctx context.Context, p *Position) error {
	return s.positions.Update(ctx, p)
}

func (s *Service) DeletePosition(ctx context.Context, id uuid.UUID) error {
	return s.positions.Delete(ctx, id)
}

func (s *Service) ListPositions(ctx context.Context, limit, offset int) ([]*Position, int, error) {
	return s.positions.List(ctx, limit, offset)
}

// -- Responsibilities --

func (s *Service) AddResponsibility(ctx context.Context, r *Responsibility) error {
	if r.PositionID == uuid.Nil {
		return fmt.Errorf("position_id is required")
	}
	if r.Description == "" {
		return fmt.Errorf("description is required")
	}
	return s.responsibilities.Create(ctx, r)
}

func (s *Service) RemoveResponsibility(ctx context.Context, id uuid.UUID) error {
	return s.responsibilities.Delete(ctx, id)
}

func (s *Service) ListResponsibilities(ctx context.Context, positionID uuid.UUID) ([]*Responsibility, error) {
	return s.responsibilities.ListByPosition(ctx, positionID)
}
