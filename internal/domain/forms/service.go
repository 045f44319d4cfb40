package forms

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
)

var validStatuses = map[string]bool{
	StatusDraft: true, StatusPublished: true, StatusArchived: true,
}

type Service struct {
	forms Repository
}

func NewService(forms Repository) *Service {
	return &Service{forms: forms}
}

func (s *Service) validate(f *Form) error {
	if f.Name == "" {
		return fmt.Errorf("name is required")
	}
	if !validStatuses[f.Status] {
		return fmt.Errorf("invalid status: %s", f.Status)
	}
	if len(f.Fields) > 0 && !json.Valid(f.Fields) {
		return fmt.Errorf("fields must be valid JSON")
	}
	return nil
}

func (s *Service) Create(ctx context.Context, f *Form) error {
	if f.Status == "" {
		f.Status = StatusDraft
	}
	if len(f.Fields) == 0 {
		f.Fields = json.RawMessage(`[]`)
	}
	if err := s.validate(f); err != nil {
		return err
	}
	return s.forms.Create(ctx, f)
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Form, error) {
	return s.forms.GetByID(ctx, id)
}

func (s *Service) Update(ctx context.Context, f *Form) error {
	if err := s.validate(f); err != nil {
		return err
	}
	return s.forms.Update(ctx, f)
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.forms.Delete(ctx, id)
}

func (s *Service) List(ctx context.Context, limit, offset int) ([]*Form, int, error) {
	return s.forms.List(ctx, limit, offset)
}
