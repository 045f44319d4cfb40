package workflows

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

var validStatuses = map[string]bool{
	StatusActive: true, StatusDraft: true, StatusBlocked: true,
}

type Service struct {
	workflows WorkflowRepository
	templates TemplateRepository
}

func NewService(workflows WorkflowRepository, templates TemplateRepository) *Service {
	return &Service{workflows: workflows, templates: templates}
}

func (s *Service) Create(ctx context.Context, w *Workflow) error {
	if w.Name == "" {
		return fmt.Errorf("name is required")
	}
	if w.Status == "" {
		w.Status = StatusDraft
	}
	if !validStatuses[w.Status] {
		return fmt.Errorf("invalid status: %s", w.Status)
	}
	if w.StepsDone > w.StepsTotal {
		return fmt.Errorf("steps_done (%d) exceeds steps_total (%d)", w.StepsDone, w.StepsTotal)
	}
	// Instantiating from a template seeds the step count.
	if w.TemplateID != nil && w.StepsTotal == 0 {
		t, err := s.templates.GetByID(ctx, *w.TemplateID)
		if err != nil {
			return fmt.Errorf("template lookup: %w", err)
		}
		w.StepsTotal = t.Steps
	}
	return s.workflows.Create(ctx, w)
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Workflow, error) {
	return s.workflows.GetByID(ctx, id)
}

func (s *Service) Update(ctx context.Context, w *Workflow) error {
	if w.Status != "" && !validStatuses[w.Status] {
		return fmt.Errorf("invalid status: %s", w.Status)
	}
	if w.StepsDone > w.StepsTotal {
		return fmt.Errorf("steps_done (%d) exceeds steps_total (%d)", w.StepsDone, w.StepsTotal)
	}
	return s.workflows.Update(ctx, w)
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.workflows.Delete(ctx, id)
}

func (s *Service) List(ctx context.Context, limit, offset int) ([]*Workflow, int, error) {
	return s.workflows.List(ctx, limit, offset)
}

func (s *Service) ListTemplates(ctx context.Context, limit, offset int) ([]*Template, int, error) {
	return s.templates.List(ctx, limit, offset)
}
