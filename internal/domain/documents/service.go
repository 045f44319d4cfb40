package documents

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

type Service struct {
	documents Repository
}

func NewService(documents Repository) *Service {
	return &Service{documents: documents}
}

func (s *Service) Create(ctx context.Context, d *Document) error {
	if d.Title == "" {
		return fmt.Errorf("title is required")
	}
	if d.StorageKey == "" {
		return fmt.Errorf("storage_key is required")
	}
	if d.Category == "" {
		d.Category = "general"
	}
	return s.documents.Create(ctx, d)
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Document, error) {
	return s.documents.GetByID(ctx, id)
}

func (s *Service) Update(ctx context.Context, d *Document) error {
	if d.Title == "" {
		return fmt.Errorf("title is required")
	}
	return s.documents.Update(ctx, d)
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.documents.Delete(ctx, id)
}

func (s *Service) List(ctx context.Context, limit, offset int) ([]*Document, int, error) {
	return s.documents.List(ctx, limit, offset)
}
